package classify

import "strings"

// Tier is the rough performance class of a GPU.
type Tier string

const (
	TierHighEnd    Tier = "High-End"
	TierMidRange   Tier = "Mid-Range"
	TierEntryLevel Tier = "Entry-Level"
	TierBudget     Tier = "Budget"
	TierIntegrated Tier = "Integrated"
	TierUnknown    Tier = "Unknown"
)

// tierPattern maps a lowercase product-name substring to a tier.
// The table is ordered and the first match wins, so more specific
// patterns must come before the families they belong to.
type tierPattern struct {
	pattern string
	tier    Tier
}

// tierTable, version 3. Matches the product strings NVML, ghw and WMI
// report for consumer cards. Extend by adding rows, not branches.
var tierTable = []tierPattern{
	// High-end discrete
	{"rtx 50", TierHighEnd},
	{"rtx 40", TierHighEnd},
	{"rtx 30", TierHighEnd},
	{"rx 7900", TierHighEnd},
	{"rx 7800", TierHighEnd},
	{"rx 6950", TierHighEnd},
	{"rx 6900", TierHighEnd},
	{"rx 6800", TierHighEnd},

	// Mid-range
	{"rtx 20", TierMidRange},
	{"gtx 16", TierMidRange},
	{"rx 7700", TierMidRange},
	{"rx 7600", TierMidRange},
	{"rx 6700", TierMidRange},
	{"rx 6600", TierMidRange},
	{"rx 5700", TierMidRange},
	{"arc a7", TierMidRange},

	// Entry-level
	{"gtx 10", TierEntryLevel},
	{"rx 6500", TierEntryLevel},
	{"rx 5500", TierEntryLevel},
	{"rx 580", TierEntryLevel},
	{"rx 570", TierEntryLevel},
	{"arc a5", TierEntryLevel},
	{"arc a3", TierEntryLevel},

	// Budget discrete
	{"gtx 9", TierBudget},
	{"gt 10", TierBudget},
	{"gt 7", TierBudget},
	{"rx 550", TierBudget},
	{"r7 ", TierBudget},
	{"r9 ", TierBudget},

	// Integrated
	{"iris", TierIntegrated},
	{"uhd", TierIntegrated},
	{"hd graphics", TierIntegrated},
	{"vega", TierIntegrated},
	{"radeon graphics", TierIntegrated},
	{"radeon(tm) graphics", TierIntegrated},
	{"intel", TierIntegrated},
}

// GPUTier resolves a product name against the tier table.
// No match yields TierUnknown, which scores as the lowest tier.
func GPUTier(name string) Tier {
	lower := strings.ToLower(name)
	for _, p := range tierTable {
		if strings.Contains(lower, p.pattern) {
			return p.tier
		}
	}

	return TierUnknown
}

// Score returns the fixed scoring weight of a tier.
func (t Tier) Score() float64 {
	switch t {
	case TierHighEnd:
		return 80
	case TierMidRange:
		return 60
	case TierEntryLevel:
		return 40
	case TierBudget:
		return 20
	default:
		// Integrated and unrecognized parts score as the floor.
		return 10
	}
}
