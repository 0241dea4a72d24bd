package recommend

import (
	"fmt"
	"strings"

	"github.com/haziqachik/pcdiag/internal/snapshot"
)

const (
	wattsPerRAMModule = 3
	wattsPerDisk      = 10
	baseOverheadWatts = 75 // motherboard, fans, USB peripherals

	headroomFactor = 1.2
	wattageStep    = 50

	// Assumptions when a category is unavailable; sizing errs upward.
	assumedCPUWatts    = 125
	assumedGPUWatts    = 150
	assumedRAMModules  = 2
	assumedDiskCount   = 2
	integratedGPUWatts = 15
)

// gpuWattEntry maps a lowercase product-name substring to board power.
// Ordered, first match wins.
type gpuWattEntry struct {
	pattern string
	watts   int
}

var gpuWattTable = []gpuWattEntry{
	{"rtx 4090", 450},
	{"rtx 4080", 320},
	{"rtx 4070", 220},
	{"rtx 40", 160},
	{"rtx 3090", 350},
	{"rtx 3080", 320},
	{"rtx 3070", 220},
	{"rtx 30", 200},
	{"rtx 20", 215},
	{"gtx 16", 120},
	{"gtx 10", 150},
	{"rx 7900", 355},
	{"rx 7800", 265},
	{"rx 7", 245},
	{"rx 6900", 300},
	{"rx 6800", 250},
	{"rx 6", 175},
	{"rx 5", 180},
	{"iris", integratedGPUWatts},
	{"uhd", integratedGPUWatts},
	{"vega", integratedGPUWatts},
	{"radeon graphics", integratedGPUWatts},
	{"intel", integratedGPUWatts},
}

type psuTier struct {
	watts   int
	label   string
	costUSD int
}

var psuTiers = []psuTier{
	{550, "550W 80+ Bronze", 60},
	{750, "750W 80+ Gold", 100},
	{1000, "1000W 80+ Gold", 160},
}

// powerRecommendation sums a per-component wattage estimate, applies 20%
// headroom, rounds up to the nearest 50W and picks the matching supply
// tier. There is no PSU telemetry, so this is always advisory sizing.
func powerRecommendation(snap *snapshot.SystemSnapshot) UpgradeRecommendation {
	total := baseOverheadWatts
	total += cpuWatts(snap)
	total += gpuWatts(snap)

	if ram, ok := snap.RAM.Value(); ok && ram.ModuleCount > 0 {
		total += ram.ModuleCount * wattsPerRAMModule
	} else {
		total += assumedRAMModules * wattsPerRAMModule
	}

	if disks, ok := snap.Disks.Value(); ok {
		total += len(disks) * wattsPerDisk
	} else {
		total += assumedDiskCount * wattsPerDisk
	}

	recommended := roundUpToStep(float64(total)*headroomFactor, wattageStep)
	tierIdx := matchPSUTier(recommended)

	options := []UpgradeOption{
		{
			Label:            psuTiers[tierIdx].label,
			EstimatedCostUSD: psuTiers[tierIdx].costUSD,
			Notes:            fmt.Sprintf("sized for %dW estimated draw with 20%% headroom", total),
		},
	}
	if tierIdx+1 < len(psuTiers) {
		options = append(options, UpgradeOption{
			Label:            psuTiers[tierIdx+1].label,
			EstimatedCostUSD: psuTiers[tierIdx+1].costUSD,
			Notes:            "extra headroom for a future GPU upgrade",
		})
	}

	priority := PriorityLow
	if recommended >= 750 {
		priority = PriorityMedium
	}

	return UpgradeRecommendation{
		Category: CategoryPSU,
		Priority: priority,
		Reason: fmt.Sprintf("estimated system draw %dW; %dW supply recommended after headroom and rounding",
			total, recommended),
		Options: options,
	}
}

func cpuWatts(snap *snapshot.SystemSnapshot) int {
	cpu, ok := snap.CPU.Value()
	if !ok {
		return assumedCPUWatts
	}

	switch {
	case cpu.CoreCount >= 16:
		return 200
	case cpu.CoreCount >= 12:
		return 150
	case cpu.CoreCount >= 8:
		return 125
	case cpu.CoreCount >= 6:
		return 95
	default:
		return 65
	}
}

func gpuWatts(snap *snapshot.SystemSnapshot) int {
	gpu, ok := snap.GPU.Value()
	if !ok {
		return assumedGPUWatts
	}

	lower := strings.ToLower(gpu.Name)
	for _, e := range gpuWattTable {
		if strings.Contains(lower, e.pattern) {
			return e.watts
		}
	}

	return assumedGPUWatts
}

func roundUpToStep(watts float64, step int) int {
	w := int(watts)
	if float64(w) < watts {
		w++
	}

	if rem := w % step; rem != 0 {
		w += step - rem
	}

	return w
}

func matchPSUTier(recommended int) int {
	for i, t := range psuTiers {
		if t.watts >= recommended {
			return i
		}
	}

	return len(psuTiers) - 1
}
