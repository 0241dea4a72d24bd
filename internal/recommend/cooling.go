package recommend

import (
	"fmt"

	"github.com/haziqachik/pcdiag/internal/snapshot"
)

const (
	tempCriticalC = 85
	tempHighC     = 75
)

var coolingOptions = []UpgradeOption{
	{
		Label:            "Two 120mm case fans",
		EstimatedCostUSD: 25,
		Notes:            "improves case airflow front-to-back",
	},
	{
		Label:            "240mm AIO liquid cooler",
		EstimatedCostUSD: 90,
		Notes:            "replaces the stock CPU cooler",
	},
	{
		Label:            "Repaste CPU and GPU",
		EstimatedCostUSD: 10,
		Notes:            "thermal paste degrades after a few years",
	},
}

// coolingRecommendation derives priority purely from the hottest
// observed zone. Missing sensors are reported as unknown, never assumed
// safe and never escalated.
func coolingRecommendation(snap *snapshot.SystemSnapshot) UpgradeRecommendation {
	maxTemp, ok := snap.MaxTemperature()
	if !ok {
		return UpgradeRecommendation{
			Category: CategoryCooling,
			Priority: PriorityLow,
			Reason:   "thermal status unknown: no temperature sensors were readable on this platform",
		}
	}

	priority := PriorityLow
	reason := fmt.Sprintf("hottest zone at %.0f°C is within normal range", maxTemp)

	switch {
	case maxTemp > tempCriticalC:
		priority = PriorityCritical
		reason = fmt.Sprintf("hottest zone at %.0f°C exceeds safe limits; thermal throttling and shutdowns likely", maxTemp)
	case maxTemp > tempHighC:
		priority = PriorityHigh
		reason = fmt.Sprintf("hottest zone at %.0f°C is running hot under the observed load", maxTemp)
	}

	rec := UpgradeRecommendation{
		Category: CategoryCooling,
		Priority: priority,
		Reason:   reason,
	}

	if priority > PriorityLow {
		rec.Options = cloneOptions(coolingOptions)
	}

	return rec
}
