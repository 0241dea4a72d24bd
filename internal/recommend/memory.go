package recommend

import (
	"fmt"
	"math"

	"github.com/haziqachik/pcdiag/internal/snapshot"
)

const (
	ramTargetRecordingGB = 32
	ramTargetGamingGB    = 16

	// Fixed $/GB rates used to cost the two upgrade paths.
	addCostPerGB = 3
	kitCostPerGB = 4

	defaultModuleSpeedMHz = 3200
)

// memoryRecommendation applies the RAM precedence: a non-zero hardware
// error count always wins and forces CRITICAL with a warning, no matter
// how much memory is installed. Only then does capacity against the
// use-case target decide the priority.
func memoryRecommendation(snap *snapshot.SystemSnapshot, p Params) UpgradeRecommendation {
	ram, ok := snap.RAM.Value()
	if !ok {
		return UpgradeRecommendation{
			Category: CategoryRAM,
			Priority: PriorityLow,
			Reason:   "memory telemetry unavailable; capacity and health could not be assessed",
		}
	}

	targetGB := ramTargetGamingGB
	if p.UseCase.RequiresRecording() {
		targetGB = ramTargetRecordingGB
	}

	priority := PriorityLow
	reason := fmt.Sprintf("%.0fGB installed meets the %dGB target for this workload", ram.TotalGB, targetGB)

	if ram.TotalGB < float64(targetGB) {
		if p.UseCase.RequiresRecording() {
			priority = PriorityCritical
		} else {
			priority = PriorityHigh
		}
		reason = fmt.Sprintf("%.0fGB installed is below the %dGB target for this workload", ram.TotalGB, targetGB)
	}

	warning := ""
	if ram.HardwareErrorCount > 0 {
		priority = maxPriority(priority, PriorityCritical)
		reason = fmt.Sprintf("physical memory failure: %d hardware error events recorded; capacity is irrelevant until the faulty modules are replaced",
			ram.HardwareErrorCount)
		warning = fmt.Sprintf("%d WHEA memory error events detected. Failing RAM corrupts data and crashes the system; replace the modules before any other upgrade.",
			ram.HardwareErrorCount)
	}

	rec := UpgradeRecommendation{
		Category:        CategoryRAM,
		Priority:        priority,
		Reason:          reason,
		CriticalWarning: warning,
	}

	if priority > PriorityLow {
		rec.Options = memoryOptions(ram, targetGB)
	}

	return rec
}

// memoryOptions always offers both paths when an upgrade is warranted:
// adding modules at the existing speed, and a full replacement kit. The
// consumer picks; nothing is pre-filtered.
func memoryOptions(ram snapshot.RAMInfo, targetGB int) []UpgradeOption {
	currentGB := int(math.Round(ram.TotalGB))
	kitGB := targetGB
	if currentGB > kitGB {
		kitGB = currentGB
	}

	addGB := kitGB - currentGB
	if addGB <= 0 {
		// Already at or above target (hardware failure path): adding a
		// matching set doubles capacity while replacing trust in the old sticks.
		addGB = kitGB
	}

	speed := ram.ModuleSpeedMHz
	if speed <= 0 {
		speed = defaultModuleSpeedMHz
	}

	return []UpgradeOption{
		{
			Label:            fmt.Sprintf("Add %dGB DDR4-%d", addGB, speed),
			EstimatedCostUSD: addGB * addCostPerGB,
			Notes:            "keeps existing modules; speed matched to installed sticks",
		},
		{
			Label:            fmt.Sprintf("%dGB full replacement kit", kitGB),
			EstimatedCostUSD: kitGB * kitCostPerGB,
			Notes:            "replaces all modules with a matched kit",
		},
	}
}
