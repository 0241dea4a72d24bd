package classify

import (
	"fmt"

	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

const (
	ramMinimumGB     = 16
	ramComfortableGB = 32
	coresForHighEnd  = 6
	coresForCapture  = 8

	coreWeight   = 10
	threadWeight = 5
	ramWeight    = 2

	nvencBonus   = 20
	defaultBonus = 10
)

// Classify evaluates the full rule set against a snapshot and computes
// the three performance scores. Rules whose inputs are unavailable are
// skipped so missing telemetry never manufactures a finding. Given a
// fixed snapshot and use case the output is fully deterministic.
func Classify(snap *snapshot.SystemSnapshot, useCase UseCase) (*Report, error) {
	errFactory := errors.New()

	if snap == nil {
		return nil, errFactory.New(errors.ErrInvalidArgument).WithMessage("nil snapshot")
	}
	if !useCase.IsValid() {
		return nil, errFactory.WithData(errors.ErrInvalidUseCase, string(useCase))
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	tier := TierUnknown
	if gpu, ok := snap.GPU.Value(); ok {
		tier = GPUTier(gpu.Name)
	}

	report := &Report{
		Bottlenecks: applyRules(snap, useCase, tier),
		Scores:      computeScores(snap, tier),
		GPUTier:     tier,
	}

	return report, nil
}

// applyRules evaluates every rule; a snapshot may trigger any number of
// them and evaluation order does not affect the outcome.
func applyRules(snap *snapshot.SystemSnapshot, useCase UseCase, tier Tier) []Bottleneck {
	var found []Bottleneck

	if ram, ok := snap.RAM.Value(); ok && ram.HardwareErrorCount > 0 {
		found = append(found, Bottleneck{
			Component:      ComponentRAM,
			Severity:       SeverityCritical,
			Issue:          "hardware memory errors detected",
			CurrentSpec:    fmt.Sprintf("%d WHEA error events in the trailing window", ram.HardwareErrorCount),
			Recommendation: "replace the failing modules before any other upgrade",
		})
	}

	if ram, ok := snap.RAM.Value(); ok && useCase.RequiresRecording() {
		switch {
		case ram.TotalGB < ramMinimumGB:
			found = append(found, Bottleneck{
				Component:      ComponentRAM,
				Severity:       SeverityCritical,
				Issue:          "insufficient for high-framerate recording + gaming",
				CurrentSpec:    fmt.Sprintf("%.0fGB RAM", ram.TotalGB),
				Recommendation: fmt.Sprintf("upgrade to at least %dGB", ramComfortableGB),
			})
		case ram.TotalGB < ramComfortableGB:
			found = append(found, Bottleneck{
				Component:      ComponentRAM,
				Severity:       SeverityHigh,
				Issue:          "recording may show memory pressure",
				CurrentSpec:    fmt.Sprintf("%.0fGB RAM", ram.TotalGB),
				Recommendation: fmt.Sprintf("%dGB recommended for recording while gaming", ramComfortableGB),
			})
		}
	}

	if cpu, ok := snap.CPU.Value(); ok {
		if cpu.CoreCount < coresForHighEnd && tier == TierHighEnd {
			found = append(found, Bottleneck{
				Component:      ComponentCPU,
				Severity:       SeverityHigh,
				Issue:          "CPU may bottleneck GPU",
				CurrentSpec:    fmt.Sprintf("%d cores with a high-end GPU", cpu.CoreCount),
				Recommendation: fmt.Sprintf("%d+ cores to keep the GPU fed", coresForHighEnd),
			})
		}

		if cpu.CoreCount < coresForCapture {
			found = append(found, Bottleneck{
				Component:      ComponentCPU,
				Severity:       SeverityMedium,
				Issue:          "recording workloads benefit from 8+ cores",
				CurrentSpec:    fmt.Sprintf("%d cores / %d threads", cpu.CoreCount, cpu.ThreadCount),
				Recommendation: "8-core CPU for encoding headroom",
			})
		}
	}

	if hasFast, known := snap.HasFastStorage(); known && !hasFast && useCase.RequiresRecording() {
		found = append(found, Bottleneck{
			Component:      ComponentStorage,
			Severity:       SeverityHigh,
			Issue:          "no fast storage for recording",
			CurrentSpec:    "HDD-only storage",
			Recommendation: "add an SSD or NVMe drive for capture",
		})
	}

	return found
}

// computeScores applies the fixed linear heuristics. An unavailable
// input contributes zero to its term; the snapshot in the final report
// carries the unavailable markers explaining any depressed score.
func computeScores(snap *snapshot.SystemSnapshot, tier Tier) PerformanceScores {
	var cpuScore float64
	if cpu, ok := snap.CPU.Value(); ok {
		cpuScore = float64(coreWeight*cpu.CoreCount + threadWeight*(cpu.ThreadCount-cpu.CoreCount))
	}

	var ramTerm float64
	if ram, ok := snap.RAM.Value(); ok {
		ramTerm = ramWeight * ram.TotalGB
	}

	encoderBonus := float64(defaultBonus)
	if gpu, ok := snap.GPU.Value(); ok && gpu.VendorFamily == snapshot.VendorNVIDIA {
		encoderBonus = nvencBonus
	}

	return PerformanceScores{
		Gaming:       clampScore(0.3*cpuScore + 0.7*tier.Score()),
		Recording:    clampScore(0.5*cpuScore + 0.3*ramTerm + 0.2*encoderBonus),
		Multitasking: clampScore(0.4*cpuScore + 0.6*ramTerm),
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
