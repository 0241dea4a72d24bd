package classify_test

import (
	"math/rand"
	"testing"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapshot(cpu snapshot.CPUInfo, ram snapshot.RAMInfo, gpu snapshot.GPUInfo, disks []snapshot.Disk) *snapshot.SystemSnapshot {
	return &snapshot.SystemSnapshot{
		CPU:   snapshot.FieldOf(cpu),
		RAM:   snapshot.FieldOf(ram),
		GPU:   snapshot.FieldOf(gpu),
		Disks: snapshot.FieldOf(disks),
	}
}

func nvmeDisk() []snapshot.Disk {
	return []snapshot.Disk{{MediaType: snapshot.MediaNVMe, CapacityGB: 1000, FreePercent: 60}}
}

func TestFailingRAMScenario(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16, ClockMHz: 3600},
		snapshot.RAMInfo{TotalGB: 16, UsedPercent: 92, HardwareErrorCount: 15, ModuleSpeedMHz: 3200},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3060", VendorFamily: snapshot.VendorNVIDIA},
		nvmeDisk(),
	)

	report, err := classify.Classify(snap, classify.UseCaseRecording)
	require.NoError(t, err)

	var ramSeverity classify.Severity
	foundRAM := false
	for _, b := range report.Bottlenecks {
		if b.Component == classify.ComponentRAM && b.Severity > ramSeverity {
			ramSeverity = b.Severity
			foundRAM = true
		}
	}

	require.True(t, foundRAM, "expected a RAM bottleneck")
	assert.Equal(t, classify.SeverityCritical, ramSeverity)
}

func TestHealthyHighEndSystem(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 12, ThreadCount: 24, ClockMHz: 4200},
		snapshot.RAMInfo{TotalGB: 32, UsedPercent: 35, ModuleSpeedMHz: 6000},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 4070", VendorFamily: snapshot.VendorNVIDIA},
		nvmeDisk(),
	)

	report, err := classify.Classify(snap, classify.UseCaseBoth)
	require.NoError(t, err)

	for _, b := range report.Bottlenecks {
		assert.Less(t, b.Severity, classify.SeverityCritical, "unexpected critical bottleneck: %+v", b)
	}
	assert.Greater(t, report.Scores.Gaming, 70.0)
	assert.Equal(t, classify.TierHighEnd, report.GPUTier)
}

func TestRecordingRAMRules(t *testing.T) {
	tests := []struct {
		name     string
		totalGB  float64
		severity classify.Severity
		found    bool
	}{
		{"below minimum", 8, classify.SeverityCritical, true},
		{"below comfortable", 16, classify.SeverityHigh, true},
		{"at comfortable", 32, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := buildSnapshot(
				snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16},
				snapshot.RAMInfo{TotalGB: tt.totalGB, UsedPercent: 50},
				snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
				nvmeDisk(),
			)

			report, err := classify.Classify(snap, classify.UseCaseRecording)
			require.NoError(t, err)

			found := false
			for _, b := range report.Bottlenecks {
				if b.Component == classify.ComponentRAM {
					found = true
					assert.Equal(t, tt.severity, b.Severity)
				}
			}
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestGamingOnlySkipsRecordingRules(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16},
		snapshot.RAMInfo{TotalGB: 8, UsedPercent: 50},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
		[]snapshot.Disk{{MediaType: snapshot.MediaHDD, CapacityGB: 2000, FreePercent: 40}},
	)

	report, err := classify.Classify(snap, classify.UseCaseGaming)
	require.NoError(t, err)

	for _, b := range report.Bottlenecks {
		assert.NotEqual(t, classify.ComponentRAM, b.Component)
		assert.NotEqual(t, classify.ComponentStorage, b.Component)
	}
}

func TestCPURules(t *testing.T) {
	// 4 cores behind a high-end GPU trips both CPU rules
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 4, ThreadCount: 8},
		snapshot.RAMInfo{TotalGB: 32, UsedPercent: 50},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 4080", VendorFamily: snapshot.VendorNVIDIA},
		nvmeDisk(),
	)

	report, err := classify.Classify(snap, classify.UseCaseGaming)
	require.NoError(t, err)

	severities := make(map[classify.Severity]int)
	for _, b := range report.Bottlenecks {
		if b.Component == classify.ComponentCPU {
			severities[b.Severity]++
		}
	}
	assert.Equal(t, 1, severities[classify.SeverityHigh], "expected GPU-pairing bottleneck")
	assert.Equal(t, 1, severities[classify.SeverityMedium], "expected core-count bottleneck")
}

func TestNoFastStorageRule(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16},
		snapshot.RAMInfo{TotalGB: 32, UsedPercent: 50},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
		[]snapshot.Disk{{MediaType: snapshot.MediaHDD, CapacityGB: 2000, FreePercent: 40}},
	)

	report, err := classify.Classify(snap, classify.UseCaseRecording)
	require.NoError(t, err)

	found := false
	for _, b := range report.Bottlenecks {
		if b.Component == classify.ComponentStorage {
			found = true
			assert.Equal(t, classify.SeverityHigh, b.Severity)
		}
	}
	assert.True(t, found)
}

func TestDeterminism(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 6, ThreadCount: 12},
		snapshot.RAMInfo{TotalGB: 16, UsedPercent: 70, HardwareErrorCount: 2},
		snapshot.GPUInfo{Name: "AMD Radeon RX 6700 XT", VendorFamily: snapshot.VendorAMD},
		nvmeDisk(),
	)

	first, err := classify.Classify(snap, classify.UseCaseBoth)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := classify.Classify(snap, classify.UseCaseBoth)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMultitaskingScoreMonotonicInRAM(t *testing.T) {
	prev := -1.0
	for _, totalGB := range []float64{2, 4, 8, 16, 32, 64, 128} {
		snap := buildSnapshot(
			snapshot.CPUInfo{CoreCount: 4, ThreadCount: 8},
			snapshot.RAMInfo{TotalGB: totalGB, UsedPercent: 50},
			snapshot.GPUInfo{Name: "Intel UHD Graphics 630", VendorFamily: snapshot.VendorIntel},
			nvmeDisk(),
		)

		report, err := classify.Classify(snap, classify.UseCaseGaming)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.Scores.Multitasking, prev, "multitasking score regressed at %gGB", totalGB)
		prev = report.Scores.Multitasking
	}
}

func TestRAMSeverityMonotonicInCapacity(t *testing.T) {
	maxRAMSeverity := func(totalGB float64) int {
		snap := buildSnapshot(
			snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16},
			snapshot.RAMInfo{TotalGB: totalGB, UsedPercent: 50},
			snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
			nvmeDisk(),
		)

		report, err := classify.Classify(snap, classify.UseCaseRecording)
		require.NoError(t, err)

		severity := -1
		for _, b := range report.Bottlenecks {
			if b.Component == classify.ComponentRAM && int(b.Severity) > severity {
				severity = int(b.Severity)
			}
		}
		return severity
	}

	prev := maxRAMSeverity(4)
	for _, totalGB := range []float64{8, 12, 16, 24, 32, 64} {
		current := maxRAMSeverity(totalGB)
		assert.LessOrEqual(t, current, prev, "RAM severity increased at %gGB", totalGB)
		prev = current
	}
}

func TestScoreBoundsFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gpuNames := []string{
		"NVIDIA GeForce RTX 4090", "NVIDIA GeForce GTX 1060", "AMD Radeon RX 580",
		"Intel Iris Xe Graphics", "Matrox G200", "",
	}
	vendors := []snapshot.VendorFamily{
		snapshot.VendorNVIDIA, snapshot.VendorAMD, snapshot.VendorIntel, snapshot.VendorOther,
	}

	for i := 0; i < 1000; i++ {
		cores := 1 + rng.Intn(32)
		snap := buildSnapshot(
			snapshot.CPUInfo{CoreCount: cores, ThreadCount: cores + rng.Intn(cores+1), ClockMHz: 1000 + rng.Intn(4000)},
			snapshot.RAMInfo{TotalGB: 2 + rng.Float64()*254, UsedPercent: rng.Float64() * 100},
			snapshot.GPUInfo{Name: gpuNames[rng.Intn(len(gpuNames))], VendorFamily: vendors[rng.Intn(len(vendors))]},
			nvmeDisk(),
		)

		report, err := classify.Classify(snap, classify.UseCaseBoth)
		require.NoError(t, err)

		for name, score := range map[string]float64{
			"gaming":       report.Scores.Gaming,
			"recording":    report.Scores.Recording,
			"multitasking": report.Scores.Multitasking,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s score below 0", name)
			assert.LessOrEqual(t, score, 100.0, "%s score above 100", name)
		}
	}
}

func TestUnavailableFieldsProduceNoFindings(t *testing.T) {
	snap := &snapshot.SystemSnapshot{
		CPU:   snapshot.Unavailable[snapshot.CPUInfo](),
		RAM:   snapshot.Unavailable[snapshot.RAMInfo](),
		GPU:   snapshot.Unavailable[snapshot.GPUInfo](),
		Disks: snapshot.Unavailable[[]snapshot.Disk](),
	}

	report, err := classify.Classify(snap, classify.UseCaseRecording)
	require.NoError(t, err)

	assert.Empty(t, report.Bottlenecks, "missing telemetry must not manufacture findings")
	assert.Equal(t, classify.TierUnknown, report.GPUTier)
}

func TestInvalidInput(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16},
		snapshot.RAMInfo{TotalGB: 16, UsedPercent: 50},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
		nvmeDisk(),
	)

	_, err := classify.Classify(snap, classify.UseCase("mining"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidUseCase, errors.CodeOf(err))

	_, err = classify.Classify(nil, classify.UseCaseGaming)
	require.Error(t, err)
}

func TestInvariantViolationFailsFast(t *testing.T) {
	snap := buildSnapshot(
		snapshot.CPUInfo{CoreCount: 8, ThreadCount: 4},
		snapshot.RAMInfo{TotalGB: 16, UsedPercent: 50},
		snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 3070", VendorFamily: snapshot.VendorNVIDIA},
		nvmeDisk(),
	)

	_, err := classify.Classify(snap, classify.UseCaseGaming)
	require.Error(t, err)
	assert.Equal(t, errors.ErrSnapshotInvariant, errors.CodeOf(err))
}

func TestParseUseCase(t *testing.T) {
	for _, valid := range []string{"gaming", "recording", "both"} {
		uc, err := classify.ParseUseCase(valid)
		require.NoError(t, err)
		assert.True(t, uc.IsValid())
	}

	_, err := classify.ParseUseCase("streaming")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidUseCase, errors.CodeOf(err))
}
