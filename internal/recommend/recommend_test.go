package recommend_test

import (
	"strings"
	"testing"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/recommend"
	"github.com/haziqachik/pcdiag/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams(useCase classify.UseCase) recommend.Params {
	return recommend.Params{
		UseCase:           useCase,
		BudgetUSD:         500,
		TargetFPS:         60,
		TargetBitrateKbps: 40000,
	}
}

func healthySnapshot() *snapshot.SystemSnapshot {
	return &snapshot.SystemSnapshot{
		CPU: snapshot.FieldOf(snapshot.CPUInfo{CoreCount: 12, ThreadCount: 24, ClockMHz: 4200}),
		RAM: snapshot.FieldOf(snapshot.RAMInfo{TotalGB: 32, UsedPercent: 35, ModuleSpeedMHz: 6000, ModuleCount: 2}),
		GPU: snapshot.FieldOf(snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 4070", VRAMGB: 12, VendorFamily: snapshot.VendorNVIDIA}),
		Disks: snapshot.FieldOf([]snapshot.Disk{
			{MediaType: snapshot.MediaNVMe, CapacityGB: 1000, FreePercent: 60},
			{MediaType: snapshot.MediaHDD, CapacityGB: 4000, FreePercent: 70},
		}),
		Temperatures: snapshot.FieldOf([]snapshot.TemperatureReading{
			{Zone: "cpu", Celsius: 62},
			{Zone: "gpu", Celsius: 68},
		}),
	}
}

func categoriesOf(recs []recommend.UpgradeRecommendation) []recommend.Category {
	out := make([]recommend.Category, len(recs))
	for i, r := range recs {
		out[i] = r.Category
	}
	return out
}

func findCategory(t *testing.T, recs []recommend.UpgradeRecommendation, cat recommend.Category) recommend.UpgradeRecommendation {
	t.Helper()
	for _, r := range recs {
		if r.Category == cat {
			return r
		}
	}
	t.Fatalf("no recommendation for category %s", cat)
	return recommend.UpgradeRecommendation{}
}

func TestAlwaysFiveCategoriesInFixedOrder(t *testing.T) {
	for _, budget := range []int{0, 20, 500, 100000} {
		recs, err := recommend.Recommend(healthySnapshot(), nil, recommend.Params{
			UseCase:           classify.UseCaseBoth,
			BudgetUSD:         budget,
			TargetFPS:         60,
			TargetBitrateKbps: 40000,
		})
		require.NoError(t, err)

		assert.Equal(t, []recommend.Category{
			recommend.CategoryRAM,
			recommend.CategoryGPU,
			recommend.CategoryStorage,
			recommend.CategoryPSU,
			recommend.CategoryCooling,
		}, categoriesOf(recs), "budget %d", budget)
	}
}

func TestDeterminism(t *testing.T) {
	snap := healthySnapshot()
	params := defaultParams(classify.UseCaseBoth)

	first, err := recommend.Recommend(snap, nil, params)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := recommend.Recommend(snap, nil, params)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFailingRAMOverridesCapacity(t *testing.T) {
	// 16GB would be fine for gaming, but hardware errors always win.
	for _, totalGB := range []float64{8, 16, 32, 128} {
		snap := healthySnapshot()
		snap.RAM = snapshot.FieldOf(snapshot.RAMInfo{
			TotalGB: totalGB, UsedPercent: 92, HardwareErrorCount: 15, ModuleSpeedMHz: 3200, ModuleCount: 2,
		})

		recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseRecording))
		require.NoError(t, err)

		ram := findCategory(t, recs, recommend.CategoryRAM)
		assert.Equal(t, recommend.PriorityCritical, ram.Priority, "totalGB=%g", totalGB)
		assert.NotEmpty(t, ram.CriticalWarning, "totalGB=%g", totalGB)
		assert.Contains(t, ram.CriticalWarning, "15")
		assert.NotEmpty(t, ram.Options, "failure path still offers replacement options")
	}
}

func TestRAMCapacityTargets(t *testing.T) {
	tests := []struct {
		name     string
		totalGB  float64
		useCase  classify.UseCase
		priority recommend.Priority
	}{
		{"16GB gaming meets target", 16, classify.UseCaseGaming, recommend.PriorityLow},
		{"16GB recording below target", 16, classify.UseCaseRecording, recommend.PriorityCritical},
		{"8GB gaming below target", 8, classify.UseCaseGaming, recommend.PriorityHigh},
		{"32GB both meets target", 32, classify.UseCaseBoth, recommend.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := healthySnapshot()
			snap.RAM = snapshot.FieldOf(snapshot.RAMInfo{TotalGB: tt.totalGB, UsedPercent: 50, ModuleSpeedMHz: 3200, ModuleCount: 2})

			recs, err := recommend.Recommend(snap, nil, defaultParams(tt.useCase))
			require.NoError(t, err)

			ram := findCategory(t, recs, recommend.CategoryRAM)
			assert.Equal(t, tt.priority, ram.Priority)
			assert.Empty(t, ram.CriticalWarning)
			if tt.priority > recommend.PriorityLow {
				require.Len(t, ram.Options, 2, "add path and kit path")
			} else {
				assert.Empty(t, ram.Options)
			}
		})
	}
}

func TestMemoryOptionCosts(t *testing.T) {
	snap := healthySnapshot()
	snap.RAM = snapshot.FieldOf(snapshot.RAMInfo{TotalGB: 16, UsedPercent: 50, ModuleSpeedMHz: 3200, ModuleCount: 2})

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseRecording))
	require.NoError(t, err)

	ram := findCategory(t, recs, recommend.CategoryRAM)
	require.Len(t, ram.Options, 2)
	// add 16GB at $3/GB, 32GB kit at $4/GB
	assert.Equal(t, 48, ram.Options[0].EstimatedCostUSD)
	assert.Equal(t, 128, ram.Options[1].EstimatedCostUSD)
}

func TestTightBudgetTagsWithoutFiltering(t *testing.T) {
	snap := healthySnapshot()
	snap.RAM = snapshot.FieldOf(snapshot.RAMInfo{TotalGB: 8, UsedPercent: 50, ModuleSpeedMHz: 3200, ModuleCount: 1})
	snap.Disks = snapshot.FieldOf([]snapshot.Disk{{MediaType: snapshot.MediaHDD, CapacityGB: 1000, FreePercent: 40}})

	params := defaultParams(classify.UseCaseRecording)
	params.BudgetUSD = 20

	recs, err := recommend.Recommend(snap, nil, params)
	require.NoError(t, err)

	total := 0
	for _, r := range recs {
		for _, opt := range r.Options {
			total++
			assert.Equal(t, recommend.OverBudget, opt.BudgetStatus, "%s / %s", r.Category, opt.Label)
		}
	}
	assert.NotZero(t, total, "options must be tagged, never filtered out")
}

func TestZeroBudgetIsValid(t *testing.T) {
	params := defaultParams(classify.UseCaseBoth)
	params.BudgetUSD = 0

	recs, err := recommend.Recommend(healthySnapshot(), nil, params)
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}

func TestNegativeBudgetRejected(t *testing.T) {
	params := defaultParams(classify.UseCaseBoth)
	params.BudgetUSD = -1

	_, err := recommend.Recommend(healthySnapshot(), nil, params)
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidBudget, errors.CodeOf(err))
}

func TestGPUEncoderAndTier(t *testing.T) {
	tests := []struct {
		name     string
		gpu      snapshot.GPUInfo
		priority recommend.Priority
		reason   string
	}{
		{
			"high-end rtx",
			snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 4080", VendorFamily: snapshot.VendorNVIDIA},
			recommend.PriorityLow,
			"NVENC available",
		},
		{
			"mid-range rtx",
			snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 2060", VendorFamily: snapshot.VendorNVIDIA},
			recommend.PriorityMedium,
			"NVENC available",
		},
		{
			"integrated software encoder",
			snapshot.GPUInfo{Name: "Intel UHD Graphics 630", VendorFamily: snapshot.VendorIntel},
			recommend.PriorityHigh,
			"CPU encoding required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := healthySnapshot()
			snap.GPU = snapshot.FieldOf(tt.gpu)

			recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseRecording))
			require.NoError(t, err)

			gpu := findCategory(t, recs, recommend.CategoryGPU)
			assert.Equal(t, tt.priority, gpu.Priority)
			assert.Contains(t, gpu.Reason, tt.reason)
			assert.Len(t, gpu.Options, 4)
		})
	}
}

func TestStorageEscalatesWithoutFastDisk(t *testing.T) {
	snap := healthySnapshot()
	snap.Disks = snapshot.FieldOf([]snapshot.Disk{{MediaType: snapshot.MediaHDD, CapacityGB: 2000, FreePercent: 40}})

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseRecording))
	require.NoError(t, err)

	storage := findCategory(t, recs, recommend.CategoryStorage)
	assert.Equal(t, recommend.PriorityHigh, storage.Priority)
	// 40000 kbps = 4.88 MB/s
	assert.Contains(t, storage.Reason, "4.88 MB/s")
	assert.Len(t, storage.Options, 3)
}

func TestStorageUnknownDisks(t *testing.T) {
	snap := healthySnapshot()
	snap.Disks = snapshot.Unavailable[[]snapshot.Disk]()

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseRecording))
	require.NoError(t, err)

	storage := findCategory(t, recs, recommend.CategoryStorage)
	assert.Equal(t, recommend.PriorityLow, storage.Priority)
	assert.Contains(t, storage.Reason, "unavailable")
}

func TestPSUSizing(t *testing.T) {
	// 8 cores (125W) + RTX 4070 (220W) + 2 modules (6W) + 2 disks (20W)
	// + 75W overhead = 446W; with 20% headroom 535.2 rounds up to 550W.
	snap := healthySnapshot()
	snap.CPU = snapshot.FieldOf(snapshot.CPUInfo{CoreCount: 8, ThreadCount: 16, ClockMHz: 3800})

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseBoth))
	require.NoError(t, err)

	psu := findCategory(t, recs, recommend.CategoryPSU)
	assert.Equal(t, recommend.PriorityLow, psu.Priority)
	assert.Contains(t, psu.Reason, "446W")
	assert.Contains(t, psu.Reason, "550W")
	require.NotEmpty(t, psu.Options)
	assert.Equal(t, "550W 80+ Bronze", psu.Options[0].Label)
	assert.Equal(t, 60, psu.Options[0].EstimatedCostUSD)
}

func TestPSUHighDrawEscalates(t *testing.T) {
	snap := healthySnapshot()
	snap.CPU = snapshot.FieldOf(snapshot.CPUInfo{CoreCount: 16, ThreadCount: 32, ClockMHz: 4500})
	snap.GPU = snapshot.FieldOf(snapshot.GPUInfo{Name: "NVIDIA GeForce RTX 4090", VRAMGB: 24, VendorFamily: snapshot.VendorNVIDIA})

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseBoth))
	require.NoError(t, err)

	psu := findCategory(t, recs, recommend.CategoryPSU)
	assert.Equal(t, recommend.PriorityMedium, psu.Priority)
}

func TestCoolingThresholds(t *testing.T) {
	tests := []struct {
		name     string
		maxTemp  float64
		priority recommend.Priority
	}{
		{"normal", 68, recommend.PriorityLow},
		{"hot", 79, recommend.PriorityHigh},
		{"critical", 91, recommend.PriorityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := healthySnapshot()
			snap.Temperatures = snapshot.FieldOf([]snapshot.TemperatureReading{
				{Zone: "cpu", Celsius: 55},
				{Zone: "gpu", Celsius: tt.maxTemp},
			})

			recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseBoth))
			require.NoError(t, err)

			cooling := findCategory(t, recs, recommend.CategoryCooling)
			assert.Equal(t, tt.priority, cooling.Priority)
			if tt.priority > recommend.PriorityLow {
				assert.Len(t, cooling.Options, 3)
			} else {
				assert.Empty(t, cooling.Options)
			}
		})
	}
}

func TestCoolingUnknownSensors(t *testing.T) {
	snap := healthySnapshot()
	snap.Temperatures = snapshot.Unavailable[[]snapshot.TemperatureReading]()

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseBoth))
	require.NoError(t, err)

	cooling := findCategory(t, recs, recommend.CategoryCooling)
	assert.Equal(t, recommend.PriorityLow, cooling.Priority)
	assert.True(t, strings.Contains(cooling.Reason, "unknown"), "reason must say unknown, got %q", cooling.Reason)
	assert.Empty(t, cooling.Options)
}

func TestFullyUnavailableSnapshotStillFiveCategories(t *testing.T) {
	snap := &snapshot.SystemSnapshot{
		CPU:          snapshot.Unavailable[snapshot.CPUInfo](),
		RAM:          snapshot.Unavailable[snapshot.RAMInfo](),
		GPU:          snapshot.Unavailable[snapshot.GPUInfo](),
		Disks:        snapshot.Unavailable[[]snapshot.Disk](),
		Temperatures: snapshot.Unavailable[[]snapshot.TemperatureReading](),
	}

	recs, err := recommend.Recommend(snap, nil, defaultParams(classify.UseCaseBoth))
	require.NoError(t, err)
	require.Len(t, recs, 5)

	for _, r := range recs {
		if r.Category == recommend.CategoryPSU {
			// PSU sizing always produces an estimate from assumptions
			continue
		}
		assert.Equal(t, recommend.PriorityLow, r.Priority, "category %s", r.Category)
	}
}
