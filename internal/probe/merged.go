package probe

import (
	"context"

	"github.com/haziqachik/pcdiag/internal/logger"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// Merged combines the three concrete sources into one snapshot.Source.
// Preference per category is fixed so repeated runs merge identically:
// NVML beats ghw for GPU identity, gopsutil carries live usage, ghw
// carries physical inventory.
type Merged struct {
	sys snapshot.Source
	hw  snapshot.Source
	nv  snapshot.Source
}

func NewMerged(sys, hw, nv snapshot.Source) *Merged {
	return &Merged{sys: sys, hw: hw, nv: nv}
}

func (m *Merged) CPU(ctx context.Context) (snapshot.CPUInfo, error) {
	return m.sys.CPU(ctx)
}

// RAM takes live totals and usage from gopsutil and fills module
// inventory from ghw when it is exposed.
func (m *Merged) RAM(ctx context.Context) (snapshot.RAMInfo, error) {
	ram, err := m.sys.RAM(ctx)
	if err != nil {
		return snapshot.RAMInfo{}, err
	}

	if hwRAM, hwErr := m.hw.RAM(ctx); hwErr == nil && hwRAM.ModuleCount > 0 {
		ram.ModuleCount = hwRAM.ModuleCount
	}

	return ram, nil
}

func (m *Merged) GPU(ctx context.Context) (snapshot.GPUInfo, error) {
	if gpu, err := m.nv.GPU(ctx); err == nil {
		return gpu, nil
	}

	return m.hw.GPU(ctx)
}

// Disks prefers ghw physical disks for media type and size. Free space
// is not attributable per physical disk portably, so every entry gets
// the machine-wide free fraction from the mounted partitions.
func (m *Merged) Disks(ctx context.Context) ([]snapshot.Disk, error) {
	physical, hwErr := m.hw.Disks(ctx)
	mounted, sysErr := m.sys.Disks(ctx)

	if hwErr != nil {
		logger.Debug().Err(hwErr).Msg("Physical disk inventory unavailable, using mounted partitions")
		return mounted, sysErr
	}

	if sysErr == nil {
		if free, ok := aggregateFreePercent(mounted); ok {
			for i := range physical {
				physical[i].FreePercent = free
			}
		}
	}

	return physical, nil
}

func (m *Merged) Temperatures(ctx context.Context) ([]snapshot.TemperatureReading, error) {
	if readings, err := m.sys.Temperatures(ctx); err == nil {
		return readings, nil
	}

	return m.nv.Temperatures(ctx)
}

func (m *Merged) Drivers(ctx context.Context) ([]snapshot.Driver, error) {
	return m.sys.Drivers(ctx)
}

func (m *Merged) NetworkAdapters(ctx context.Context) ([]snapshot.NetworkAdapter, error) {
	return m.sys.NetworkAdapters(ctx)
}

func aggregateFreePercent(disks []snapshot.Disk) (float64, bool) {
	var totalGB, freeGB float64
	for _, d := range disks {
		totalGB += d.CapacityGB
		freeGB += d.CapacityGB * d.FreePercent / 100
	}

	if totalGB <= 0 {
		return 0, false
	}

	return freeGB / totalGB * 100, true
}
