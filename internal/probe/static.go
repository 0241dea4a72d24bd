package probe

import (
	"context"

	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// Static is a canned source: each category returns either its fixed
// value or a fixed error. Used by tests and for replaying captured
// machines through the pipeline.
type Static struct {
	CPUInfo  snapshot.CPUInfo
	CPUErr   error
	RAMInfo  snapshot.RAMInfo
	RAMErr   error
	GPUInfo  snapshot.GPUInfo
	GPUErr   error
	DiskList []snapshot.Disk
	DiskErr  error
	Temps    []snapshot.TemperatureReading
	TempErr  error
	Drv      []snapshot.Driver
	DrvErr   error
	Net      []snapshot.NetworkAdapter
	NetErr   error
}

func (s *Static) CPU(_ context.Context) (snapshot.CPUInfo, error) {
	return s.CPUInfo, s.CPUErr
}

func (s *Static) RAM(_ context.Context) (snapshot.RAMInfo, error) {
	return s.RAMInfo, s.RAMErr
}

func (s *Static) GPU(_ context.Context) (snapshot.GPUInfo, error) {
	return s.GPUInfo, s.GPUErr
}

func (s *Static) Disks(_ context.Context) ([]snapshot.Disk, error) {
	return s.DiskList, s.DiskErr
}

func (s *Static) Temperatures(_ context.Context) ([]snapshot.TemperatureReading, error) {
	return s.Temps, s.TempErr
}

func (s *Static) Drivers(_ context.Context) ([]snapshot.Driver, error) {
	return s.Drv, s.DrvErr
}

func (s *Static) NetworkAdapters(_ context.Context) ([]snapshot.NetworkAdapter, error) {
	return s.Net, s.NetErr
}
