package probe

import (
	"context"
	"sync"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// NVML queries the NVIDIA management library for precise GPU identity,
// VRAM size and core temperature. Initialization is lazy and guarded;
// on machines without an NVIDIA driver every query reports unavailable.
type NVML struct {
	mu          sync.Mutex
	initialized bool
	initErr     error
}

func NewNVML() *NVML {
	return &NVML{}
}

func (n *NVML) ensureInit() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized {
		return nil
	}
	if n.initErr != nil {
		return n.initErr
	}

	if ret := nvml.Init(); !isNVMLSuccess(ret) {
		n.initErr = errors.New().Wrap(ErrNVMLInit, newNVMLError(ret))
		return n.initErr
	}
	n.initialized = true

	return nil
}

// Shutdown releases the NVML handle. Safe to call without a prior
// successful init.
func (n *NVML) Shutdown() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return nil
	}

	if ret := nvml.Shutdown(); !isNVMLSuccess(ret) {
		return errors.New().Wrap(ErrNVMLShutdown, newNVMLError(ret))
	}
	n.initialized = false

	return nil
}

func (n *NVML) device() (nvml.Device, error) {
	if err := n.ensureInit(); err != nil {
		return nil, err
	}

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if !isNVMLSuccess(ret) {
		return nil, errors.New().Wrap(ErrNVMLQuery, newNVMLError(ret))
	}

	return device, nil
}

func (n *NVML) CPU(_ context.Context) (snapshot.CPUInfo, error) {
	return snapshot.CPUInfo{}, unavailable("cpu")
}

func (n *NVML) RAM(_ context.Context) (snapshot.RAMInfo, error) {
	return snapshot.RAMInfo{}, unavailable("ram")
}

func (n *NVML) GPU(_ context.Context) (snapshot.GPUInfo, error) {
	errFactory := errors.New()

	device, err := n.device()
	if err != nil {
		return snapshot.GPUInfo{}, err
	}

	name, ret := device.GetName()
	if !isNVMLSuccess(ret) {
		return snapshot.GPUInfo{}, errFactory.Wrap(ErrNVMLQuery, newNVMLError(ret))
	}

	gpu := snapshot.GPUInfo{
		Name:         name,
		VendorFamily: snapshot.VendorNVIDIA,
	}

	if memInfo, ret := device.GetMemoryInfo(); isNVMLSuccess(ret) {
		gpu.VRAMGB = float64(memInfo.Total) / bytesPerGB
	}

	return gpu, nil
}

func (n *NVML) Disks(_ context.Context) ([]snapshot.Disk, error) {
	return nil, unavailable("disks")
}

func (n *NVML) Temperatures(_ context.Context) ([]snapshot.TemperatureReading, error) {
	errFactory := errors.New()

	device, err := n.device()
	if err != nil {
		return nil, err
	}

	temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU)
	if !isNVMLSuccess(ret) {
		return nil, errFactory.Wrap(ErrNVMLQuery, newNVMLError(ret))
	}

	return []snapshot.TemperatureReading{
		{Zone: "gpu", Celsius: float64(temp)},
	}, nil
}

func (n *NVML) Drivers(_ context.Context) ([]snapshot.Driver, error) {
	return nil, unavailable("drivers")
}

func (n *NVML) NetworkAdapters(_ context.Context) ([]snapshot.NetworkAdapter, error) {
	return nil, unavailable("network_adapters")
}

// nvmlError adapts an NVML return code to error
type nvmlError struct {
	ret nvml.Return
}

func (e *nvmlError) Error() string {
	return nvml.ErrorString(e.ret)
}

func newNVMLError(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return &nvmlError{ret: ret}
}

func isNVMLSuccess(ret nvml.Return) bool {
	return ret == nvml.SUCCESS
}
