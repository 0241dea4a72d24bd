package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/haziqachik/pcdiag/internal/errors"
)

// MediaType identifies the physical kind of a disk.
type MediaType string

const (
	MediaSSD     MediaType = "SSD"
	MediaHDD     MediaType = "HDD"
	MediaNVMe    MediaType = "NVMe"
	MediaUnknown MediaType = "Unknown"
)

// VendorFamily identifies the GPU vendor.
type VendorFamily string

const (
	VendorNVIDIA VendorFamily = "NVIDIA"
	VendorAMD    VendorFamily = "AMD"
	VendorIntel  VendorFamily = "Intel"
	VendorOther  VendorFamily = "Other"
)

// DeviceClass groups drivers by the device they serve.
type DeviceClass string

const (
	ClassDisplay DeviceClass = "Display"
	ClassNetwork DeviceClass = "Network"
	ClassStorage DeviceClass = "Storage"
	ClassOther   DeviceClass = "Other"
)

type CPUInfo struct {
	CoreCount   int `json:"core_count"`
	ThreadCount int `json:"thread_count"`
	ClockMHz    int `json:"clock_mhz"`
}

type RAMInfo struct {
	TotalGB     float64 `json:"total_gb"`
	UsedPercent float64 `json:"used_percent"`
	// HardwareErrorCount is the number of WHEA-class fatal memory events
	// observed in the trailing collection window. It is the sole trigger
	// for the critical memory failure pathway.
	HardwareErrorCount int `json:"hardware_error_count"`
	ModuleSpeedMHz     int `json:"module_speed_mhz"`
	ModuleCount        int `json:"module_count"`
}

type GPUInfo struct {
	Name         string       `json:"name"`
	VRAMGB       float64      `json:"vram_gb"`
	VendorFamily VendorFamily `json:"vendor_family"`
}

type Disk struct {
	MediaType   MediaType `json:"media_type"`
	CapacityGB  float64   `json:"capacity_gb"`
	FreePercent float64   `json:"free_percent"`
}

type TemperatureReading struct {
	Zone    string  `json:"zone"`
	Celsius float64 `json:"celsius"`
}

type Driver struct {
	DeviceName  string      `json:"device_name"`
	AgeDays     int         `json:"age_days"`
	DeviceClass DeviceClass `json:"device_class"`
}

type NetworkAdapter struct {
	Name          string `json:"name"`
	LinkUp        bool   `json:"link_up"`
	DriverAgeDays int    `json:"driver_age_days"`
}

// Field wraps a snapshot category so that "no data" can never be
// mistaken for a zero value. An unavailable field carries no value.
type Field[T any] struct {
	value T
	ok    bool
}

// FieldOf returns an available field holding v.
func FieldOf[T any](v T) Field[T] {
	return Field[T]{value: v, ok: true}
}

// Unavailable returns a field with no value.
func Unavailable[T any]() Field[T] {
	return Field[T]{}
}

// Available reports whether the field holds a value.
func (f Field[T]) Available() bool {
	return f.ok
}

// Value returns the held value and whether it is available.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.ok
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.ok {
		return []byte(`{"available":false}`), nil
	}

	return json.Marshal(struct {
		Available bool `json:"available"`
		Value     T    `json:"value"`
	}{Available: true, Value: f.value})
}

// SystemSnapshot is the normalized view of one telemetry collection pass.
// It is built once per run and never mutated afterwards.
type SystemSnapshot struct {
	CollectedAt     time.Time                   `json:"collected_at"`
	CPU             Field[CPUInfo]              `json:"cpu"`
	RAM             Field[RAMInfo]              `json:"ram"`
	GPU             Field[GPUInfo]              `json:"gpu"`
	Disks           Field[[]Disk]               `json:"disks"`
	Temperatures    Field[[]TemperatureReading] `json:"temperatures"`
	Drivers         Field[[]Driver]             `json:"drivers"`
	NetworkAdapters Field[[]NetworkAdapter]     `json:"network_adapters"`
}

// Validate checks the invariants of every available field. A violation
// means the telemetry source handed over nonsensical data, which is a
// hard error rather than something to classify around.
func (s *SystemSnapshot) Validate() error {
	errFactory := errors.New()

	if cpu, ok := s.CPU.Value(); ok {
		if cpu.CoreCount < 1 {
			return errFactory.WithData(ErrInvariantViolated, invariant("cpu.core_count", fmt.Sprintf("%d < 1", cpu.CoreCount)))
		}
		if cpu.ThreadCount < cpu.CoreCount {
			return errFactory.WithData(ErrInvariantViolated,
				invariant("cpu.thread_count", fmt.Sprintf("%d < core count %d", cpu.ThreadCount, cpu.CoreCount)))
		}
	}

	if ram, ok := s.RAM.Value(); ok {
		if ram.TotalGB <= 0 {
			return errFactory.WithData(ErrInvariantViolated, invariant("ram.total_gb", fmt.Sprintf("%g <= 0", ram.TotalGB)))
		}
		if ram.UsedPercent < 0 || ram.UsedPercent > 100 {
			return errFactory.WithData(ErrInvariantViolated, invariant("ram.used_percent", fmt.Sprintf("%g outside [0,100]", ram.UsedPercent)))
		}
		if ram.HardwareErrorCount < 0 {
			return errFactory.WithData(ErrInvariantViolated, invariant("ram.hardware_error_count", fmt.Sprintf("%d < 0", ram.HardwareErrorCount)))
		}
	}

	if gpu, ok := s.GPU.Value(); ok {
		if gpu.VRAMGB < 0 {
			return errFactory.WithData(ErrInvariantViolated, invariant("gpu.vram_gb", fmt.Sprintf("%g < 0", gpu.VRAMGB)))
		}
	}

	if disks, ok := s.Disks.Value(); ok {
		for i, d := range disks {
			if d.FreePercent < 0 || d.FreePercent > 100 {
				return errFactory.WithData(ErrInvariantViolated,
					invariant(fmt.Sprintf("disks[%d].free_percent", i), fmt.Sprintf("%g outside [0,100]", d.FreePercent)))
			}
			if d.CapacityGB < 0 {
				return errFactory.WithData(ErrInvariantViolated,
					invariant(fmt.Sprintf("disks[%d].capacity_gb", i), fmt.Sprintf("%g < 0", d.CapacityGB)))
			}
		}
	}

	return nil
}

// MaxTemperature returns the hottest observed zone, if any reading exists.
func (s *SystemSnapshot) MaxTemperature() (float64, bool) {
	temps, ok := s.Temperatures.Value()
	if !ok || len(temps) == 0 {
		return 0, false
	}

	maxC := temps[0].Celsius
	for _, t := range temps[1:] {
		if t.Celsius > maxC {
			maxC = t.Celsius
		}
	}

	return maxC, true
}

// HasFastStorage reports whether any SSD or NVMe disk is present.
// known is false when the disk list is unavailable or when no fast disk
// was found but some media types could not be identified; absence is
// only asserted over fully identified disks.
func (s *SystemSnapshot) HasFastStorage() (has, known bool) {
	disks, ok := s.Disks.Value()
	if !ok {
		return false, false
	}

	sawUnknown := false
	for _, d := range disks {
		switch d.MediaType {
		case MediaSSD, MediaNVMe:
			return true, true
		case MediaUnknown:
			sawUnknown = true
		}
	}

	return false, !sawUnknown
}

type invariantViolation struct {
	Field  string
	Detail string
}

func invariant(field, detail string) invariantViolation {
	return invariantViolation{Field: field, Detail: detail}
}
