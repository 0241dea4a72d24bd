package probe

import (
	"context"
	"strings"

	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/snapshot"
	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
)

// Hardware is the ghw-backed inventory source: GPU identity, physical
// disk media types and memory module inventory. ghw reads sysfs/WMI
// inventory; it has no live usage or sensor data.
type Hardware struct{}

func NewHardware() *Hardware {
	return &Hardware{}
}

func (h *Hardware) CPU(_ context.Context) (snapshot.CPUInfo, error) {
	return snapshot.CPUInfo{}, unavailable("cpu")
}

func (h *Hardware) RAM(_ context.Context) (snapshot.RAMInfo, error) {
	errFactory := errors.New()

	info, err := ghw.Memory()
	if err != nil {
		return snapshot.RAMInfo{}, errFactory.Wrap(ErrCollectFailed, err)
	}
	if info.TotalPhysicalBytes <= 0 {
		return snapshot.RAMInfo{}, unavailable("ram")
	}

	ram := snapshot.RAMInfo{
		TotalGB:     float64(info.TotalPhysicalBytes) / bytesPerGB,
		ModuleCount: len(info.Modules),
	}

	return ram, nil
}

func (h *Hardware) GPU(_ context.Context) (snapshot.GPUInfo, error) {
	errFactory := errors.New()

	info, err := ghw.GPU()
	if err != nil {
		return snapshot.GPUInfo{}, errFactory.Wrap(ErrCollectFailed, err)
	}
	if len(info.GraphicsCards) == 0 {
		return snapshot.GPUInfo{}, unavailable("gpu")
	}

	card := info.GraphicsCards[0]
	gpu := snapshot.GPUInfo{VendorFamily: snapshot.VendorOther}
	if card.DeviceInfo != nil {
		vendorName := ""
		if card.DeviceInfo.Vendor != nil {
			vendorName = card.DeviceInfo.Vendor.Name
		}
		if card.DeviceInfo.Product != nil {
			gpu.Name = strings.TrimSpace(card.DeviceInfo.Product.Name)
		}
		gpu.VendorFamily = ParseVendorFamily(vendorName + " " + gpu.Name)
	}

	if gpu.Name == "" {
		return snapshot.GPUInfo{}, unavailable("gpu")
	}

	return gpu, nil
}

func (h *Hardware) Disks(_ context.Context) ([]snapshot.Disk, error) {
	errFactory := errors.New()

	info, err := ghw.Block()
	if err != nil {
		return nil, errFactory.Wrap(ErrCollectFailed, err)
	}

	var disks []snapshot.Disk
	for _, d := range info.Disks {
		if d.SizeBytes == 0 {
			continue
		}

		disks = append(disks, snapshot.Disk{
			MediaType:  mediaTypeOf(d),
			CapacityGB: float64(d.SizeBytes) / bytesPerGB,
		})
	}

	if len(disks) == 0 {
		return nil, unavailable("disks")
	}

	return disks, nil
}

func (h *Hardware) Temperatures(_ context.Context) ([]snapshot.TemperatureReading, error) {
	return nil, unavailable("temperatures")
}

func (h *Hardware) Drivers(_ context.Context) ([]snapshot.Driver, error) {
	return nil, unavailable("drivers")
}

func (h *Hardware) NetworkAdapters(_ context.Context) ([]snapshot.NetworkAdapter, error) {
	return nil, unavailable("network_adapters")
}

func mediaTypeOf(d *block.Disk) snapshot.MediaType {
	if d.StorageController == block.STORAGE_CONTROLLER_NVME {
		return snapshot.MediaNVMe
	}

	switch d.DriveType {
	case block.DRIVE_TYPE_SSD:
		return snapshot.MediaSSD
	case block.DRIVE_TYPE_HDD:
		return snapshot.MediaHDD
	default:
		return snapshot.MediaUnknown
	}
}

// ParseVendorFamily maps a vendor or product string onto a vendor family.
func ParseVendorFamily(s string) snapshot.VendorFamily {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "nvidia"), strings.Contains(lower, "geforce"):
		return snapshot.VendorNVIDIA
	case strings.Contains(lower, "advanced micro"), strings.Contains(lower, "amd"),
		strings.Contains(lower, "ati "), strings.Contains(lower, "radeon"):
		return snapshot.VendorAMD
	case strings.Contains(lower, "intel"):
		return snapshot.VendorIntel
	default:
		return snapshot.VendorOther
	}
}
