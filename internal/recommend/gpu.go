package recommend

import (
	"fmt"
	"strings"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// EncoderClass describes the hardware encoding capability of a GPU.
type EncoderClass string

const (
	EncoderExcellent EncoderClass = "excellent"
	EncoderGood      EncoderClass = "good"
	EncoderSoftware  EncoderClass = "software"
	EncoderUnknown   EncoderClass = "unknown"
)

func (e EncoderClass) describe() string {
	switch e {
	case EncoderExcellent:
		return "NVENC available, current generation"
	case EncoderGood:
		return "hardware encoder available"
	case EncoderSoftware:
		return "CPU encoding required, degraded recording performance"
	default:
		return "encoder capability unknown"
	}
}

// classifyEncoder maps vendor family and generation onto an encoder
// class. NVIDIA RTX parts carry the newer NVENC blocks; any NVIDIA or
// AMD part still beats software encoding.
func classifyEncoder(gpu snapshot.GPUInfo) EncoderClass {
	switch gpu.VendorFamily {
	case snapshot.VendorNVIDIA:
		if strings.Contains(strings.ToLower(gpu.Name), "rtx") {
			return EncoderExcellent
		}
		return EncoderGood
	case snapshot.VendorAMD:
		return EncoderGood
	default:
		return EncoderSoftware
	}
}

// gpuOptions is the fixed budget-tiered ladder, offered independently of
// the detected card. The high-end tier is the standing best pick for
// high-framerate recording.
var gpuOptions = []UpgradeOption{
	{
		Label:            "Entry: GeForce RTX 3050 / Radeon RX 6600",
		EstimatedCostUSD: 230,
		Notes:            "1080p60 gaming and capture",
	},
	{
		Label:            "Mid-range: GeForce RTX 4060 Ti / Radeon RX 7700 XT",
		EstimatedCostUSD: 430,
		Notes:            "1440p gaming with hardware encoding",
	},
	{
		Label:            "High-end: GeForce RTX 4070 Super",
		EstimatedCostUSD: 600,
		Notes:            "best pick for high-framerate recording (NVENC AV1)",
	},
	{
		Label:            "Enthusiast: GeForce RTX 4080 Super",
		EstimatedCostUSD: 1000,
		Notes:            "4K gaming with dual NVENC encoders",
	},
}

func gpuRecommendation(snap *snapshot.SystemSnapshot, p Params) UpgradeRecommendation {
	gpu, ok := snap.GPU.Value()
	if !ok {
		return UpgradeRecommendation{
			Category: CategoryGPU,
			Priority: PriorityLow,
			Reason:   "GPU telemetry unavailable; tier and encoder capability unknown",
			Options:  cloneOptions(gpuOptions),
		}
	}

	tier := classify.GPUTier(gpu.Name)
	encoder := classifyEncoder(gpu)

	priority := PriorityLow
	switch tier {
	case classify.TierHighEnd:
		priority = PriorityLow
	case classify.TierMidRange:
		priority = PriorityMedium
	default:
		priority = PriorityHigh
	}
	if p.UseCase.RequiresRecording() && encoder == EncoderSoftware {
		priority = maxPriority(priority, PriorityHigh)
	}

	return UpgradeRecommendation{
		Category: CategoryGPU,
		Priority: priority,
		Reason:   fmt.Sprintf("%s is %s tier; %s", gpu.Name, tier, encoder.describe()),
		Options:  cloneOptions(gpuOptions),
	}
}

// cloneOptions copies the static table so budget tagging never mutates it.
func cloneOptions(opts []UpgradeOption) []UpgradeOption {
	out := make([]UpgradeOption, len(opts))
	copy(out, opts)
	return out
}
