package recommend

import (
	"fmt"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// storageOptions is the fixed three-tier layout: OS drive, dedicated
// recording drive, archive drive. Always offered in full.
var storageOptions = []UpgradeOption{
	{
		Label:            "500GB NVMe SSD (OS drive)",
		EstimatedCostUSD: 60,
		Notes:            "boot and applications",
	},
	{
		Label:            "1TB NVMe SSD (dedicated recording drive)",
		EstimatedCostUSD: 90,
		Notes:            "isolates capture writes from the OS drive",
	},
	{
		Label:            "4TB HDD (archive drive)",
		EstimatedCostUSD: 80,
		Notes:            "cold storage for finished recordings",
	},
}

// storageRecommendation sizes required sustained write throughput from
// the target bitrate and flags machines with no SSD/NVMe at all. The
// classifier's storage finding, when present, carries the priority.
func storageRecommendation(snap *snapshot.SystemSnapshot, bottlenecks []classify.Bottleneck, p Params) UpgradeRecommendation {
	throughputMBps := float64(p.TargetBitrateKbps) / 8 / 1024

	priority := PriorityLow
	reason := fmt.Sprintf("recording at %d kbps needs %.2f MB/s sustained writes; current storage is adequate",
		p.TargetBitrateKbps, throughputMBps)

	hasFast, known := snap.HasFastStorage()
	flagged := false
	for _, b := range bottlenecks {
		if b.Component == classify.ComponentStorage {
			flagged = true
			break
		}
	}

	switch {
	case !known:
		reason = "disk telemetry unavailable; storage adequacy unknown"
	case flagged, !hasFast && p.UseCase.RequiresRecording():
		priority = PriorityHigh
		reason = fmt.Sprintf("no SSD or NVMe drive present; recording at %d kbps needs %.2f MB/s sustained writes that spinning disks cannot guarantee under load",
			p.TargetBitrateKbps, throughputMBps)
	}

	return UpgradeRecommendation{
		Category: CategoryStorage,
		Priority: priority,
		Reason:   reason,
		Options:  cloneOptions(storageOptions),
	}
}
