package probe

import "github.com/haziqachik/pcdiag/internal/errors"

const (
	// Availability Errors
	ErrUnavailable = errors.ErrorCode("probe_unavailable")

	// NVML Errors
	ErrNVMLInit     = errors.ErrorCode("probe_nvml_init_failed")
	ErrNVMLShutdown = errors.ErrorCode("probe_nvml_shutdown_failed")
	ErrNVMLQuery    = errors.ErrorCode("probe_nvml_query_failed")

	// Collection Errors
	ErrCollectFailed = errors.ErrorCode("probe_collect_failed")
)

// unavailable is the sentinel for "this platform exposes no data for the
// category"; the assembler converts it into an unavailable field.
func unavailable(category string) error {
	return errors.New().WithData(ErrUnavailable, category)
}
