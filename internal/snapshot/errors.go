package snapshot

import "github.com/haziqachik/pcdiag/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrorCode("snapshot_invalid_config")
	ErrNilSource     = errors.ErrorCode("snapshot_nil_source")

	// Invariant Errors
	ErrInvariantViolated = errors.ErrSnapshotInvariant

	// Probe Errors
	ErrProbeTimeout = errors.ErrTimeout
)
