package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrInvalidUseCase  ErrorCode = "invalid_use_case"
	ErrInvalidBudget   ErrorCode = "invalid_budget"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"
	ErrAlreadyRunning ErrorCode = "already_running"

	// Application errors
	ErrInitApp ErrorCode = "init_app_failed"
	ErrRun     ErrorCode = "diagnostic_run_failed"

	// Operation errors
	ErrOperationFailed ErrorCode = "operation_failed"
	ErrTimeout         ErrorCode = "operation_timeout"

	// Snapshot errors
	ErrSnapshotInvariant  ErrorCode = "snapshot_invariant_violated"
	ErrSnapshotIncomplete ErrorCode = "snapshot_incomplete"

	// Report errors
	ErrWriteReport ErrorCode = "write_report_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:           "Internal error occurred",
	ErrInvalidArgument:    "Invalid argument provided",
	ErrUnavailable:        "Data unavailable",
	ErrInvalidConfig:      "Invalid configuration",
	ErrMissingConfig:      "Missing configuration",
	ErrReadConfig:         "Failed to read config file",
	ErrInvalidLogLevel:    "Invalid log level",
	ErrInvalidUseCase:     "Invalid use case",
	ErrInvalidBudget:      "Invalid budget",
	ErrInitFailed:         "Initialization failed",
	ErrShutdownFailed:     "Shutdown failed",
	ErrAlreadyRunning:     "Another instance is already running",
	ErrInitApp:            "Failed to initialize application",
	ErrRun:                "Diagnostic run failed",
	ErrOperationFailed:    "Operation failed",
	ErrTimeout:            "Operation timed out",
	ErrSnapshotInvariant:  "Snapshot violates an invariant",
	ErrSnapshotIncomplete: "Snapshot is missing required data",
	ErrWriteReport:        "Failed to write report",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
