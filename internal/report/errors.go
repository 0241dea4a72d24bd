package report

import "github.com/haziqachik/pcdiag/internal/errors"

const (
	ErrNilPayload    = errors.ErrorCode("report_nil_payload")
	ErrEncodeFailed  = errors.ErrorCode("report_encode_failed")
	ErrWriteFailed   = errors.ErrWriteReport
	ErrInvalidOutput = errors.ErrorCode("report_invalid_output")
)
