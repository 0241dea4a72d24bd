package report

import (
	"context"
	"encoding/json"
	"os"

	"github.com/haziqachik/pcdiag/internal/errors"
)

// JSONSink writes the payload as an indented JSON artifact. A path of
// "-" writes to stdout.
type JSONSink struct {
	path string
}

func NewJSONSink(path string) (*JSONSink, error) {
	if path == "" {
		return nil, errors.New().WithMessage(ErrInvalidOutput, "empty JSON output path")
	}

	return &JSONSink{path: path}, nil
}

func (s *JSONSink) Write(ctx context.Context, p *Payload) error {
	errFactory := errors.New()

	if p == nil {
		return errFactory.New(ErrNilPayload)
	}
	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(errors.ErrTimeout, err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errFactory.Wrap(ErrEncodeFailed, err)
	}
	data = append(data, '\n')

	if s.path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return errFactory.Wrap(ErrWriteFailed, err)
		}
		return nil
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}
