package snapshot

import (
	"time"

	"github.com/haziqachik/pcdiag/internal/errors"
)

const defaultProbeTimeout = 5 * time.Second

type Config struct {
	// ProbeTimeout bounds each category query independently. A stalled
	// probe marks its own field unavailable without holding up the rest.
	ProbeTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ProbeTimeout: defaultProbeTimeout,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.ProbeTimeout <= 0 {
		return errFactory.WithMessage(ErrInvalidConfig, "probe timeout must be positive")
	}
	return nil
}
