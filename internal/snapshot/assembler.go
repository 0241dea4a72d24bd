package snapshot

import (
	"context"
	"time"

	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/logger"
)

type assembler struct {
	src Source
	cfg Config
}

// NewAssembler returns an Assembler that collects every snapshot
// category from src, each bounded by cfg.ProbeTimeout.
func NewAssembler(src Source, cfg Config) (Assembler, error) {
	errFactory := errors.New()

	if src == nil {
		return nil, errFactory.New(ErrNilSource)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &assembler{src: src, cfg: cfg}, nil
}

// Assemble pulls each category independently. A failed or stalled probe
// marks its field unavailable and collection continues; only a validated
// invariant violation aborts the run. Categories are collected in a
// fixed order so repeated runs produce structurally identical snapshots.
func (a *assembler) Assemble(ctx context.Context) (*SystemSnapshot, error) {
	snap := &SystemSnapshot{
		CollectedAt:     time.Now().UTC(),
		CPU:             probe(ctx, a.cfg.ProbeTimeout, "cpu", a.src.CPU),
		RAM:             probe(ctx, a.cfg.ProbeTimeout, "ram", a.src.RAM),
		GPU:             probe(ctx, a.cfg.ProbeTimeout, "gpu", a.src.GPU),
		Disks:           probe(ctx, a.cfg.ProbeTimeout, "disks", a.src.Disks),
		Temperatures:    probe(ctx, a.cfg.ProbeTimeout, "temperatures", a.src.Temperatures),
		Drivers:         probe(ctx, a.cfg.ProbeTimeout, "drivers", a.src.Drivers),
		NetworkAdapters: probe(ctx, a.cfg.ProbeTimeout, "network_adapters", a.src.NetworkAdapters),
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	return snap, nil
}

// probe runs one category query with its own deadline. The query runs in
// a goroutine so a probe that ignores its context cannot block the
// assembly; its result is simply dropped once the deadline passes.
func probe[T any](ctx context.Context, timeout time.Duration, name string, query func(context.Context) (T, error)) Field[T] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		v, err := query(ctx)
		ch <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		timeoutErr := errors.New().Wrap(ErrProbeTimeout, ctx.Err())
		logger.Debug().Str("category", name).Err(timeoutErr).Msg("Probe timed out, marking unavailable")
		return Unavailable[T]()
	case r := <-ch:
		if r.err != nil {
			logger.Debug().Str("category", name).Err(r.err).Msg("Probe failed, marking unavailable")
			return Unavailable[T]()
		}
		return FieldOf(r.value)
	}
}
