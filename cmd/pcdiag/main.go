package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/config"
	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/history"
	"github.com/haziqachik/pcdiag/internal/logger"
	"github.com/haziqachik/pcdiag/internal/pid"
	"github.com/haziqachik/pcdiag/internal/probe"
	"github.com/haziqachik/pcdiag/internal/recommend"
	"github.com/haziqachik/pcdiag/internal/report"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	applyLogLevel(cfg.LogLevel)
	logger.Debug().Msg("Config loaded")
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.ErrorWithCode(appErr).Msg("Diagnostic run failed")
		} else {
			logger.Error().Err(err).Msg("Diagnostic run failed")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := pid.Write(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove PID file")
		}
	}()

	nv := probe.NewNVML()
	defer func() {
		if err := nv.Shutdown(); err != nil {
			logger.Debug().Err(err).Msg("NVML shutdown failed")
		}
	}()

	src := probe.NewMerged(probe.NewSystem(), probe.NewHardware(), nv)
	probeCfg := snapshot.DefaultConfig()
	if cfg.ProbeTimeoutSec > 0 {
		probeCfg.ProbeTimeout = time.Duration(cfg.ProbeTimeoutSec) * time.Second
	}
	asm, err := snapshot.NewAssembler(src, probeCfg)
	if err != nil {
		return err
	}

	logger.Info().Msg("Collecting system telemetry...")
	snap, err := asm.Assemble(ctx)
	if err != nil {
		return err
	}
	logSnapshot(snap)

	useCase, err := classify.ParseUseCase(cfg.UseCase)
	if err != nil {
		return err
	}

	classification, err := classify.Classify(snap, useCase)
	if err != nil {
		return err
	}

	params := recommend.Params{
		UseCase:           useCase,
		BudgetUSD:         cfg.BudgetUSD,
		TargetFPS:         cfg.TargetFPS,
		TargetBitrateKbps: cfg.TargetBitrateKbps,
	}

	recommendations, err := recommend.Recommend(snap, classification.Bottlenecks, params)
	if err != nil {
		return err
	}

	payload := &report.Payload{
		GeneratedAt:     time.Now().UTC(),
		Params:          params,
		Snapshot:        snap,
		Classification:  classification,
		Recommendations: recommendations,
	}

	if err := writeReports(ctx, payload); err != nil {
		return err
	}

	if err := recordHistory(ctx, payload); err != nil {
		// History is best effort; the report already went out
		logger.Warn().Err(err).Msg("Failed to record run history")
	}

	logger.Info().
		Float64("gaming_score", classification.Scores.Gaming).
		Float64("recording_score", classification.Scores.Recording).
		Float64("multitasking_score", classification.Scores.Multitasking).
		Int("bottlenecks", len(classification.Bottlenecks)).
		Str("top_priority", topPriority(recommendations).String()).
		Msg("Diagnostic run complete")

	return nil
}

func writeReports(ctx context.Context, payload *report.Payload) error {
	var sinks []report.Sink

	if cfg.ReportJSON != "" {
		sink, err := report.NewJSONSink(cfg.ReportJSON)
		if err != nil {
			return err
		}
		sinks = append(sinks, sink)
	}

	if cfg.ReportHTML != "" {
		sink, err := report.NewHTMLSink(cfg.ReportHTML)
		if err != nil {
			return err
		}
		sinks = append(sinks, sink)
	}

	for _, sink := range sinks {
		if err := sink.Write(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}

func recordHistory(ctx context.Context, payload *report.Payload) error {
	historyCfg := history.DefaultConfig()
	historyCfg.Enabled = cfg.History
	if cfg.HistoryDB != "" {
		historyCfg.DBPath = cfg.HistoryDB
	}
	recorder, err := history.NewService(historyCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close history recorder")
		}
	}()

	entry := &history.Entry{
		Timestamp:         payload.GeneratedAt,
		UseCase:           payload.Params.UseCase.String(),
		BudgetUSD:         payload.Params.BudgetUSD,
		GamingScore:       payload.Classification.Scores.Gaming,
		RecordingScore:    payload.Classification.Scores.Recording,
		MultitaskingScore: payload.Classification.Scores.Multitasking,
		BottleneckCount:   len(payload.Classification.Bottlenecks),
		TopPriority:       topPriority(payload.Recommendations).String(),
	}
	if ram, ok := payload.Snapshot.RAM.Value(); ok {
		entry.RAMHardwareErrors = ram.HardwareErrorCount
	}

	return recorder.Record(ctx, entry)
}

func topPriority(recs []recommend.UpgradeRecommendation) recommend.Priority {
	top := recommend.PriorityLow
	for _, r := range recs {
		if r.Priority > top {
			top = r.Priority
		}
	}

	return top
}

func logSnapshot(snap *snapshot.SystemSnapshot) {
	event := logger.Debug()

	if cpu, ok := snap.CPU.Value(); ok {
		event.Int("cpu_cores", cpu.CoreCount).Int("cpu_threads", cpu.ThreadCount)
	}
	if ram, ok := snap.RAM.Value(); ok {
		event.Float64("ram_total_gb", ram.TotalGB).Int("ram_hw_errors", ram.HardwareErrorCount)
	}
	if gpu, ok := snap.GPU.Value(); ok {
		event.Str("gpu", gpu.Name)
	}
	if disks, ok := snap.Disks.Value(); ok {
		event.Int("disks", len(disks))
	}
	if maxTemp, ok := snap.MaxTemperature(); ok {
		event.Float64("max_temp_c", maxTemp)
	}

	event.Msg("Snapshot assembled")
}

func applyLogLevel(level string) {
	switch config.LogLevel(level) {
	case config.LogLevelDebug:
		logger.SetLogLevel(logger.DebugLevel)
	case config.LogLevelInfo:
		logger.SetLogLevel(logger.InfoLevel)
	case config.LogLevelError:
		logger.SetLogLevel(logger.ErrorLevel)
	default:
		logger.SetLogLevel(logger.WarnLevel)
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
