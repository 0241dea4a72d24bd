package config

import (
	"os"
	"strings"

	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "warn"

	defaultUseCase      = "both"
	defaultBudgetUSD    = 500
	defaultTargetFPS    = 60
	defaultBitrateKbps  = 40000
	defaultReportJSON   = "pcdiag-report.json"
	defaultHistoryDB    = "pcdiag-history.db"
	defaultProbeTimeout = 5
)

type Config struct {
	UseCase           string `mapstructure:"use_case"`
	BudgetUSD         int    `mapstructure:"budget_usd"`
	TargetFPS         int    `mapstructure:"target_fps"`
	TargetBitrateKbps int    `mapstructure:"target_bitrate_kbps"`
	LogLevel          string `mapstructure:"log_level"`
	Debug             bool   `mapstructure:"debug"`
	Verbose           bool   `mapstructure:"verbose"`
	ReportJSON        string `mapstructure:"report_json"`
	ReportHTML        string `mapstructure:"report_html"`
	History           bool   `mapstructure:"history"`
	HistoryDB         string `mapstructure:"history_db"`
	ProbeTimeoutSec   int    `mapstructure:"probe_timeout"`
}

// Load merges defaults, an optional TOML config file and command-line
// flags, in ascending precedence. The config file is pcdiag.toml in the
// working directory or /etc, or whatever PCDIAG_CONFIG points at.
func Load() (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet("pcdiag", pflag.ContinueOnError)
	fs.String("use-case", defaultUseCase, "Workload profile: gaming, recording or both")
	fs.Int("budget", defaultBudgetUSD, "Upgrade budget in USD")
	fs.Int("target-fps", defaultTargetFPS, "Target frame rate")
	fs.Int("target-bitrate", defaultBitrateKbps, "Target recording bitrate in kbps")
	fs.String("log-level", "", "Log level: debug, info, warn or error")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.String("report-json", defaultReportJSON, "JSON report output path, - for stdout, empty to disable")
	fs.String("report-html", "", "HTML report output path, empty to disable")
	fs.Bool("history", false, "Record run summaries to the history database")
	fs.String("history-db", defaultHistoryDB, "History database path")
	fs.Int("probe-timeout", defaultProbeTimeout, "Per-category telemetry timeout in seconds")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	v := viper.New()
	v.SetDefault("use_case", defaultUseCase)
	v.SetDefault("budget_usd", defaultBudgetUSD)
	v.SetDefault("target_fps", defaultTargetFPS)
	v.SetDefault("target_bitrate_kbps", defaultBitrateKbps)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("report_json", defaultReportJSON)
	v.SetDefault("report_html", "")
	v.SetDefault("history", false)
	v.SetDefault("history_db", defaultHistoryDB)
	v.SetDefault("probe_timeout", defaultProbeTimeout)

	if path := os.Getenv("PCDIAG_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pcdiag")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc")
	}

	// No config file is fine; a config file that cannot be parsed is not
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags set on the command line win over the config file
	fs.Visit(func(f *pflag.Flag) {
		key := flagKey(f.Name)
		switch f.Value.Type() {
		case "int":
			if n, err := fs.GetInt(f.Name); err == nil {
				v.Set(key, n)
			}
		case "bool":
			if b, err := fs.GetBool(f.Name); err == nil {
				v.Set(key, b)
			}
		default:
			v.Set(key, f.Value.String())
		}
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if config.Debug {
		config.LogLevel = "debug"
	} else if config.Verbose && config.LogLevel == DefaultLogLevel {
		config.LogLevel = "info"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	switch c.UseCase {
	case "gaming", "recording", "both":
	default:
		return errFactory.WithData(errors.ErrInvalidUseCase, c.UseCase)
	}

	if c.BudgetUSD < 0 {
		return errFactory.WithData(errors.ErrInvalidBudget, c.BudgetUSD)
	}
	if c.TargetBitrateKbps < 0 || c.TargetFPS < 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "targets must not be negative")
	}
	if c.ProbeTimeoutSec <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "probe timeout must be positive")
	}
	if c.History && c.HistoryDB == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "history enabled without a database path")
	}

	return nil
}

// mapping config file keys (snake case) from flag names (kebab case)
var flagKeyOverrides = map[string]string{
	"budget":         "budget_usd",
	"target-bitrate": "target_bitrate_kbps",
}

func flagKey(name string) string {
	if key, ok := flagKeyOverrides[name]; ok {
		return key
	}

	return strings.ReplaceAll(name, "-", "_")
}
