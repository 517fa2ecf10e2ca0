// Package config loads devdays settings from defaults, an optional config
// file, DEVDAYS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
	"github.com/Sumatoshi-tech/devdays/pkg/render"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidColor     = errors.New("invalid color mode")
	ErrInvalidPolicy    = errors.New("invalid error policy")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

const envPrefix = "DEVDAYS"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"format":          "output.format",
	"color":           "output.color",
	"include-remotes": "walk.include_remotes",
	"policy":          "walk.policy",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
	"otlp-endpoint":   "telemetry.otlp_endpoint",
}

// Config holds all configuration for a devdays run.
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Walk      WalkConfig      `mapstructure:"walk"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// OutputConfig selects how the report is printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

// WalkConfig controls commit enumeration and error handling.
type WalkConfig struct {
	Policy         string `mapstructure:"policy"`
	IncludeRemotes bool   `mapstructure:"include_remotes"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig configures the optional OTLP exporters. An empty
// endpoint keeps tracing and metrics in no-op mode.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string `mapstructure:"otlp_headers"`
	Environment  string `mapstructure:"environment"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
}

// LoadConfig loads configuration. configPath names an explicit file; when
// empty, devdays.yaml (or .toml/.json) is looked up in the working
// directory and $HOME/.config/devdays, and its absence is not an error.
// Flags that were set on the command line override everything else.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("devdays")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/devdays")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	if flags != nil {
		bindErr := bindFlags(viperCfg, flags)
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.color", DefaultOutputColor)

	viperCfg.SetDefault("walk.include_remotes", DefaultWalkIncludeRemotes)
	viperCfg.SetDefault("walk.policy", DefaultWalkPolicy)

	viperCfg.SetDefault("logging.level", DefaultLoggingLevel)
	viperCfg.SetDefault("logging.format", DefaultLoggingFormat)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.environment", "")
}

func bindFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		err := viperCfg.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

func validateConfig(config *Config) error {
	if _, err := render.ParseFormat(config.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	switch config.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, config.Output.Color)
	}

	if _, err := contrib.ParsePolicy(config.Walk.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}

	if _, err := config.LogLevel(); err != nil {
		return err
	}

	switch config.Logging.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}

// Format returns the validated output format.
func (c *Config) Format() render.Format {
	f, err := render.ParseFormat(c.Output.Format)
	if err != nil {
		return render.FormatText
	}

	return f
}

// Policy returns the validated error policy.
func (c *Config) Policy() contrib.Policy {
	p, err := contrib.ParsePolicy(c.Walk.Policy)
	if err != nil {
		return contrib.PolicyStrict
	}

	return p
}

// LogLevel parses logging.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Logging.Level))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return level, nil
}

// UseColor resolves output.color. Auto follows fatih/color's terminal and
// NO_COLOR detection.
func (c *Config) UseColor() bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !color.NoColor
	}
}
