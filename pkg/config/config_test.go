package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/devdays/pkg/config"
	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
	"github.com/Sumatoshi-tech/devdays/pkg/render"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", config.DefaultOutputFormat, "")
	flags.String("color", config.DefaultOutputColor, "")
	flags.Bool("include-remotes", false, "")
	flags.String("policy", config.DefaultWalkPolicy, "")
	flags.String("log-level", config.DefaultLoggingLevel, "")

	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, "empty.yaml", ""), nil)
	require.NoError(t, err)

	assert.Equal(t, render.FormatText, cfg.Format())
	assert.Equal(t, contrib.PolicyStrict, cfg.Policy())
	assert.False(t, cfg.Walk.IncludeRemotes)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Equal(t, config.LogFormatText, cfg.Logging.Format)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "devdays.yaml", `
output:
  format: json
  color: never
walk:
  include_remotes: true
  policy: lenient
logging:
  level: debug
  format: json
telemetry:
  otlp_endpoint: "localhost:4317"
  otlp_insecure: true
`)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, render.FormatJSON, cfg.Format())
	assert.False(t, cfg.UseColor())
	assert.True(t, cfg.Walk.IncludeRemotes)
	assert.Equal(t, contrib.PolicyLenient, cfg.Policy())
	assert.Equal(t, config.LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.OTLPInsecure)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFromTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "devdays.toml", "[output]\nformat = \"table\"\ncolor = \"always\"\n")

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, render.FormatTable, cfg.Format())
	assert.True(t, cfg.UseColor())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DEVDAYS_OUTPUT_FORMAT", "yaml")
	t.Setenv("DEVDAYS_WALK_POLICY", "lenient")
	t.Setenv("DEVDAYS_WALK_INCLUDE_REMOTES", "true")

	cfg, err := config.LoadConfig(writeConfig(t, "empty.yaml", ""), nil)
	require.NoError(t, err)

	assert.Equal(t, render.FormatYAML, cfg.Format())
	assert.Equal(t, contrib.PolicyLenient, cfg.Policy())
	assert.True(t, cfg.Walk.IncludeRemotes)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "devdays.yaml", "output:\n  format: json\nwalk:\n  policy: lenient\n")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--format", "table", "--include-remotes"}))

	cfg, err := config.LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, render.FormatTable, cfg.Format())
	assert.True(t, cfg.Walk.IncludeRemotes)
	// Unset flags do not shadow the file.
	assert.Equal(t, contrib.PolicyLenient, cfg.Policy())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"format", "output:\n  format: csv\n", config.ErrInvalidFormat},
		{"color", "output:\n  color: rainbow\n", config.ErrInvalidColor},
		{"policy", "walk:\n  policy: sometimes\n", config.ErrInvalidPolicy},
		{"log level", "logging:\n  level: chatty\n", config.ErrInvalidLogLevel},
		{"log format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, "bad.yaml", tt.content), nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	always := config.Config{Output: config.OutputConfig{Color: config.ColorAlways}}
	never := config.Config{Output: config.OutputConfig{Color: config.ColorNever}}

	assert.True(t, always.UseColor())
	assert.False(t, never.UseColor())
}
