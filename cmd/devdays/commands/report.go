package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/devdays/pkg/config"
	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
	"github.com/Sumatoshi-tech/devdays/pkg/observability"
	"github.com/Sumatoshi-tech/devdays/pkg/render"
	"github.com/Sumatoshi-tech/devdays/pkg/version"
)

// Sentinel errors for the report command.
var (
	ErrConfig = errors.New("configuration")
	ErrRender = errors.New("render report")
)

// ReportCommand holds the flag values of a report run.
type ReportCommand struct {
	configPath string
	verbose    bool
}

func (rc *ReportCommand) registerFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", config.DefaultOutputFormat,
		"Output format: "+strings.Join(render.Formats(), ", "))
	cmd.Flags().String("color", config.DefaultOutputColor, "Colored table output: auto, always, never")
	cmd.Flags().Bool("include-remotes", config.DefaultWalkIncludeRemotes, "Also walk remote-tracking branches")
	cmd.Flags().String("policy", config.DefaultWalkPolicy, "Error policy: strict (abort) or lenient (skip and warn)")
	cmd.Flags().String("log-level", config.DefaultLoggingLevel, "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", config.DefaultLoggingFormat, "Log format: text, json")
	cmd.Flags().String("otlp-endpoint", "", "OTLP gRPC endpoint for traces and metrics (empty = disabled)")
}

func (rc *ReportCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(rc.configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if rc.verbose {
		cfg.Logging.Level = "debug"
	}

	ctx := cmd.Context()

	tel, err := setupTelemetry(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger := tel.Logger

	defer func() {
		closeErr := tel.Close(context.WithoutCancel(ctx))
		if closeErr != nil {
			logger.WarnContext(ctx, "telemetry flush failed", "error", closeErr)
		}
	}()

	runMetrics, err := observability.NewRunMetrics(tel.Meter)
	if err != nil {
		logger.WarnContext(ctx, "run metrics disabled", "error", err)
	}

	format := cfg.Format()
	started := time.Now()

	ctx, span := tel.Tracer.Start(ctx, "devdays.run",
		trace.WithAttributes(attribute.String("output.format", string(format))))
	defer span.End()

	out, rep, err := produceReport(ctx, cfg, tel, args[0])

	runMetrics.RecordRun(ctx, observability.RunStats{
		Commits:   rep.Commits,
		Skipped:   rep.Skipped,
		Authors:   len(rep.Authors),
		TotalDays: rep.Total,
		Duration:  time.Since(started),
		Format:    string(format),
		Err:       err,
	})

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")

		return err
	}

	logger.DebugContext(ctx, "report ready",
		"authors", len(rep.Authors), "commits", rep.Commits, "skipped", rep.Skipped)

	_, err = out.WriteTo(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	return nil
}

// produceReport collects and renders into a buffer so nothing reaches
// stdout unless the whole run succeeds.
func produceReport(
	ctx context.Context, cfg *config.Config, tel *observability.Telemetry, path string,
) (*bytes.Buffer, contrib.Report, error) {
	rep, err := contrib.Collect(ctx, path, contrib.Options{
		Policy:         cfg.Policy(),
		IncludeRemotes: cfg.Walk.IncludeRemotes,
		Logger:         tel.Logger,
		Tracer:         tel.Tracer,
	})
	if err != nil {
		return nil, contrib.Report{}, err
	}

	ctx, span := tel.Tracer.Start(ctx, "devdays.render")
	defer span.End()

	var buf bytes.Buffer

	err = render.Write(&buf, rep, cfg.Format(), render.Options{Color: cfg.UseColor()})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")

		return nil, rep, fmt.Errorf("%w: %w", ErrRender, err)
	}

	span.SetAttributes(attribute.Int("output.bytes", buf.Len()))
	tel.Logger.DebugContext(ctx, "report rendered", "format", cfg.Output.Format, "bytes", buf.Len())

	return &buf, rep, nil
}

func setupTelemetry(ctx context.Context, cfg *config.Config, logOutput io.Writer) (*observability.Telemetry, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	tel, err := observability.Setup(ctx, observability.Config{
		Version:     version.Version,
		Environment: cfg.Telemetry.Environment,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Headers:     observability.ParseHeaders(cfg.Telemetry.OTLPHeaders),
		Insecure:    cfg.Telemetry.OTLPInsecure,
		LogLevel:    level,
		LogJSON:     cfg.Logging.Format == config.LogFormatJSON,
		LogOutput:   logOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("set up telemetry: %w", err)
	}

	return tel, nil
}
