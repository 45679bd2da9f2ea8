// Package main is the fitsummary CLI: it sums up a workouts CSV export and
// counts the entries of a health metrics JSON export.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitsummary/internal/config"
	"github.com/2beens/fitsummary/internal/healthmetrics"
	"github.com/2beens/fitsummary/internal/logging"
	"github.com/2beens/fitsummary/internal/summary"
	"github.com/2beens/fitsummary/internal/telemetry/metrics"
	"github.com/2beens/fitsummary/internal/telemetry/tracing"
	"github.com/2beens/fitsummary/internal/workouts"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	env        string
	configPath string
	jsonOutput bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var workoutsPath, metricsPath string

	root := &cobra.Command{
		Use:   "fitsummary",
		Short: "Summarize workout and health metric exports",
		Long: `fitsummary reads a workouts CSV export (date, duration, type) and a health
metrics JSON export, then prints the total number of workouts, the total
workout minutes and the number of health metric entries.

Rows with a missing, non numeric or negative duration are still counted as
workouts but add no minutes; run with --verbose to see which rows were skipped.

Examples:
  fitsummary
  fitsummary --workouts ./exports/workouts.csv --metrics ./exports/health.json
  fitsummary workouts ./exports/workouts.csv --verbose
  fitsummary metrics ./exports/health.json --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, flags, func(ctx context.Context, a *app) (*summary.Report, error) {
				if workoutsPath == "" {
					workoutsPath = a.cfg.WorkoutsPath
				}
				if metricsPath == "" {
					metricsPath = a.cfg.MetricsPath
				}
				return a.service.Build(ctx, workoutsPath, metricsPath)
			})
		},
	}

	root.PersistentFlags().StringVar(&flags.env, "env", "development", "environment [prod | production | dev | development]")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "./config.toml", "path for the TOML config file")
	root.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "print the report as JSON")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "show the per activity breakdown and skipped rows")
	root.Flags().StringVar(&workoutsPath, "workouts", "", "workouts CSV file (overrides config)")
	root.Flags().StringVar(&metricsPath, "metrics", "", "health metrics JSON file (overrides config)")

	root.AddCommand(newWorkoutsCmd(flags))
	root.AddCommand(newMetricsCmd(flags))
	return root
}

func newWorkoutsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "workouts [file]",
		Short: "Sum up a workouts CSV export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, flags, func(ctx context.Context, a *app) (*summary.Report, error) {
				path := a.cfg.WorkoutsPath
				if len(args) == 1 {
					path = args[0]
				}
				return a.service.BuildWorkouts(ctx, path)
			})
		},
	}
}

func newMetricsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics [file]",
		Short: "Count the entries of a health metrics JSON export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, flags, func(ctx context.Context, a *app) (*summary.Report, error) {
				path := a.cfg.MetricsPath
				if len(args) == 1 {
					path = args[0]
				}
				return a.service.BuildMetrics(ctx, path)
			})
		},
	}
}

type app struct {
	cfg         *config.Config
	service     *summary.Service
	promReg     *prometheus.Registry
	tracingDown tracing.Shutdown
}

func newApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.env, flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Console:          os.Stderr,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitsummary",
	})
	log.Debugf("running in [%s] environment", cfg.Environment)

	tracingDown, err := tracing.Init(ctx, cfg.OtelEndpoint, "fitsummary", version, cfg.OtelInsecure)
	if err != nil {
		log.Errorf("tracing disabled: %s", err)
		tracingDown = func(context.Context) error { return nil }
	}

	promReg := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitsummary", "cli", promReg)

	service := summary.NewService(
		workouts.NewLoader(metricsManager),
		healthmetrics.NewLoader(metricsManager),
		summary.Goals{
			Workouts:      cfg.Goals.Workouts,
			Minutes:       cfg.Goals.Minutes,
			MetricEntries: cfg.Goals.MetricEntries,
		},
	)

	return &app{
		cfg:         cfg,
		service:     service,
		promReg:     promReg,
		tracingDown: tracingDown,
	}, nil
}

func (a *app) close() {
	if a.cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(a.cfg.MetricsTextfile, a.promReg); err != nil {
			log.Errorf("%s", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.tracingDown(ctx); err != nil {
		log.Errorf("tracing shutdown: %s", err)
	}

	logging.Flush(2 * time.Second)
}

func runApp(
	cmd *cobra.Command,
	flags *rootFlags,
	build func(ctx context.Context, a *app) (*summary.Report, error),
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close()

	report, buildErr := build(ctx, a)

	out := cmd.OutOrStdout()
	if flags.jsonOutput {
		err = summary.RenderJSON(out, report)
	} else {
		err = summary.Render(out, report, summary.RenderOptions{Verbose: flags.verbose})
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if buildErr != nil {
		return fmt.Errorf("summary incomplete: %w", buildErr)
	}
	return nil
}
