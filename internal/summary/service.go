package summary

import (
	"context"

	"github.com/2beens/fitsummary/internal/healthmetrics"
	"github.com/2beens/fitsummary/internal/telemetry/tracing"
	"github.com/2beens/fitsummary/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=summary_test

type workoutsLoader interface {
	Load(ctx context.Context, path string) (*workouts.Summary, error)
}

type metricsLoader interface {
	Load(ctx context.Context, path string) (*healthmetrics.Count, error)
}

// Report merges the outcome of both pipelines. For each pipeline either the
// result or the error is set; both are nil when the pipeline was not run.
type Report struct {
	Workouts    *workouts.Summary
	WorkoutsErr error
	Metrics     *healthmetrics.Count
	MetricsErr  error
	Goals       []GoalProgress
}

func (r *Report) Failed() bool {
	return r.WorkoutsErr != nil || r.MetricsErr != nil
}

// Err combines the failures of both pipelines, nil if none failed.
func (r *Report) Err() error {
	return multierr.Combine(r.WorkoutsErr, r.MetricsErr)
}

type Service struct {
	workouts workoutsLoader
	metrics  metricsLoader
	goals    Goals
}

func NewService(workouts workoutsLoader, metrics metricsLoader, goals Goals) *Service {
	return &Service{
		workouts: workouts,
		metrics:  metrics,
		goals:    goals,
	}
}

// Build runs both pipelines side by side; they share no state. A failing
// pipeline does not affect the other one, its error just ends up in the report.
func (s *Service) Build(ctx context.Context, workoutsPath, metricsPath string) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	report := &Report{}

	var g errgroup.Group
	g.Go(func() error {
		report.Workouts, report.WorkoutsErr = s.workouts.Load(ctx, workoutsPath)
		return nil
	})
	g.Go(func() error {
		report.Metrics, report.MetricsErr = s.metrics.Load(ctx, metricsPath)
		return nil
	})
	_ = g.Wait()

	s.finish(report)
	return report, report.Err()
}

func (s *Service) BuildWorkouts(ctx context.Context, path string) (*Report, error) {
	report := &Report{}
	report.Workouts, report.WorkoutsErr = s.workouts.Load(ctx, path)
	s.finish(report)
	return report, report.Err()
}

func (s *Service) BuildMetrics(ctx context.Context, path string) (*Report, error) {
	report := &Report{}
	report.Metrics, report.MetricsErr = s.metrics.Load(ctx, path)
	s.finish(report)
	return report, report.Err()
}

func (s *Service) finish(report *Report) {
	// a failed pipeline must not leak a partial result
	if report.WorkoutsErr != nil {
		report.Workouts = nil
		log.Errorf("workouts: %s", Describe(report.WorkoutsErr))
	}
	if report.MetricsErr != nil {
		report.Metrics = nil
		log.Errorf("health metrics: %s", Describe(report.MetricsErr))
	}
	report.Goals = s.goals.Progress(report)
}
