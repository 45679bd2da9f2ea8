package workouts

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitsummary/internal/telemetry/metrics"
	"github.com/2beens/fitsummary/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const utf8BOM = "\ufeff"

type Loader struct {
	metricsManager *metrics.Manager
}

func NewLoader(metricsManager *metrics.Manager) *Loader {
	return &Loader{
		metricsManager: metricsManager,
	}
}

// Load reads the whole CSV file at path and aggregates it.
// On failure the returned error is always a *Error.
func (l *Loader) Load(ctx context.Context, path string) (_ *Summary, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.load")
	span.SetAttributes(attribute.String("path", path))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	started := time.Now()
	defer func() {
		outcome := metrics.OutcomeOK
		var werr *Error
		if errors.As(err, &werr) {
			outcome = werr.Kind.String()
		}
		l.metricsManager.ObservePipeline(metrics.PipelineWorkouts, outcome, time.Since(started))
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("workouts: read %s: %s", path, err)
		return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
	}

	table, err := ReadTable(bytes.NewReader(data))
	if err != nil {
		var werr *Error
		if errors.As(err, &werr) {
			werr.Path = path
		}
		log.Errorf("workouts: decode %s: %s", path, err)
		return nil, err
	}

	summary, err := Aggregate(table)
	if err != nil {
		var werr *Error
		if errors.As(err, &werr) {
			werr.Path = path
		}
		return nil, err
	}

	l.metricsManager.CounterWorkoutRows.Add(float64(summary.TotalWorkouts))
	for _, issue := range summary.Issues {
		l.metricsManager.CounterRowIssues.WithLabelValues(issue.Kind.String()).Inc()
	}
	l.metricsManager.GaugeWorkoutMinutes.Set(summary.TotalMinutes)

	span.SetAttributes(
		attribute.Int("workouts", summary.TotalWorkouts),
		attribute.Int("issues", len(summary.Issues)),
	)
	log.Debugf("workouts: %s -> %d workouts, %.2f minutes, %d row issues",
		path, summary.TotalWorkouts, summary.TotalMinutes, len(summary.Issues))

	return summary, nil
}

// ReadTable decodes CSV from r. The first record is the header; an empty
// input gives a Table with no columns. Rows shorter than the header simply
// lack the trailing columns, extra fields are dropped.
func ReadTable(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, &Error{Kind: KindDecode, Err: err}
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[i] = strings.TrimSpace(name)
	}

	table := Table{
		Columns: columns,
		Rows:    []Row{},
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, &Error{Kind: KindDecode, Err: err}
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			if _, seen := row[col]; seen {
				continue
			}
			row[col] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
