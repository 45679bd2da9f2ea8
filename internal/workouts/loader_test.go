package workouts_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2beens/fitsummary/internal/telemetry/metrics"
	"github.com/2beens/fitsummary/internal/workouts"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	loader := workouts.NewLoader(metricsManager)

	path := writeFile(t, "workouts.csv", strings.Join([]string{
		"date,duration,type",
		"2024-03-01,30,running",
		"2024-03-02,,gym",
		"2024-03-03,45min,cycling",
		"2024-03-04,abc,running",
		"2024-03-05,-10,swimming",
		`2024-03-06,"1,200",running`,
	}, "\n"))

	summary, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 6, summary.TotalWorkouts)
	assert.Equal(t, 76.0, summary.TotalMinutes)
	require.Len(t, summary.Issues, 3)
	assert.Equal(t, workouts.IssueMissing, summary.Issues[0].Kind)
	assert.Equal(t, 1, summary.Issues[0].Row)
	assert.Equal(t, workouts.IssueInvalid, summary.Issues[1].Kind)
	assert.Equal(t, 3, summary.Issues[1].Row)
	assert.Equal(t, workouts.IssueNegative, summary.Issues[2].Kind)
	assert.Equal(t, 4, summary.Issues[2].Row)

	assert.Equal(t, 6.0, testutil.ToFloat64(metricsManager.CounterWorkoutRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterRowIssues.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterRowIssues.WithLabelValues("negative")))
	assert.Equal(t, 76.0, testutil.ToFloat64(metricsManager.GaugeWorkoutMinutes))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPipelineRuns.WithLabelValues(metrics.PipelineWorkouts, metrics.OutcomeOK)))

	// same file, same result
	again, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	loader := workouts.NewLoader(metricsManager)

	path := filepath.Join(t.TempDir(), "does-not-exist.csv")
	summary, err := loader.Load(context.Background(), path)
	assert.Nil(t, summary)

	var werr *workouts.Error
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, workouts.KindNotFound, werr.Kind)
	assert.Equal(t, path, werr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "file not found", werr.Message())
	assert.Contains(t, err.Error(), "file not found: "+path)

	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPipelineRuns.WithLabelValues(metrics.PipelineWorkouts, "not_found")))
}

func TestLoader_Load_Directory(t *testing.T) {
	loader := workouts.NewLoader(metrics.NewTestManager())

	summary, err := loader.Load(context.Background(), t.TempDir())
	assert.Nil(t, summary)
	assert.True(t, workouts.IsKind(err, workouts.KindNotFound))
}

func TestLoader_Load_MissingDurationColumn(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	loader := workouts.NewLoader(metricsManager)

	path := writeFile(t, "workouts.csv", "date,minutes,type\n2024-03-01,30,running\n")
	summary, err := loader.Load(context.Background(), path)
	assert.Nil(t, summary)

	var werr *workouts.Error
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, workouts.KindSchema, werr.Kind)
	assert.Equal(t, path, werr.Path)
	assert.Equal(t, "duration", werr.Column)

	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPipelineRuns.WithLabelValues(metrics.PipelineWorkouts, "schema")))
	assert.Zero(t, testutil.ToFloat64(metricsManager.CounterWorkoutRows))
}

func TestLoader_Load_HeaderOnly(t *testing.T) {
	loader := workouts.NewLoader(metrics.NewTestManager())

	path := writeFile(t, "workouts.csv", "date,duration,type\n")
	summary, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalWorkouts)
	assert.Equal(t, 0.0, summary.TotalMinutes)
	assert.Empty(t, summary.Issues)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader := workouts.NewLoader(metrics.NewTestManager())

	path := writeFile(t, "workouts.csv", "")
	summary, err := loader.Load(context.Background(), path)
	assert.Nil(t, summary)
	assert.True(t, workouts.IsKind(err, workouts.KindSchema))
}

func TestLoader_Load_CorruptCSV(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	loader := workouts.NewLoader(metricsManager)

	path := writeFile(t, "workouts.csv", "date,duration,type\n2024-03-01,3\"0,running\n")
	summary, err := loader.Load(context.Background(), path)
	assert.Nil(t, summary)

	var werr *workouts.Error
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, workouts.KindDecode, werr.Kind)
	assert.Equal(t, path, werr.Path)
	assert.Equal(t, "invalid CSV format", werr.Message())

	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPipelineRuns.WithLabelValues(metrics.PipelineWorkouts, "decode")))
}

func TestReadTable(t *testing.T) {
	input := "\ufeff date , duration ,type\n" +
		"2024-03-01,30,running,extra\n" +
		"2024-03-02,15\n" +
		"2024-03-03\n"

	table, err := workouts.ReadTable(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "duration", "type"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, workouts.Row{"date": "2024-03-01", "duration": "30", "type": "running"}, table.Rows[0])
	assert.Equal(t, workouts.Row{"date": "2024-03-02", "duration": "15"}, table.Rows[1])
	assert.Equal(t, workouts.Row{"date": "2024-03-03"}, table.Rows[2])

	summary, err := workouts.Aggregate(table)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalWorkouts)
	assert.Equal(t, 45.0, summary.TotalMinutes)
	require.Len(t, summary.Issues, 1)
	assert.Equal(t, workouts.RowIssue{Row: 2, Kind: workouts.IssueMissing}, summary.Issues[0])
}

func TestReadTable_Empty(t *testing.T) {
	table, err := workouts.ReadTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestReadTable_DuplicateColumnKeepsFirst(t *testing.T) {
	table, err := workouts.ReadTable(strings.NewReader("duration,duration\n10,20\n"))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "10", table.Rows[0]["duration"])
}
