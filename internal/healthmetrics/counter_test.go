package healthmetrics_test

import (
	"encoding/json"
	"testing"

	"github.com/2beens/fitsummary/internal/healthmetrics"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCountMetrics_Collection(t *testing.T) {
	doc := healthmetrics.Document{
		"metrics": []any{
			map[string]any{"name": "heart_rate", "value": json.Number("62")},
			map[string]any{"name": "steps", "value": json.Number("10432")},
			map[string]any{"name": "weight", "value": json.Number("81.2")},
		},
	}

	count, err := healthmetrics.CountMetrics(doc)
	require.NoError(t, err)
	assert.Equal(t, &healthmetrics.Count{Entries: 3}, count)
}

func TestCountMetrics_NoMetrics(t *testing.T) {
	testCases := []struct {
		name string
		doc  healthmetrics.Document
	}{
		{name: "key absent", doc: healthmetrics.Document{"user": "serj"}},
		{name: "empty document", doc: healthmetrics.Document{}},
		{name: "null", doc: healthmetrics.Document{"metrics": nil}},
		{name: "empty array", doc: healthmetrics.Document{"metrics": []any{}}},
		{name: "empty string", doc: healthmetrics.Document{"metrics": ""}},
		{name: "false", doc: healthmetrics.Document{"metrics": false}},
		{name: "zero", doc: healthmetrics.Document{"metrics": json.Number("0")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hook := logtest.NewGlobal()
			defer hook.Reset()

			count, err := healthmetrics.CountMetrics(tc.doc)
			require.NoError(t, err)
			assert.Equal(t, &healthmetrics.Count{Entries: 0, NoMetrics: true}, count)

			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, "health metrics: no metrics found", hook.LastEntry().Message)
		})
	}
}

func TestCountMetrics_NotACollection(t *testing.T) {
	testCases := []struct {
		name    string
		metrics any
	}{
		{name: "object", metrics: map[string]any{"heart_rate": json.Number("62")}},
		{name: "empty object", metrics: map[string]any{}},
		{name: "string", metrics: "heart_rate"},
		{name: "number", metrics: json.Number("12")},
		{name: "true", metrics: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			count, err := healthmetrics.CountMetrics(healthmetrics.Document{"metrics": tc.metrics})
			assert.Nil(t, count)

			var merr *healthmetrics.Error
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, healthmetrics.KindNotACollection, merr.Kind)
			assert.Equal(t, "metrics is not an array or lacks a length", merr.Message())
			assert.True(t, healthmetrics.IsKind(err, healthmetrics.KindNotACollection))
		})
	}
}

func TestCountMetrics_Idempotent(t *testing.T) {
	doc := healthmetrics.Document{"metrics": []any{"a", "b"}}

	first, err := healthmetrics.CountMetrics(doc)
	require.NoError(t, err)
	second, err := healthmetrics.CountMetrics(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "not_found", healthmetrics.KindNotFound.String())
	assert.Equal(t, "syntax", healthmetrics.KindSyntax.String())
	assert.Equal(t, "not_a_collection", healthmetrics.KindNotACollection.String())
	assert.Equal(t, "unknown", healthmetrics.ErrorKind(0).String())
}
