package healthmetrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/2beens/fitsummary/internal/telemetry/metrics"
	"github.com/2beens/fitsummary/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Loader struct {
	metricsManager *metrics.Manager
}

func NewLoader(metricsManager *metrics.Manager) *Loader {
	return &Loader{
		metricsManager: metricsManager,
	}
}

// Load reads the JSON document at path and counts its metric entries.
// On failure the returned error is always a *Error.
func (l *Loader) Load(ctx context.Context, path string) (_ *Count, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "healthmetrics.load")
	span.SetAttributes(attribute.String("path", path))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	started := time.Now()
	defer func() {
		outcome := metrics.OutcomeOK
		var merr *Error
		if errors.As(err, &merr) {
			outcome = merr.Kind.String()
		}
		l.metricsManager.ObservePipeline(metrics.PipelineHealthMetrics, outcome, time.Since(started))
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("health metrics: read %s: %s", path, err)
		return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
	}

	doc, err := DecodeDocument(bytes.NewReader(data))
	if err != nil {
		log.Errorf("health metrics: decode %s: %s", path, err)
		return nil, &Error{Kind: KindSyntax, Path: path, Err: err}
	}

	count, err := CountMetrics(doc)
	if err != nil {
		var merr *Error
		if errors.As(err, &merr) {
			merr.Path = path
		}
		return nil, err
	}

	l.metricsManager.CounterMetricEntries.Add(float64(count.Entries))
	span.SetAttributes(attribute.Int("entries", count.Entries))
	log.Debugf("health metrics: %s -> %d entries", path, count.Entries)

	return count, nil
}

// DecodeDocument decodes a single JSON value from r. An empty input, invalid
// JSON or trailing data after the value is an error. A valid root that is not
// an object gives an empty Document.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := root.(map[string]any)
	if !ok {
		// valid JSON without a metrics key to look up
		log.Warnf("health metrics: top-level value is %s, not an object", jsonTypeName(root))
		return Document{}, nil
	}

	return Document(obj), nil
}
