package healthmetrics

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// MetricsKey is the top level key holding the metric entries.
const MetricsKey = "metrics"

// Document is a decoded health metrics export (a JSON object).
type Document map[string]any

type Count struct {
	Entries int `json:"entries"`
	// NoMetrics is set when the document had no metrics to count,
	// which is a normal, empty export.
	NoMetrics bool `json:"noMetrics"`
}

// CountMetrics returns the number of entries under the metrics key.
// A missing, null or empty value gives a zero count with NoMetrics set.
// Anything present that is not an array is a KindNotACollection error.
func CountMetrics(doc Document) (*Count, error) {
	raw, ok := doc[MetricsKey]
	if !ok || isEmptyValue(raw) {
		log.Warnln("health metrics: no metrics found")
		return &Count{NoMetrics: true}, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		log.Errorf("health metrics: metrics is not an array or lacks a length, got %T", raw)
		return nil, &Error{
			Kind: KindNotACollection,
			Err:  fmt.Errorf("unexpected metrics value of type %s", jsonTypeName(raw)),
		}
	}

	return &Count{Entries: len(entries)}, nil
}

// isEmptyValue covers the values an export uses to say "nothing here":
// null, false, 0, "" and [].
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case float64:
		return val == 0
	case int:
		return val == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
