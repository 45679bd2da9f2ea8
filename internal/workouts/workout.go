package workouts

import (
	"fmt"
	"strconv"
)

const (
	// DurationColumn holds the workout length in minutes.
	DurationColumn = "duration"
	// ActivityColumn holds the activity type, e.g. "running".
	ActivityColumn = "type"

	unknownActivity = "unknown"
)

// Row is a single decoded CSV record, column name -> raw value.
// Column names are case-sensitive.
type Row map[string]string

// Table is a decoded workouts export. Columns is the declared header,
// available even when there are no rows.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

type ActivityTotals struct {
	Workouts int     `json:"workouts"`
	Minutes  float64 `json:"minutes"`
}

// Summary is the aggregate over all rows of a workouts table.
type Summary struct {
	TotalWorkouts int                       `json:"totalWorkouts"`
	TotalMinutes  float64                   `json:"totalMinutes"`
	ByActivity    map[string]ActivityTotals `json:"byActivity"`
	Issues        []RowIssue                `json:"issues"`
}

type IssueKind int

const (
	IssueMissing IssueKind = iota + 1
	IssueInvalid
	IssueNegative
)

func (k IssueKind) String() string {
	switch k {
	case IssueMissing:
		return "missing"
	case IssueInvalid:
		return "invalid"
	case IssueNegative:
		return "negative"
	default:
		return "unknown"
	}
}

func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RowIssue describes a row whose duration did not count towards the total.
// Row is the 0-based index of the data row (header excluded).
type RowIssue struct {
	Row   int       `json:"row"`
	Kind  IssueKind `json:"kind"`
	Raw   string    `json:"raw,omitempty"`
	Value float64   `json:"value,omitempty"`
}

func (i RowIssue) String() string {
	switch i.Kind {
	case IssueMissing:
		return fmt.Sprintf("row %d: missing duration", i.Row)
	case IssueInvalid:
		return fmt.Sprintf("row %d: invalid duration %q", i.Row, i.Raw)
	case IssueNegative:
		return fmt.Sprintf("row %d: negative duration %s", i.Row, strconv.FormatFloat(i.Value, 'f', -1, 64))
	default:
		return fmt.Sprintf("row %d: unknown issue", i.Row)
	}
}
