package workouts

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Aggregate counts the workouts in table and sums their durations.
//
// The table must declare a duration column, otherwise a KindSchema error is
// returned and there is no summary. Rows with a missing, non numeric or
// negative duration still count as workouts, add nothing to the minutes,
// and are reported in Summary.Issues (and logged).
func Aggregate(table Table) (*Summary, error) {
	if !table.HasColumn(DurationColumn) {
		log.Errorf("workouts: missing %s column, declared columns: %v", DurationColumn, table.Columns)
		return nil, &Error{Kind: KindSchema, Column: DurationColumn}
	}

	summary := &Summary{
		ByActivity: make(map[string]ActivityTotals),
		Issues:     []RowIssue{},
	}

	for i, row := range table.Rows {
		summary.TotalWorkouts++

		activity := strings.TrimSpace(row[ActivityColumn])
		if activity == "" {
			activity = unknownActivity
		}
		totals := summary.ByActivity[activity]
		totals.Workouts++

		minutes, issue := classifyDuration(i, row)
		if issue != nil {
			logIssue(*issue)
			summary.Issues = append(summary.Issues, *issue)
		} else {
			summary.TotalMinutes += minutes
			totals.Minutes += minutes
		}

		summary.ByActivity[activity] = totals
	}

	return summary, nil
}

func classifyDuration(rowIdx int, row Row) (float64, *RowIssue) {
	raw, ok := row[DurationColumn]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, &RowIssue{Row: rowIdx, Kind: IssueMissing}
	}

	minutes, _, ok := ParseLeadingFloat(raw)
	if !ok {
		return 0, &RowIssue{Row: rowIdx, Kind: IssueInvalid, Raw: raw}
	}

	if minutes < 0 {
		return 0, &RowIssue{Row: rowIdx, Kind: IssueNegative, Raw: raw, Value: minutes}
	}

	return minutes, nil
}

func logIssue(issue RowIssue) {
	fields := log.Fields{
		"row":    issue.Row,
		"reason": issue.Kind.String(),
	}
	switch issue.Kind {
	case IssueInvalid:
		fields["raw"] = issue.Raw
	case IssueNegative:
		fields["value"] = issue.Value
	}
	log.WithFields(fields).Warnf("workouts: %s", issue)
}
