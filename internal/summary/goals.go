package summary

const (
	GoalWorkouts      = "workouts"
	GoalMinutes       = "minutes"
	GoalMetricEntries = "metric entries"
)

// Goals are optional targets for the totals, zero means not set.
type Goals struct {
	Workouts      int
	Minutes       float64
	MetricEntries int
}

type GoalProgress struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Actual  float64 `json:"actual"`
	Reached bool    `json:"reached"`
}

// Percent of the target reached, capped at 100.
func (p GoalProgress) Percent() float64 {
	if p.Target <= 0 {
		return 100
	}
	pct := p.Actual / p.Target * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Progress compares the report results against the set goals. Goals of
// a pipeline without a result are left out.
func (g Goals) Progress(report *Report) []GoalProgress {
	progress := []GoalProgress{}

	if report.Workouts != nil {
		if g.Workouts > 0 {
			progress = append(progress, newProgress(GoalWorkouts, float64(g.Workouts), float64(report.Workouts.TotalWorkouts)))
		}
		if g.Minutes > 0 {
			progress = append(progress, newProgress(GoalMinutes, g.Minutes, report.Workouts.TotalMinutes))
		}
	}

	if report.Metrics != nil && g.MetricEntries > 0 {
		progress = append(progress, newProgress(GoalMetricEntries, float64(g.MetricEntries), float64(report.Metrics.Entries)))
	}

	return progress
}

func newProgress(name string, target, actual float64) GoalProgress {
	return GoalProgress{
		Name:    name,
		Target:  target,
		Actual:  actual,
		Reached: actual >= target,
	}
}
