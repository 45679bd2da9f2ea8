package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/fitsummary/internal/healthmetrics"
	"github.com/2beens/fitsummary/internal/workouts"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTitle = lipgloss.Color("#74c7ec")
	colorMuted = lipgloss.Color("#a6adc8")
	colorGood  = lipgloss.Color("#a6e3a1")
	colorBad   = lipgloss.Color("#f38ba8")
	colorWarn  = lipgloss.Color("#fab387")
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Foreground(colorTitle).Bold(true),
		label: r.NewStyle().Width(18),
		muted: r.NewStyle().Foreground(colorMuted),
		good:  r.NewStyle().Foreground(colorGood).Bold(true),
		bad:   r.NewStyle().Foreground(colorBad).Bold(true),
		warn:  r.NewStyle().Foreground(colorWarn),
	}
}

type RenderOptions struct {
	// Verbose adds the per activity breakdown and every skipped row.
	Verbose bool
}

// Render writes the human readable report. Sections of pipelines that did
// not run are left out.
func Render(w io.Writer, report *Report, opts RenderOptions) error {
	st := newStyles(w)
	var sb strings.Builder

	if report.Workouts != nil || report.WorkoutsErr != nil {
		sb.WriteString(st.title.Render("Workouts") + "\n")
		if report.WorkoutsErr != nil {
			sb.WriteString("  " + st.bad.Render("error: "+Describe(report.WorkoutsErr)) + "\n")
		} else {
			renderWorkouts(&sb, st, report.Workouts, opts)
		}
	}

	if report.Metrics != nil || report.MetricsErr != nil {
		sb.WriteString(st.title.Render("Health metrics") + "\n")
		if report.MetricsErr != nil {
			sb.WriteString("  " + st.bad.Render("error: "+Describe(report.MetricsErr)) + "\n")
		} else {
			renderMetrics(&sb, st, report.Metrics)
		}
	}

	if len(report.Goals) > 0 {
		sb.WriteString(st.title.Render("Goals") + "\n")
		for _, g := range report.Goals {
			mark := st.bad.Render("not reached")
			if g.Reached {
				mark = st.good.Render("reached")
			}
			fmt.Fprintf(&sb, "  %s%s / %s (%.0f%%) %s\n",
				st.label.Render(g.Name), formatNumber(g.Actual), formatNumber(g.Target), g.Percent(), mark)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderWorkouts(sb *strings.Builder, st styles, s *workouts.Summary, opts RenderOptions) {
	fmt.Fprintf(sb, "  %s%d\n", st.label.Render("total workouts"), s.TotalWorkouts)
	fmt.Fprintf(sb, "  %s%s\n", st.label.Render("total minutes"), formatNumber(s.TotalMinutes))

	if opts.Verbose && len(s.ByActivity) > 0 {
		sb.WriteString("  " + st.muted.Render("by activity") + "\n")
		activities := make([]string, 0, len(s.ByActivity))
		for name := range s.ByActivity {
			activities = append(activities, name)
		}
		sort.Strings(activities)
		for _, name := range activities {
			totals := s.ByActivity[name]
			fmt.Fprintf(sb, "    %s%d workouts, %s min\n",
				st.label.Render(name), totals.Workouts, formatNumber(totals.Minutes))
		}
	}

	if len(s.Issues) == 0 {
		return
	}
	if !opts.Verbose {
		sb.WriteString("  " + st.warn.Render(fmt.Sprintf("%d rows with an unusable duration (use --verbose)", len(s.Issues))) + "\n")
		return
	}
	sb.WriteString("  " + st.muted.Render("skipped durations") + "\n")
	for _, issue := range s.Issues {
		sb.WriteString("    " + st.warn.Render(issue.String()) + "\n")
	}
}

func renderMetrics(sb *strings.Builder, st styles, c *healthmetrics.Count) {
	fmt.Fprintf(sb, "  %s%d\n", st.label.Render("entries"), c.Entries)
	if c.NoMetrics {
		sb.WriteString("  " + st.warn.Render("no metrics found") + "\n")
	}
}

type jsonReport struct {
	Workouts      *workouts.Summary    `json:"workouts"`
	WorkoutsError string               `json:"workoutsError,omitempty"`
	Metrics       *healthmetrics.Count `json:"metrics"`
	MetricsError  string               `json:"metricsError,omitempty"`
	Goals         []GoalProgress       `json:"goals"`
}

func RenderJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Workouts:      report.Workouts,
		WorkoutsError: Describe(report.WorkoutsErr),
		Metrics:       report.Metrics,
		MetricsError:  Describe(report.MetricsErr),
		Goals:         report.Goals,
	})
}

// formatNumber keeps at most two decimals, "45.5" rather than "45.50".
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
