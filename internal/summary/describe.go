package summary

import (
	"errors"
	"fmt"

	"github.com/2beens/fitsummary/internal/healthmetrics"
	"github.com/2beens/fitsummary/internal/workouts"
)

// Describe turns a pipeline error into the line shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var werr *workouts.Error
	if errors.As(err, &werr) {
		switch werr.Kind {
		case workouts.KindNotFound:
			return withPath("workouts file not found", werr.Path)
		case workouts.KindDecode:
			return withPath("workouts file has an invalid CSV format", werr.Path)
		case workouts.KindSchema:
			return withPath(fmt.Sprintf("workouts file is missing the %q column", werr.Column), werr.Path)
		}
	}

	var merr *healthmetrics.Error
	if errors.As(err, &merr) {
		switch merr.Kind {
		case healthmetrics.KindNotFound:
			return withPath("health metrics file not found", merr.Path)
		case healthmetrics.KindSyntax:
			return withPath("health metrics file has an invalid document format", merr.Path)
		case healthmetrics.KindNotACollection:
			return withPath("health metrics: metrics is not an array or lacks a length", merr.Path)
		}
	}

	return err.Error()
}

func withPath(msg, path string) string {
	if path == "" {
		return msg
	}
	return msg + ": " + path
}
