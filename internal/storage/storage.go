package storage

import (
	"time"

	"utest/pkg/check"
)

// Storage persists and loads run results (e.g. for the failures
// viewer).
type Storage interface {
	Save(out *RunOutput) error
	Load() (*RunOutput, error)
}

// RunMeta summarizes one run.
type RunMeta struct {
	UnitsRun        int     `json:"units_run"`
	Failures        int     `json:"failures"`
	Errors          int     `json:"errors"`
	Success         bool    `json:"success"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// FailureDetail is one persisted failure or error record.
type FailureDetail struct {
	Kind        string   `json:"kind"`
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Explanation string   `json:"explanation,omitempty"`
	Message     string   `json:"message"`
	Trace       []string `json:"trace,omitempty"`
}

// RunOutput is the complete persisted structure for one run.
type RunOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureDetail `json:"details"`
}

// Snapshot converts a finished collector into its persistable form.
func Snapshot(res *check.TextResults) *RunOutput {
	out := &RunOutput{
		Meta: RunMeta{
			UnitsRun:        res.Runs(),
			Failures:        len(res.Failures()),
			Errors:          len(res.Errors()),
			Success:         res.WasSuccessful(),
			Duration:        res.Elapsed().String(),
			DurationSeconds: res.Elapsed().Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
	}
	for _, rec := range res.Errors() {
		out.Details = append(out.Details, detailFrom("error", rec))
	}
	for _, rec := range res.Failures() {
		out.Details = append(out.Details, detailFrom("failure", rec))
	}
	return out
}

func detailFrom(kind string, rec check.Record) FailureDetail {
	d := FailureDetail{
		Kind:        kind,
		ID:          rec.Unit.ID(),
		Description: rec.Unit.Description(),
		Explanation: rec.Unit.Explanation(),
	}
	if rec.Detail != nil {
		d.Message = rec.Detail.Message
		d.Trace = rec.Detail.Trace
	}
	return d
}
