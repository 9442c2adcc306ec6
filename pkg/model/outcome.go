package model

// Outcome is the terminal state of a download invocation. Cancellation
// is a distinct outcome, not an error.
type Outcome string

// Terminal download states.
const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// DownloadResult is the tagged result of one download invocation.
type DownloadResult struct {
	Outcome Outcome
	// Path is the destination file, set only when Outcome is
	// OutcomeCompleted.
	Path string
	// Err carries the failure reason, set only when Outcome is
	// OutcomeFailed.
	Err error
}
