package queue

import "time"

// Status represents the lifecycle of a queue item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusMerging   Status = "merging"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusMerging,
	StatusCompleted,
	StatusFailed,
}

// ValidStatus reports whether value names a known lifecycle state.
func ValidStatus(value string) bool {
	for _, status := range allStatuses {
		if string(status) == value {
			return true
		}
	}
	return false
}

// Item is one subtitle pair tracked by the merge queue.
type Item struct {
	ID           int64
	BaseName     string
	SourcePath   string
	TargetPath   string
	OutputPath   string
	Fingerprint  string
	Status       Status
	ErrorMessage string
	RunID        string
	SpanCount    int
	WarningCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HealthSummary aggregates queue counts per lifecycle state.
type HealthSummary struct {
	Total     int
	Pending   int
	Merging   int
	Completed int
	Failed    int
}
