package domain

import "time"

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether a status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// Job tracks one script-to-video request through its lifecycle.
// TotalScenes is nil until segmentation has run. URL is set only on
// success, Error only on failure.
type Job struct {
	ID          string
	Status      JobStatus
	Progress    int
	TotalScenes *int
	URL         string
	Error       string
	FinishedAt  time.Time
}

func NewScene(text string, ordinal int) Scene {
	return Scene{
		Text:    text,
		Ordinal: ordinal,
	}
}

// Scene is one ordered visual description derived from the script.
// Its ordinal determines clip order in the final video.
type Scene struct {
	Text    string
	Ordinal int
}
