package inbound

import "context"

// JobRunnerPort spawns one tracked background task per job so the
// shutdown path can enumerate and await in-flight work.
type JobRunnerPort interface {
	Submit(jobID string, task func()) error
	Active() []string
	Wait(ctx context.Context) error
}
