package inbound

import "context"

// VideoPipelinePort drives one job from running to a terminal state.
// Run never returns an error: every failure is captured on the job
// record instead of escaping the task boundary.
type VideoPipelinePort interface {
	Run(ctx context.Context, jobID string, script string)
}
