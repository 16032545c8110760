package outbound

import "github.com/palgaurav085-cmd/animexa-worker/domain"

// JobRegistryPort is the source of truth for job status polling. Reads
// return snapshots; mutations are only ever issued by the single
// pipeline task that owns the job. Writes against a terminal job return
// domain.ErrJobTerminal and leave the record untouched.
type JobRegistryPort interface {
	Create() domain.Job
	Get(id string) (domain.Job, error)
	MarkRunning(id string) error
	SetTotalScenes(id string, total int) error
	SetProgress(id string, progress int) error
	MarkSucceeded(id string, url string) error
	MarkFailed(id string, cause error) error
}
