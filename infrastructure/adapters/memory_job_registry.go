package adapters

import (
	"sync"
	"time"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
	"github.com/google/uuid"
)

const sweepInterval = time.Minute

// MemoryJobRegistry owns all job records for the process lifetime.
// Reads return snapshots; the terminal-state guard makes succeeded and
// failed records immutable. Terminal records older than the retention
// window are evicted by a background sweep.
type MemoryJobRegistry struct {
	logger    outbound.LoggerPort
	retention time.Duration
	mu        sync.RWMutex
	jobs      map[string]*domain.Job
	stopOnce  sync.Once
	stop      chan struct{}
}

func NewMemoryJobRegistry(logger outbound.LoggerPort, retention time.Duration) *MemoryJobRegistry {
	r := &MemoryJobRegistry{
		logger:    logger,
		retention: retention,
		jobs:      make(map[string]*domain.Job),
		stop:      make(chan struct{}),
	}
	if retention > 0 {
		go r.sweepLoop()
	}
	return r
}

func (r *MemoryJobRegistry) Create() domain.Job {
	job := &domain.Job{
		ID:     uuid.NewString(),
		Status: domain.JobStatusQueued,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	return *job
}

func (r *MemoryJobRegistry) Get(id string) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return *job, nil
}

func (r *MemoryJobRegistry) MarkRunning(id string) error {
	return r.update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusRunning
	})
}

func (r *MemoryJobRegistry) SetTotalScenes(id string, total int) error {
	return r.update(id, func(job *domain.Job) {
		job.TotalScenes = &total
	})
}

// SetProgress ignores values below the current progress so pollers
// always observe a non-decreasing sequence.
func (r *MemoryJobRegistry) SetProgress(id string, progress int) error {
	return r.update(id, func(job *domain.Job) {
		if progress > 100 {
			progress = 100
		}
		if progress > job.Progress {
			job.Progress = progress
		}
	})
}

func (r *MemoryJobRegistry) MarkSucceeded(id string, url string) error {
	return r.update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusSucceeded
		job.Progress = 100
		job.URL = url
		job.FinishedAt = time.Now()
	})
}

func (r *MemoryJobRegistry) MarkFailed(id string, cause error) error {
	return r.update(id, func(job *domain.Job) {
		job.Status = domain.JobStatusFailed
		job.Error = cause.Error()
		job.FinishedAt = time.Now()
	})
}

// Close stops the eviction sweep.
func (r *MemoryJobRegistry) Close() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

func (r *MemoryJobRegistry) update(id string, mutate func(job *domain.Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	if job.Status.Terminal() {
		return domain.ErrJobTerminal
	}

	mutate(job)
	return nil
}

func (r *MemoryJobRegistry) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if evicted := r.evictExpired(time.Now()); evicted > 0 {
				r.logger.DebugWithFields("evicted terminal jobs", map[string]interface{}{
					"count": evicted,
				})
			}
		}
	}
}

func (r *MemoryJobRegistry) evictExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, job := range r.jobs {
		if job.Status.Terminal() && now.Sub(job.FinishedAt) > r.retention {
			delete(r.jobs, id)
			evicted++
		}
	}
	return evicted
}

var _ outbound.JobRegistryPort = (*MemoryJobRegistry)(nil)
