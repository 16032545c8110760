package services

import (
	"context"
	"sync"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/inbound"
	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
)

type jobRunner struct {
	logger     outbound.LoggerPort
	dispatcher outbound.TaskDispatcher
	wg         sync.WaitGroup
	mu         sync.Mutex
	active     map[string]struct{}
}

// NewJobRunner wraps the worker pool so every spawned job task is
// tracked by id until it finishes. Shutdown uses Wait to drain
// in-flight jobs instead of dropping them.
func NewJobRunner(logger outbound.LoggerPort, dispatcher outbound.TaskDispatcher) inbound.JobRunnerPort {
	return &jobRunner{
		logger:     logger,
		dispatcher: dispatcher,
		active:     make(map[string]struct{}),
	}
}

func (r *jobRunner) Submit(jobID string, task func()) error {
	r.mu.Lock()
	r.active[jobID] = struct{}{}
	r.mu.Unlock()
	r.wg.Add(1)

	err := r.dispatcher.Submit(func() {
		defer func() {
			r.mu.Lock()
			delete(r.active, jobID)
			r.mu.Unlock()
			r.wg.Done()
		}()
		task()
	})
	if err != nil {
		r.mu.Lock()
		delete(r.active, jobID)
		r.mu.Unlock()
		r.wg.Done()
		r.logger.ErrorWithFields(err, "failed to submit job task", map[string]interface{}{
			"job_id": jobID,
		})
		return err
	}

	return nil
}

func (r *jobRunner) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	return ids
}

func (r *jobRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
