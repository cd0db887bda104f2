// Package registry tracks analysis runs by identifier so callers can detach
// from an in-flight run and re-attach later. State lives in one explicit,
// mutex-guarded map owned by whoever constructed the registry.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// Run is a snapshot of one analysis run's state.
type Run struct {
	ID          string
	Status      Status
	Result      *types.AnalysisResult
	Err         error
	StartedAt   time.Time
	CompletedAt time.Time
}

type entry struct {
	run  Run
	done chan struct{}
}

type Registry struct {
	mu   sync.RWMutex
	runs map[string]*entry
}

func New() *Registry {
	return &Registry{runs: make(map[string]*entry)}
}

// NewRunID returns a fresh run identifier. Callers may supply their own IDs
// to Begin instead.
func NewRunID() string {
	return uuid.NewString()
}

// Begin registers a run as processing. Re-registering a live run is an error.
func (r *Registry) Begin(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.runs[id]; ok && e.run.Status == StatusProcessing {
		return fmt.Errorf("run %s already in progress", id)
	}

	r.runs[id] = &entry{
		run: Run{
			ID:        id,
			Status:    StatusProcessing,
			StartedAt: time.Now(),
		},
		done: make(chan struct{}),
	}
	return nil
}

// Complete marks a run as finished with its result.
func (r *Registry) Complete(id string, result *types.AnalysisResult) {
	r.finish(id, StatusComplete, result, nil)
}

// Fail marks a run as failed.
func (r *Registry) Fail(id string, err error) {
	r.finish(id, StatusError, nil, err)
}

func (r *Registry) finish(id string, status Status, result *types.AnalysisResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.runs[id]
	if !ok || e.run.Status != StatusProcessing {
		return
	}

	e.run.Status = status
	e.run.Result = result
	e.run.Err = err
	e.run.CompletedAt = time.Now()
	close(e.done)
}

// Get returns a snapshot of the run. The second return is false for unknown
// or evicted IDs.
func (r *Registry) Get(id string) (Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return e.run, true
}

// Wait blocks until the run finishes or the context is cancelled, then
// returns the final snapshot. This is the re-attach path for callers that
// detached from an in-flight run.
func (r *Registry) Wait(ctx context.Context, id string) (Run, error) {
	r.mu.RLock()
	e, ok := r.runs[id]
	r.mu.RUnlock()

	if !ok {
		return Run{}, fmt.Errorf("unknown run %s", id)
	}

	select {
	case <-e.done:
	case <-ctx.Done():
		return Run{}, ctx.Err()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return e.run, nil
}

// Evict drops a run from the registry.
func (r *Registry) Evict(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, id)
}

// Len reports how many runs are currently tracked.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runs)
}
