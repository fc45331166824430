package app

import (
	"sync"
	"time"
)

// Progress statuses exposed by the tracker
const (
	ProgressIdle        = "idle"
	ProgressDownloading = "downloading"
	ProgressCompleted   = "completed"
	ProgressFailed      = "failed"
)

// ProgressSnapshot is the best-effort state of one correlated job
type ProgressSnapshot struct {
	Percent float64 `json:"percent"`
	Status  string  `json:"status"`
}

type progressEntry struct {
	snapshot   ProgressSnapshot
	finishedAt time.Time // zero while the job is running
}

// ProgressTracker is the only state shared across requests: a keyed,
// mutex-guarded progress map. Finished entries are evicted once their
// retention window passes, so the map stays bounded over the process
// lifetime.
type ProgressTracker struct {
	mu        sync.RWMutex
	entries   map[string]*progressEntry
	retention time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewProgressTracker creates a tracker whose finished entries remain
// readable for the given retention window
func NewProgressTracker(retention time.Duration) *ProgressTracker {
	t := &ProgressTracker{
		entries:   make(map[string]*progressEntry),
		retention: retention,
		stop:      make(chan struct{}),
	}
	go t.janitor()
	return t
}

// Update records the current percent and status for an id. Empty ids are
// ignored; progress correlation is opt-in per request.
func (t *ProgressTracker) Update(id string, percent float64, status string) {
	if id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[id] = &progressEntry{
		snapshot: ProgressSnapshot{Percent: percent, Status: status},
	}
}

// Finish marks the job terminal and starts its retention clock
func (t *ProgressTracker) Finish(id, status string) {
	if id == "" {
		return
	}
	percent := 0.0
	if status == ProgressCompleted {
		percent = 100
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[id] = &progressEntry{
		snapshot:   ProgressSnapshot{Percent: percent, Status: status},
		finishedAt: time.Now(),
	}
}

// Snapshot returns the current state for an id, or the idle default when
// the id is unknown
func (t *ProgressTracker) Snapshot(id string) ProgressSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if entry, ok := t.entries[id]; ok {
		return entry.snapshot
	}
	return ProgressSnapshot{Percent: 0, Status: ProgressIdle}
}

// Close stops the eviction janitor
func (t *ProgressTracker) Close() {
	t.stopOnce.Do(func() { close(t.stop) })
}

func (t *ProgressTracker) janitor() {
	interval := t.retention / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.evictExpired()
		case <-t.stop:
			return
		}
	}
}

func (t *ProgressTracker) evictExpired() {
	cutoff := time.Now().Add(-t.retention)
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, entry := range t.entries {
		if !entry.finishedAt.IsZero() && entry.finishedAt.Before(cutoff) {
			delete(t.entries, id)
		}
	}
}
