package workspace

import "sync"

// Registry owns every virtual space's tiling state for the process.
// Acquisition is idempotent and reference-counted: repeated Acquire
// calls for the same space id return the same *Space and bump the
// count; the matching number of Release calls must follow before the
// registry would consider freeing it. Per the design note on scoped
// acquisition, Acquire returns a release closure so a command handler
// can `defer release()` and never forget to call it.
type Registry struct {
	mu          sync.Mutex
	spaces      map[uint32]*Space
	deserialize map[uint32]bool // spaces whose stored layout hasn't been loaded yet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		spaces:      make(map[uint32]*Space),
		deserialize: make(map[uint32]bool),
	}
}

// MarkPersisted records that spaceID has a stored layout on disk that
// should be loaded the first time it's acquired. Acquire does not
// consult the flag; ShouldDeserialize reports and clears it.
func (r *Registry) MarkPersisted(spaceID uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deserialize[spaceID] = true
}

// Acquire returns the Space for spaceID, creating it on first use, and
// a release function the caller must invoke exactly once (typically
// via defer) when done. AcquireCount is bumped on every call and
// decremented by the returned release func; the registry never frees a
// space that still has outstanding acquisitions.
func (r *Registry) Acquire(spaceID uint32) (*Space, func()) {
	r.mu.Lock()
	s, ok := r.spaces[spaceID]
	if !ok {
		s = newSpace(spaceID)
		r.spaces[spaceID] = s
	}
	s.AcquireCount++
	r.mu.Unlock()

	released := false
	release := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if released {
			return // idempotent: a second call is a no-op, not a double-decrement
		}
		released = true
		s.AcquireCount--
	}
	return s, release
}

// ShouldDeserialize reports whether spaceID's stored layout should be
// reloaded from disk on this acquisition, and clears the flag so later
// acquisitions don't reload it again.
func (r *Registry) ShouldDeserialize(spaceID uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deserialize[spaceID] {
		delete(r.deserialize, spaceID)
		return true
	}
	return false
}

// Spaces returns every currently known space id, for reconciliation and
// query use.
func (r *Registry) Spaces() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uint32, 0, len(r.spaces))
	for id := range r.spaces {
		ids = append(ids, id)
	}
	return ids
}
