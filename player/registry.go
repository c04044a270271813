package player

// Registry caches one reusable handle per sound identifier. Handles are
// created lazily on first use and never evicted; the registry lives for the
// whole page session. Discrete (toggle) plays always go through the cache so
// repeated plays of the same sound reuse one handle; strums bypass it.
type Registry struct {
	backend Backend
	handles map[string]Handle
}

// NewRegistry creates an empty registry backed by the given handle factory.
func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		handles: make(map[string]Handle),
	}
}

// Acquire returns the cached handle for a sound identifier, creating it on
// first reference. Idempotent: every call with the same identifier returns
// the same handle.
func (r *Registry) Acquire(soundID string) Handle {
	if h, ok := r.handles[soundID]; ok {
		return h
	}
	h := r.backend.NewHandle(soundID)
	r.handles[soundID] = h
	return h
}

// Lookup returns the cached handle for an identifier without creating one.
func (r *Registry) Lookup(soundID string) (Handle, bool) {
	h, ok := r.handles[soundID]
	return h, ok
}

// Len returns the number of cached handles.
func (r *Registry) Len() int {
	return len(r.handles)
}
