package player

import "testing"

func TestRegistry_AcquireCachesPerSound(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRegistry(backend)

	a := r.Acquire("drum/kick")
	b := r.Acquire("drum/kick")
	c := r.Acquire("drum/snare")

	if a != b {
		t.Error("Expected the same handle for repeated acquires of one sound")
	}
	if a == c {
		t.Error("Expected distinct handles for distinct sounds")
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 cached handles, got %d", r.Len())
	}
	if len(backend.created) != 2 {
		t.Errorf("Expected 2 backend handles, got %d", len(backend.created))
	}
}

func TestRegistry_LookupDoesNotCreate(t *testing.T) {
	r := NewRegistry(&fakeBackend{})

	if _, ok := r.Lookup("drum/kick"); ok {
		t.Error("Lookup of an unknown sound must not report a handle")
	}
	if r.Len() != 0 {
		t.Errorf("Lookup must not create handles, got %d", r.Len())
	}

	h := r.Acquire("drum/kick")
	got, ok := r.Lookup("drum/kick")
	if !ok || got != h {
		t.Error("Lookup should return the cached handle")
	}
}
