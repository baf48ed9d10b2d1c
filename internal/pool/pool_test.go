package pool

import "testing"

// TestPoolReusesObjects tests the get/put round trip.
func TestPoolReusesObjects(t *testing.T) {
	type scratch struct{ hits int }
	p := New(func() *scratch { return &scratch{} })

	s := p.Get()
	s.hits = 7
	p.Put(s)

	// A fresh Get may or may not return the same object; either way it
	// must be usable.
	s2 := p.Get()
	if s2 == nil {
		t.Fatal("expected object from pool")
	}
}

// TestPoolResetRunsBeforeReuse tests that the reset hook applies.
func TestPoolResetRunsBeforeReuse(t *testing.T) {
	type scratch struct{ hits int }
	p := NewWithReset(
		func() *scratch { return &scratch{} },
		func(s *scratch) { s.hits = 0 },
	)

	s := p.Get()
	s.hits = 42
	p.Put(s)

	if got := p.Get(); got.hits != 0 {
		t.Errorf("expected reset object, got hits=%d", got.hits)
	}
}

// TestPoolPutNil tests that a nil put is ignored.
func TestPoolPutNil(t *testing.T) {
	p := New(func() *int { v := 0; return &v })
	p.Put(nil)
	if p.Get() == nil {
		t.Fatal("expected object after nil put")
	}
}

// TestStringSlicePoolKeepsCapacity tests the length trim on reuse.
func TestStringSlicePoolKeepsCapacity(t *testing.T) {
	p := NewStringSlicePool(4)

	s := p.Get()
	*s = append(*s, "a", "b", "c")
	p.Put(s)

	got := p.Get()
	if len(*got) != 0 {
		t.Errorf("expected trimmed slice, got len=%d", len(*got))
	}
}

// TestIntSlicePoolKeepsCapacity tests the same for int slices.
func TestIntSlicePoolKeepsCapacity(t *testing.T) {
	p := NewIntSlicePool(4)

	s := p.Get()
	*s = append(*s, 1, 2, 3)
	p.Put(s)

	got := p.Get()
	if len(*got) != 0 {
		t.Errorf("expected trimmed slice, got len=%d", len(*got))
	}
}
