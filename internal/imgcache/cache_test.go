package imgcache

import (
	"slices"
	"testing"
)

type source struct{ name string }

func TestGetCreatesOnce(t *testing.T) {
	c := New[*source, int](10, nil)
	key := &source{"a"}
	calls := 0
	create := func() int { calls++; return 7 }

	for range 3 {
		if got := c.Get(key, create); got != 7 {
			t.Fatalf("Get = %d, want 7", got)
		}
	}
	if calls != 1 {
		t.Errorf("create calls = %d, want 1", calls)
	}
}

func TestFrameReleasesIdleEntries(t *testing.T) {
	var released []string
	c := New[*source, string](2, func(v string) { released = append(released, v) })
	kept, idle := &source{"kept"}, &source{"idle"}
	c.Get(kept, func() string { return "kept" })
	c.Get(idle, func() string { return "idle" })

	for range 5 {
		c.Frame()
		c.Get(kept, func() string { t.Fatal("kept entry was recreated"); return "" })
	}
	if !slices.Equal(released, []string{"idle"}) {
		t.Errorf("released = %v, want [idle]", released)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestReleasedEntryIsRecreated(t *testing.T) {
	c := New[*source, int](1, nil)
	key := &source{"a"}
	calls := 0
	c.Get(key, func() int { calls++; return calls })
	c.Frame()
	c.Frame()
	if got := c.Get(key, func() int { calls++; return calls }); got != 2 {
		t.Errorf("Get after release = %d, want a fresh value 2", got)
	}
}

func TestDrop(t *testing.T) {
	released := 0
	c := New[string, int](100, func(int) { released++ })
	c.Get("a", func() int { return 1 })
	c.Drop("a")
	c.Drop("missing")
	if released != 1 || c.Len() != 0 {
		t.Errorf("released = %d, Len = %d, want 1 and 0", released, c.Len())
	}
}
