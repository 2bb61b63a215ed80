package cache

import (
	"testing"
	"time"
)

func TestExtractionKey_Deterministic(t *testing.T) {
	a := ExtractionKey("some text", "tech", 10, "gpt-4o-mini")
	b := ExtractionKey("some text", "tech", 10, "gpt-4o-mini")
	if a != b {
		t.Errorf("expected identical keys, got %s and %s", a, b)
	}
}

func TestExtractionKey_VariesWithInputs(t *testing.T) {
	base := ExtractionKey("some text", "tech", 10, "gpt-4o-mini")

	variants := []string{
		ExtractionKey("other text", "tech", 10, "gpt-4o-mini"),
		ExtractionKey("some text", "saas", 10, "gpt-4o-mini"),
		ExtractionKey("some text", "tech", 5, "gpt-4o-mini"),
		ExtractionKey("some text", "tech", 10, "llama3.1"),
	}

	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d produced the same key as base", i)
		}
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(val) != "value" {
		t.Errorf("expected value, got %s", val)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("persisted"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(val) != "persisted" {
		t.Errorf("expected persisted, got %s", val)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after clear")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("stale"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Write through both layers, then wipe memory to force a disk read
	if err := c.Set("k", []byte("layered"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.memory.Clear(); err != nil {
		t.Fatalf("memory clear failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("expected disk hit")
	}
	if string(val) != "layered" {
		t.Errorf("expected layered, got %s", val)
	}

	// Now the memory layer should serve it directly
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}
