package inkwell

import (
	"testing"
	"testing/fstest"
	"time"
)

func TestListCacheServesStaleUntilInvalidated(t *testing.T) {
	lib, store := setupLibrary(t, fstest.MapFS{})
	cache := NewListCache(lib, time.Hour)

	if err := store.Upsert(testRecord("first")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	posts, err := cache.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("ListAll count = %d, want 1", len(posts))
	}

	// A second upsert is invisible until Invalidate.
	if err := store.Upsert(testRecord("second")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	posts, _ = cache.ListAll()
	if len(posts) != 1 {
		t.Errorf("cached ListAll count = %d, want stale 1", len(posts))
	}

	cache.Invalidate()
	posts, _ = cache.ListAll()
	if len(posts) != 2 {
		t.Errorf("ListAll after Invalidate count = %d, want 2", len(posts))
	}
}

func TestListCacheTopN(t *testing.T) {
	lib, store := setupLibrary(t, fstest.MapFS{})
	cache := NewListCache(lib, time.Hour)

	for _, slug := range []string{"a", "b", "c"} {
		if err := store.Upsert(testRecord(slug)); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	posts, err := cache.TopN(2)
	if err != nil {
		t.Fatalf("TopN failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("TopN(2) count = %d, want 2", len(posts))
	}

	for _, n := range []int{0, -1} {
		posts, err = cache.TopN(n)
		if err != nil {
			t.Fatalf("TopN(%d) failed: %v", n, err)
		}
		if len(posts) != 0 {
			t.Errorf("TopN(%d) count = %d, want 0", n, len(posts))
		}
	}
}
