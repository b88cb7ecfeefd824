package inkwell

import (
	"path/filepath"
	"testing"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "blog.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := setupSQLiteStore(t)

	want := testRecord("test-post")
	if err := s.Upsert(want); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	records, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("LoadAll count = %d, want 1", len(records))
	}
	if records[0] != want {
		t.Errorf("LoadAll[0] = %+v, want %+v", records[0], want)
	}
}

func TestSQLiteStoreUpsertReplacesSameSlug(t *testing.T) {
	s := setupSQLiteStore(t)

	r1 := testRecord("same-slug")
	r2 := testRecord("same-slug")
	r2.Title = "Replacement"

	if err := s.Upsert(r1); err != nil {
		t.Fatalf("Upsert r1 failed: %v", err)
	}
	if err := s.Upsert(r2); err != nil {
		t.Fatalf("Upsert r2 failed: %v", err)
	}

	records, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("LoadAll count = %d, want 1", len(records))
	}
	if records[0].Title != "Replacement" {
		t.Errorf("Title = %q, want %q", records[0].Title, "Replacement")
	}
}

func TestSQLiteStoreOrdersByDateDesc(t *testing.T) {
	s := setupSQLiteStore(t)

	dates := []string{"2024-01-01", "2024-06-01", "2023-12-31"}
	for i, d := range dates {
		r := testRecord("post-" + string(rune('a'+i)))
		r.Date = d
		if err := s.Upsert(r); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	records, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	wantOrder := []string{"2024-06-01", "2024-01-01", "2023-12-31"}
	for i, want := range wantOrder {
		if records[i].Date != want {
			t.Errorf("records[%d].Date = %q, want %q", i, records[i].Date, want)
		}
	}
}
