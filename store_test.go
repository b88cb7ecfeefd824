package inkwell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "data", "blogs.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	return s
}

func testRecord(slug string) PostRecord {
	return PostRecord{
		Title:       "Test Post",
		Description: "A test post",
		Slug:        slug,
		Date:        "2024-01-15",
		Author:      "Tester",
		Image:       "/uploads/1_cover.jpg",
		Content:     "# Test\n\nBody text.",
		Uploaded:    true,
	}
}

func TestJSONStoreEmptyWhenFileMissing(t *testing.T) {
	s := setupJSONStore(t)

	records, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("LoadAll on missing file = %d records, want 0", len(records))
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	s := setupJSONStore(t)

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

func TestJSONStoreUpsertReplacesSameSlug(t *testing.T) {
	s := setupJSONStore(t)

	r1 := testRecord("same-slug")
	r2 := testRecord("same-slug")
	r2.Title = "Replacement"
	r2.Content = "new body"

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
		t.Fatalf("LoadAll count = %d, want 1 (no duplication)", len(records))
	}
	if records[0].Title != "Replacement" {
		t.Errorf("Title = %q, want %q (last write wins)", records[0].Title, "Replacement")
	}
}

func TestJSONStoreKeepsOtherSlugs(t *testing.T) {
	s := setupJSONStore(t)

	if err := s.Upsert(testRecord("first")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert(testRecord("second")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	records, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("LoadAll count = %d, want 2", len(records))
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blogs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}

	_, err = s.LoadAll()
	var corrupt *CorruptStoreError
	if !errors.As(err, &corrupt) {
		t.Fatalf("LoadAll on corrupt file: got %v, want CorruptStoreError", err)
	}
	if corrupt.Path != path {
		t.Errorf("CorruptStoreError.Path = %q, want %q", corrupt.Path, path)
	}

	// Upsert must refuse to clobber a corrupt store.
	if err := s.Upsert(testRecord("x")); err == nil {
		t.Error("Upsert on corrupt store should fail")
	}
}

func TestJSONStoreCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "blogs.json")

	if _, err := NewJSONStore(path); err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("data dir was not created: %v", err)
	}
}
