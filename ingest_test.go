package inkwell

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell/markdown"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	store, err := NewJSONStore(filepath.Join(dir, "data", "blogs.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	static := NewStaticSourceFS(fstest.MapFS{}, "Aditi")
	lib := NewLibrary(store, static)

	cfg := Config{SessionSecret: "test-secret"}
	cfg.setDefaults()

	return &App{
		Config:        cfg,
		Echo:          echo.New(),
		Store:         store,
		Static:        static,
		Library:       lib,
		Cache:         NewListCache(lib, time.Hour),
		Renderer:      markdown.New(markdown.DefaultOptions()),
		submitLimiter: NewSubmitLimiter(100, time.Minute),
		staticDir:     filepath.Join(dir, "public"),
	}
}

// multipartBody builds a submission; pass an empty value to omit a field.
func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "Cover Photo.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		if err := png.Encode(fw, img); err != nil {
			t.Fatalf("encode png: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func postUpload(t *testing.T, a *App, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, uploadResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	if err := a.handleUpload(c); err != nil {
		t.Fatalf("handleUpload returned error: %v", err)
	}
	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func validFields() map[string]string {
	return map[string]string{
		"title":       "My New Post!",
		"description": "A fine description",
		"content":     "# Hello\n\nSome *markdown*.",
	}
}

func TestUploadSuccess(t *testing.T) {
	a := setupTestApp(t)
	body, ct := multipartBody(t, validFields(), true)

	rec, resp := postUpload(t, a, body, ct)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Slug != "my-new-post" {
		t.Errorf("Slug = %q, want %q", resp.Slug, "my-new-post")
	}
	if !strings.HasPrefix(resp.ImageURL, "/uploads/") || !strings.HasSuffix(resp.ImageURL, "_cover-photo.png") {
		t.Errorf("ImageURL = %q, want timestamp-prefixed /uploads path", resp.ImageURL)
	}

	// The asset exists on disk.
	assetPath := filepath.Join(a.staticDir, "uploads", filepath.Base(resp.ImageURL))
	if _, err := os.Stat(assetPath); err != nil {
		t.Errorf("asset not written: %v", err)
	}

	// The record landed in the store with today's date and default author.
	records, err := a.Store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("store count = %d, want 1", len(records))
	}
	r := records[0]
	if r.Title != "My New Post!" || r.Slug != "my-new-post" {
		t.Errorf("record = %+v", r)
	}
	if r.Author != "Aditi" {
		t.Errorf("Author = %q, want default", r.Author)
	}
	if r.Date != time.Now().Format("2006-01-02") {
		t.Errorf("Date = %q, want today", r.Date)
	}
	if !r.Uploaded {
		t.Error("record should be flagged as uploaded")
	}
}

func TestUploadMissingFieldLeavesStoreUntouched(t *testing.T) {
	for _, missing := range []string{"title", "description", "content"} {
		t.Run("no_"+missing, func(t *testing.T) {
			a := setupTestApp(t)
			fields := validFields()
			fields[missing] = ""
			body, ct := multipartBody(t, fields, true)

			rec, resp := postUpload(t, a, body, ct)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp.Success {
				t.Error("Success should be false")
			}

			records, err := a.Store.LoadAll()
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("store count = %d, want 0 after validation failure", len(records))
			}
		})
	}
}

func TestUploadMissingImage(t *testing.T) {
	a := setupTestApp(t)
	body, ct := multipartBody(t, validFields(), false)

	rec, _ := postUpload(t, a, body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadSameSlugReplaces(t *testing.T) {
	a := setupTestApp(t)

	body, ct := multipartBody(t, validFields(), true)
	postUpload(t, a, body, ct)

	fields := validFields()
	fields["content"] = "replacement body"
	body, ct = multipartBody(t, fields, true)
	rec, _ := postUpload(t, a, body, ct)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	records, err := a.Store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("store count = %d, want 1 (same slug replaces)", len(records))
	}
	if records[0].Content != "replacement body" {
		t.Errorf("Content = %q, want replacement", records[0].Content)
	}
}

func TestUploadSluglessTitleRejected(t *testing.T) {
	a := setupTestApp(t)
	fields := validFields()
	fields["title"] = "!!!"
	body, ct := multipartBody(t, fields, true)

	rec, _ := postUpload(t, a, body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for title with no alphanumerics", rec.Code)
	}
}

func TestUploadRateLimited(t *testing.T) {
	a := setupTestApp(t)
	a.submitLimiter = NewSubmitLimiter(1, time.Minute)

	body, ct := multipartBody(t, validFields(), true)
	postUpload(t, a, body, ct)

	body, ct = multipartBody(t, validFields(), true)
	rec, _ := postUpload(t, a, body, ct)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}
