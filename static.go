package inkwell

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// postMatter is the metadata block at the top of a static markdown file.
// Date stays a string: static posts choose their own date format and the
// listing sort coerces it tolerantly.
type postMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
	Date        string `yaml:"date"`
	Author      string `yaml:"author"`
	Image       string `yaml:"image"`
}

// StaticSource reads posts from a directory of markdown files with front
// matter. Files are never written by the application; the slug is the
// filename without its .md extension (a slug field in the front matter is
// ignored for lookup so that URLs always mirror the directory contents).
type StaticSource struct {
	fsys          fs.FS
	defaultAuthor string
}

// NewStaticSource creates a StaticSource over dir. A missing directory is
// treated as an empty source.
func NewStaticSource(dir, defaultAuthor string) *StaticSource {
	return &StaticSource{fsys: os.DirFS(dir), defaultAuthor: defaultAuthor}
}

// NewStaticSourceFS is like NewStaticSource but reads from an fs.FS,
// which keeps tests and embedded content trivial.
func NewStaticSourceFS(fsys fs.FS, defaultAuthor string) *StaticSource {
	return &StaticSource{fsys: fsys, defaultAuthor: defaultAuthor}
}

// Get returns the post whose filename-derived slug matches slug, or
// ErrNotFound. Slugs that do not name a file in the directory, including
// path-shaped ones like "../x" or "a/b", are not found rather than errors:
// no file can ever match them.
func (s *StaticSource) Get(slug string) (PostRecord, error) {
	name := slug + ".md"
	if !fs.ValidPath(name) || strings.ContainsRune(name, '/') {
		return PostRecord{}, ErrNotFound
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return PostRecord{}, ErrNotFound
		}
		return PostRecord{}, fmt.Errorf("read static post %s: %w", slug, err)
	}
	return s.build(slug, data)
}

// List returns every post in the directory. Files that fail front matter
// parsing are skipped with their error reported alongside the good records,
// so one bad document degrades the listing instead of breaking it.
func (s *StaticSource) List() ([]PostRecord, []error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("read content dir: %w", err)}
	}

	var records []PostRecord
	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".md" {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("read static post %s: %w", name, err))
			continue
		}
		record, err := s.build(slug, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}
	return records, errs
}

func (s *StaticSource) build(slug string, data []byte) (PostRecord, error) {
	var meta postMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return PostRecord{}, fmt.Errorf("parse front matter of %s.md: %w", slug, err)
	}
	author := meta.Author
	if author == "" {
		author = s.defaultAuthor
	}
	return PostRecord{
		Title:       meta.Title,
		Description: meta.Description,
		Slug:        slug,
		Date:        meta.Date,
		Author:      author,
		Image:       meta.Image,
		Content:     string(body),
		Uploaded:    false,
	}, nil
}
