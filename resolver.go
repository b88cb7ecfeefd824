package inkwell

import (
	"log"
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// Library resolves slugs and aggregates listings across the record store and
// the static content source. The store takes precedence on lookup, so a
// freshly uploaded post can shadow a static file with the same slug without
// deleting it.
type Library struct {
	store  RecordStore
	static *StaticSource
}

// NewLibrary composes a Library from the two content sources.
func NewLibrary(store RecordStore, static *StaticSource) *Library {
	return &Library{store: store, static: static}
}

// Resolve returns the post for slug, checking the record store first and
// falling back to the static source. Returns ErrNotFound when neither
// source has it.
func (l *Library) Resolve(slug string) (PostRecord, error) {
	records, err := l.store.LoadAll()
	if err != nil {
		return PostRecord{}, err
	}
	for _, r := range records {
		if r.Slug == slug {
			return r, nil
		}
	}
	return l.static.Get(slug)
}

// ListAll pools both sources, uploaded records first and then static
// posts, with no dedup across sources, sorted by date descending. Static files that
// fail to parse are logged and skipped rather than failing the listing.
func (l *Library) ListAll() ([]PostRecord, error) {
	records, err := l.store.LoadAll()
	if err != nil {
		return nil, err
	}
	staticPosts, errs := l.static.List()
	for _, err := range errs {
		log.Printf("inkwell: skipping static post: %v", err)
	}
	all := make([]PostRecord, 0, len(records)+len(staticPosts))
	all = append(all, records...)
	all = append(all, staticPosts...)
	sortByDateDesc(all)
	return all, nil
}

// TopN returns the first n posts of the sorted full listing. A non-positive
// n yields an empty listing.
func (l *Library) TopN(n int) ([]PostRecord, error) {
	all, err := l.ListAll()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// sortByDateDesc orders posts newest first. Dates are coerced with
// dateparse so the two sources don't need to agree on a format; a record
// whose date cannot be parsed sorts after every dated one. The sort is
// stable so equal dates keep source order and output stays deterministic.
func sortByDateDesc(posts []PostRecord) {
	type dated struct {
		t time.Time
		p PostRecord
	}
	decorated := make([]dated, len(posts))
	for i, p := range posts {
		t, err := dateparse.ParseAny(p.Date)
		if err != nil {
			t = time.Time{}
		}
		decorated[i] = dated{t: t, p: p}
	}
	sort.SliceStable(decorated, func(i, j int) bool {
		return decorated[i].t.After(decorated[j].t)
	})
	for i, d := range decorated {
		posts[i] = d.p
	}
}
