package directory

import (
	"context"
	"sync"

	"github.com/edudham/edudham-api/internal/models"
)

// Lister fetches listings, optionally constrained server-side.
type Lister interface {
	ListUniversities(ctx context.Context, f Filter) ([]models.University, error)
}

// Browser is the listing screen's state: one fetched snapshot plus a
// reactive in-memory filter recomputed synchronously on every facet change.
//
// Search re-queries the server with the same facet values and replaces the
// snapshot. The in-memory filter already covers the common path; both are
// kept deliberately (see DESIGN.md).
type Browser struct {
	mu     sync.Mutex
	source Lister
	all    []models.University
	filter Filter
	gen    int
	closed bool
}

// NewBrowser creates a browser over the given source.
func NewBrowser(source Lister) *Browser {
	return &Browser{source: source}
}

// Load fetches the unfiltered snapshot. A failed fetch leaves the screen in
// an empty state. Results arriving after Close, or after a newer fetch
// started, are dropped.
func (b *Browser) Load(ctx context.Context) error {
	return b.fetch(ctx, Filter{})
}

// Search re-queries the server with the current facet values, replacing the
// snapshot with the server-filtered result.
func (b *Browser) Search(ctx context.Context) error {
	b.mu.Lock()
	f := b.filter
	b.mu.Unlock()
	return b.fetch(ctx, f)
}

func (b *Browser) fetch(ctx context.Context, f Filter) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	universities, err := b.source.ListUniversities(ctx, f)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || gen != b.gen {
		return nil
	}
	if err != nil {
		b.all = nil
		return err
	}
	b.all = universities
	return nil
}

// SetQuery updates the free-text facet.
func (b *Browser) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Query = q
}

// SetLocation updates the location facet.
func (b *Browser) SetLocation(location string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Location = location
}

// SetCategory updates the category facet.
func (b *Browser) SetCategory(category string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Category = category
}

// Filter returns the current facet values.
func (b *Browser) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// Visible recomputes the filtered view of the current snapshot.
func (b *Browser) Visible() []models.University {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Apply(b.filter, b.all)
}

// HasActiveFilters reports whether any facet is constraining the view.
func (b *Browser) HasActiveFilters() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter.Active()
}

// ClearFilters resets all facets to their unconstrained values.
func (b *Browser) ClearFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = Filter{}
}

// Close tears the browser down; any in-flight fetch result is discarded.
func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
