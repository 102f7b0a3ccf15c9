package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

type fakeLister struct {
	universities []models.University
	err          error
	calls        []Filter
}

func (f *fakeLister) ListUniversities(ctx context.Context, filter Filter) ([]models.University, error) {
	f.calls = append(f.calls, filter)
	if f.err != nil {
		return nil, f.err
	}
	if !filter.Active() {
		return f.universities, nil
	}
	return Apply(filter, f.universities), nil
}

func TestBrowserLoadAndReactiveFilter(t *testing.T) {
	source := &fakeLister{universities: []models.University{
		sampleUniversity(),
		{ID: "u-2", Name: "AIIMS Delhi", Location: "Delhi", Categories: models.StringList{"Medicine"}},
	}}
	b := NewBrowser(source)

	require.NoError(t, b.Load(context.Background()))
	assert.Len(t, b.Visible(), 2)

	b.SetCategory("Medicine")
	visible := b.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "u-2", visible[0].ID)
	assert.True(t, b.HasActiveFilters())

	b.ClearFilters()
	assert.Len(t, b.Visible(), 2)
	assert.False(t, b.HasActiveFilters())
}

func TestBrowserSearchSendsCurrentFacets(t *testing.T) {
	source := &fakeLister{universities: []models.University{sampleUniversity()}}
	b := NewBrowser(source)

	b.SetQuery("iit")
	b.SetLocation("Lucknow")
	require.NoError(t, b.Search(context.Background()))

	require.Len(t, source.calls, 1)
	assert.Equal(t, Filter{Query: "iit", Location: "Lucknow"}, source.calls[0])
	assert.Len(t, b.Visible(), 1)
}

func TestBrowserFailedLoadLeavesEmptyState(t *testing.T) {
	source := &fakeLister{err: errors.New("boom")}
	b := NewBrowser(source)

	assert.Error(t, b.Load(context.Background()))
	assert.Empty(t, b.Visible())
}

func TestBrowserIgnoresResultsAfterClose(t *testing.T) {
	source := &fakeLister{universities: []models.University{sampleUniversity()}}
	b := NewBrowser(source)
	require.NoError(t, b.Load(context.Background()))

	b.Close()
	require.NoError(t, b.Load(context.Background()))
	assert.Len(t, source.calls, 1, "no fetch starts after close")
	assert.Len(t, b.Visible(), 1)
}
