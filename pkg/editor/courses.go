package editor

import (
	"context"
	"sort"
	"strings"
)

// CourseRow is one editable course line. Fees stay textual while the
// row is being edited; coercion to a number happens at save time.
type CourseRow struct {
	CourseName  string
	Description string
	Duration    string
	FeesText    string
	Category    string
}

// CoursePatch carries the fields of one edit. Nil fields keep the row's
// current value.
type CoursePatch struct {
	CourseName  *string
	Description *string
	Duration    *string
	FeesText    *string
	Category    *string
}

// CategoryFetcher loads the category vocabulary from the server.
type CategoryFetcher interface {
	CategoryNames(ctx context.Context) ([]string, error)
}

// CourseEditor manages the course rows of a university form. The
// category vocabulary comes from the caller when available; otherwise
// it is fetched once, on first use, and reused afterwards.
type CourseEditor struct {
	rows       []CourseRow
	vocabulary []string
	fetcher    CategoryFetcher
	fetched    bool
	onChange   func([]CourseRow)
}

// NewCourseEditor builds an editor over the initial rows. vocabulary
// may be empty, in which case fetcher supplies it lazily. onChange may
// be nil.
func NewCourseEditor(rows []CourseRow, vocabulary []string, fetcher CategoryFetcher, onChange func([]CourseRow)) *CourseEditor {
	return &CourseEditor{
		rows:       append([]CourseRow(nil), rows...),
		vocabulary: append([]string(nil), vocabulary...),
		fetcher:    fetcher,
		onChange:   onChange,
	}
}

// Rows returns a copy of the current course rows.
func (e *CourseEditor) Rows() []CourseRow {
	return append([]CourseRow(nil), e.rows...)
}

// AddRow appends a blank course row.
func (e *CourseEditor) AddRow() {
	e.apply(append(append([]CourseRow(nil), e.rows...), CourseRow{}))
}

// RemoveRow deletes the row at index. Out-of-range indexes are ignored.
func (e *CourseEditor) RemoveRow(index int) {
	if index < 0 || index >= len(e.rows) {
		return
	}
	next := make([]CourseRow, 0, len(e.rows)-1)
	next = append(next, e.rows[:index]...)
	next = append(next, e.rows[index+1:]...)
	e.apply(next)
}

// UpdateRow merges the patch into the row at index, leaving every
// unpatched field as it was.
func (e *CourseEditor) UpdateRow(index int, patch CoursePatch) {
	if index < 0 || index >= len(e.rows) {
		return
	}
	next := append([]CourseRow(nil), e.rows...)
	row := next[index]
	if patch.CourseName != nil {
		row.CourseName = *patch.CourseName
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Duration != nil {
		row.Duration = *patch.Duration
	}
	if patch.FeesText != nil {
		row.FeesText = *patch.FeesText
	}
	if patch.Category != nil {
		row.Category = *patch.Category
	}
	next[index] = row
	e.apply(next)
}

// Vocabulary returns the category names offered by the row dropdowns.
// When the editor was built without one it falls back to a single fetch
// from the server; later calls reuse the fetched list even if the fetch
// returned nothing.
func (e *CourseEditor) Vocabulary(ctx context.Context) ([]string, error) {
	if len(e.vocabulary) > 0 || e.fetched || e.fetcher == nil {
		return append([]string(nil), e.vocabulary...), nil
	}
	names, err := e.fetcher.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}
	e.fetched = true
	e.vocabulary = append([]string(nil), names...)
	return append([]string(nil), e.vocabulary...), nil
}

// CategoriesInUse returns the distinct categories attached to the
// current rows, sorted for stable display.
func (e *CourseEditor) CategoriesInUse() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range e.rows {
		cat := strings.TrimSpace(row.Category)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

func (e *CourseEditor) apply(next []CourseRow) {
	e.rows = next
	if e.onChange != nil {
		e.onChange(append([]CourseRow(nil), next...))
	}
}
