package editor

import "strings"

// TagEditor manages a university's free-form tag chips.
type TagEditor struct {
	tags     []string
	onChange func([]string)
}

// NewTagEditor builds an editor over the initial tags. onChange may be nil.
func NewTagEditor(tags []string, onChange func([]string)) *TagEditor {
	return &TagEditor{
		tags:     append([]string(nil), tags...),
		onChange: onChange,
	}
}

// Tags returns a copy of the current tags.
func (e *TagEditor) Tags() []string {
	return append([]string(nil), e.tags...)
}

// Add trims the input and appends it unless it is empty or already
// present. It reports whether the tag was added.
func (e *TagEditor) Add(raw string) bool {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return false
	}
	for _, existing := range e.tags {
		if existing == tag {
			return false
		}
	}
	e.apply(append(append([]string(nil), e.tags...), tag))
	return true
}

// Remove deletes the tag when present.
func (e *TagEditor) Remove(tag string) {
	e.apply(without(e.tags, tag))
}

func (e *TagEditor) apply(next []string) {
	e.tags = next
	if e.onChange != nil {
		e.onChange(append([]string(nil), next...))
	}
}
