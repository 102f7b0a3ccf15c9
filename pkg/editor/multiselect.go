// Package editor holds the state machines behind the admin console's
// editable widgets: multi-select chips, ordered image lists, course and
// tag editors, the confirmation dialog and the homepage hero editor.
// Each widget owns a whole value and reports changes through a single
// callback carrying the complete new value; callers never receive
// partial patches and never share backing slices with the widget.
package editor

// MultiSelect is a chip-style picker over a fixed option vocabulary.
// Selection order follows the order options were added, not the order
// they appear in the vocabulary.
type MultiSelect struct {
	options  []string
	selected []string
	open     bool
	onChange func([]string)
}

// NewMultiSelect builds a picker over the given options with an initial
// selection. onChange may be nil.
func NewMultiSelect(options, selected []string, onChange func([]string)) *MultiSelect {
	return &MultiSelect{
		options:  append([]string(nil), options...),
		selected: append([]string(nil), selected...),
		onChange: onChange,
	}
}

// Options returns a copy of the option vocabulary.
func (m *MultiSelect) Options() []string {
	return append([]string(nil), m.options...)
}

// Selected returns a copy of the current selection.
func (m *MultiSelect) Selected() []string {
	return append([]string(nil), m.selected...)
}

// IsSelected reports whether the option is currently selected.
func (m *MultiSelect) IsSelected(option string) bool {
	for _, s := range m.selected {
		if s == option {
			return true
		}
	}
	return false
}

// Toggle adds the option when absent and removes it when present.
// Additions append, so selection order is preserved.
func (m *MultiSelect) Toggle(option string) {
	if m.IsSelected(option) {
		m.apply(without(m.selected, option))
		return
	}
	m.apply(append(append([]string(nil), m.selected...), option))
}

// RemoveChip removes one selected option. Unlike Toggle it is bound to
// the chip's delete affordance and leaves the dropdown's open state
// untouched.
func (m *MultiSelect) RemoveChip(option string) {
	if !m.IsSelected(option) {
		return
	}
	m.apply(without(m.selected, option))
}

// SelectAll replaces the selection with a copy of every option.
func (m *MultiSelect) SelectAll() {
	m.apply(append([]string(nil), m.options...))
}

// ClearAll empties the selection.
func (m *MultiSelect) ClearAll() {
	m.apply([]string{})
}

// ToggleDropdown flips the dropdown's open state.
func (m *MultiSelect) ToggleDropdown() {
	m.open = !m.open
}

// IsOpen reports whether the dropdown is showing.
func (m *MultiSelect) IsOpen() bool {
	return m.open
}

// OutsidePointerDown closes the dropdown. Pointer-downs inside the
// widget never reach this handler.
func (m *MultiSelect) OutsidePointerDown() {
	m.open = false
}

func (m *MultiSelect) apply(next []string) {
	m.selected = next
	if m.onChange != nil {
		m.onChange(append([]string(nil), next...))
	}
}

func without(values []string, drop string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
