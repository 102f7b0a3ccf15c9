package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSelectTogglePreservesAdditionOrder(t *testing.T) {
	var last []string
	m := NewMultiSelect([]string{"A", "B", "C"}, nil, func(v []string) { last = v })

	m.Toggle("C")
	m.Toggle("A")
	assert.Equal(t, []string{"C", "A"}, m.Selected())
	assert.Equal(t, []string{"C", "A"}, last)

	m.Toggle("C")
	assert.Equal(t, []string{"A"}, m.Selected())
}

func TestMultiSelectSelectAllThenChipRemove(t *testing.T) {
	m := NewMultiSelect([]string{"A", "B"}, nil, nil)
	m.ToggleDropdown()
	require.True(t, m.IsOpen())

	m.SelectAll()
	require.Equal(t, []string{"A", "B"}, m.Selected())

	m.RemoveChip("A")
	assert.Equal(t, []string{"B"}, m.Selected())
	assert.True(t, m.IsOpen(), "chip removal must not toggle the dropdown")
}

func TestMultiSelectSelectAllCopiesOptions(t *testing.T) {
	m := NewMultiSelect([]string{"A", "B"}, nil, nil)
	m.SelectAll()

	selected := m.Selected()
	selected[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, m.Selected())
	assert.Equal(t, []string{"A", "B"}, m.Options())
}

func TestMultiSelectClearAll(t *testing.T) {
	var last []string
	m := NewMultiSelect([]string{"A", "B"}, []string{"A"}, func(v []string) { last = v })
	m.ClearAll()
	assert.Empty(t, m.Selected())
	assert.NotNil(t, last)
	assert.Empty(t, last)
}

func TestMultiSelectOutsidePointerDownCloses(t *testing.T) {
	m := NewMultiSelect([]string{"A"}, nil, nil)
	m.ToggleDropdown()
	require.True(t, m.IsOpen())

	m.OutsidePointerDown()
	assert.False(t, m.IsOpen())

	// Closing an already-closed dropdown stays closed.
	m.OutsidePointerDown()
	assert.False(t, m.IsOpen())
}
