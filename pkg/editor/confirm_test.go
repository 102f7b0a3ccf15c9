package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDialogCancelFiresOnCancelOnce(t *testing.T) {
	var confirmed, cancelled int
	d := NewConfirmDialog()
	d.Open(ConfirmOptions{
		Title:     "Delete university",
		Message:   "This cannot be undone.",
		OnConfirm: func() { confirmed++ },
		OnCancel:  func() { cancelled++ },
	})
	require.True(t, d.IsOpen())

	d.Cancel()
	assert.False(t, d.IsOpen())
	assert.Equal(t, 1, cancelled)
	assert.Zero(t, confirmed)

	// A second cancel on the closed dialog fires nothing.
	d.Cancel()
	assert.Equal(t, 1, cancelled)
}

func TestConfirmDialogConfirm(t *testing.T) {
	var confirmed, cancelled int
	d := NewConfirmDialog()
	d.Open(ConfirmOptions{
		OnConfirm: func() { confirmed++ },
		OnCancel:  func() { cancelled++ },
	})

	d.Confirm()
	assert.Equal(t, 1, confirmed)
	assert.Zero(t, cancelled)
	assert.False(t, d.IsOpen())
}

func TestConfirmDialogOutsideDismissCancels(t *testing.T) {
	var cancelled int
	d := NewConfirmDialog()
	d.Open(ConfirmOptions{OnCancel: func() { cancelled++ }})

	d.Dismiss()
	assert.Equal(t, 1, cancelled)
	assert.False(t, d.IsOpen())
}

func TestConfirmDialogNothingFiresOnOpen(t *testing.T) {
	var confirmed, cancelled int
	d := NewConfirmDialog()
	assert.False(t, d.IsOpen())

	d.Open(ConfirmOptions{
		OnConfirm: func() { confirmed++ },
		OnCancel:  func() { cancelled++ },
	})
	assert.Zero(t, confirmed)
	assert.Zero(t, cancelled)
}

func TestConfirmDialogDefaults(t *testing.T) {
	d := NewConfirmDialog()
	d.Open(ConfirmOptions{Title: "Remove"})
	assert.True(t, d.Destructive())
	assert.Equal(t, "Confirm", d.ConfirmLabel())

	safe := false
	d.Open(ConfirmOptions{Destructive: &safe, ConfirmLabel: "Save"})
	assert.False(t, d.Destructive())
	assert.Equal(t, "Save", d.ConfirmLabel())
}
