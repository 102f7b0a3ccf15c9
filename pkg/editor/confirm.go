package editor

// ConfirmOptions configures one confirmation prompt.
type ConfirmOptions struct {
	Title        string
	Message      string
	ConfirmLabel string
	// Destructive styles the confirm control for irreversible actions.
	// Prompts are destructive unless the caller opts out.
	Destructive *bool
	OnConfirm   func()
	OnCancel    func()
}

// ConfirmDialog is a reusable confirmation prompt. The confirm callback
// fires only on an explicit confirmation; dismissing the dialog any
// other way cancels. Nothing fires when the dialog is created or opened.
type ConfirmDialog struct {
	open         bool
	title        string
	message      string
	confirmLabel string
	destructive  bool
	onConfirm    func()
	onCancel     func()
}

// NewConfirmDialog returns a closed dialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Open arms the dialog with the prompt's text and callbacks.
func (d *ConfirmDialog) Open(opts ConfirmOptions) {
	d.open = true
	d.title = opts.Title
	d.message = opts.Message
	d.confirmLabel = opts.ConfirmLabel
	if d.confirmLabel == "" {
		d.confirmLabel = "Confirm"
	}
	d.destructive = opts.Destructive == nil || *opts.Destructive
	d.onConfirm = opts.OnConfirm
	d.onCancel = opts.OnCancel
}

// IsOpen reports whether the dialog is showing.
func (d *ConfirmDialog) IsOpen() bool {
	return d.open
}

// Title returns the armed prompt's title.
func (d *ConfirmDialog) Title() string { return d.title }

// Message returns the armed prompt's message.
func (d *ConfirmDialog) Message() string { return d.message }

// ConfirmLabel returns the confirm control's label.
func (d *ConfirmDialog) ConfirmLabel() string { return d.confirmLabel }

// Destructive reports whether the confirm control carries the
// destructive styling.
func (d *ConfirmDialog) Destructive() bool { return d.destructive }

// Confirm closes the dialog and fires the confirm callback.
func (d *ConfirmDialog) Confirm() {
	if !d.open {
		return
	}
	onConfirm := d.onConfirm
	d.reset()
	if onConfirm != nil {
		onConfirm()
	}
}

// Cancel closes the dialog and fires the cancel callback.
func (d *ConfirmDialog) Cancel() {
	if !d.open {
		return
	}
	onCancel := d.onCancel
	d.reset()
	if onCancel != nil {
		onCancel()
	}
}

// Dismiss handles a pointer-down outside the dialog, which cancels.
func (d *ConfirmDialog) Dismiss() {
	d.Cancel()
}

func (d *ConfirmDialog) reset() {
	d.open = false
	d.onConfirm = nil
	d.onCancel = nil
}
