// Package console holds the admin and manager screens' state: the lead
// table, the university details form and the bulk import panel. Each
// screen talks to the API through a narrow slice of the client gateway.
package console

import (
	"context"
	"sync"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/editor"
)

// LeadStatuses are the pipeline stages offered by the status select.
var LeadStatuses = []string{
	models.ApplicationPending,
	models.ApplicationCompleted,
	models.ApplicationCancelled,
}

// LeadGateway is the slice of the API client the lead table needs.
type LeadGateway interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*models.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

// LeadTable is the lead console's state. The server scopes the listing
// to the caller's role, so the same table backs both the admin and the
// manager views. Deletion always goes through the confirmation dialog.
type LeadTable struct {
	mu      sync.Mutex
	gateway LeadGateway
	leads   []models.Application
	dialog  *editor.ConfirmDialog
	gen     int
	closed  bool
}

// NewLeadTable builds a table over the given gateway.
func NewLeadTable(gateway LeadGateway) *LeadTable {
	return &LeadTable{
		gateway: gateway,
		dialog:  editor.NewConfirmDialog(),
	}
}

// Load fetches the visible leads. Results arriving after Close, or
// after a newer load started, are dropped.
func (t *LeadTable) Load(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	leads, err := t.gateway.ListApplications(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || gen != t.gen {
		return nil
	}
	if err != nil {
		return err
	}
	t.leads = leads
	return nil
}

// Leads returns a copy of the visible leads.
func (t *LeadTable) Leads() []models.Application {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Application(nil), t.leads...)
}

// SetStatus moves one lead through the pipeline, updating the row in
// place on success.
func (t *LeadTable) SetStatus(ctx context.Context, id, status string) error {
	updated, err := t.gateway.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.leads {
		if t.leads[i].ID == id {
			t.leads[i] = *updated
			break
		}
	}
	return nil
}

// Dialog exposes the confirmation dialog for rendering.
func (t *LeadTable) Dialog() *editor.ConfirmDialog {
	return t.dialog
}

// RequestDelete arms the confirmation dialog for one lead. Nothing is
// deleted until the prompt is explicitly confirmed; cancelling or
// dismissing it leaves the lead alone.
func (t *LeadTable) RequestDelete(ctx context.Context, id string, onErr func(error)) {
	t.dialog.Open(editor.ConfirmOptions{
		Title:        "Delete application",
		Message:      "This permanently removes the application.",
		ConfirmLabel: "Delete",
		OnConfirm: func() {
			if err := t.gateway.DeleteApplication(ctx, id); err != nil {
				if onErr != nil {
					onErr(err)
				}
				return
			}
			t.removeLocal(id)
		},
	})
}

func (t *LeadTable) removeLocal(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := make([]models.Application, 0, len(t.leads))
	for _, lead := range t.leads {
		if lead.ID != id {
			next = append(next, lead)
		}
	}
	t.leads = next
}

// Close tears the table down; any in-flight load result is discarded.
func (t *LeadTable) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}
