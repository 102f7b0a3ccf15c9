package console

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/client"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

// MaxWorkbookBytes is the client-side ceiling on an import workbook.
const MaxWorkbookBytes = 10 << 20

// BulkGateway is the slice of the API client the import panel needs.
type BulkGateway interface {
	BulkTemplate(ctx context.Context) (*client.Download, error)
	BulkUpload(ctx context.Context, filename string, data []byte) (*models.BulkImportResult, error)
}

// BulkPanel drives the bulk university import. Files that are not Excel
// workbooks, or are too large, are rejected before any network traffic.
// The busy flag covers only the panel's own upload control.
type BulkPanel struct {
	gateway BulkGateway
	busy    bool
	result  *models.BulkImportResult
}

// NewBulkPanel builds a panel over the given gateway.
func NewBulkPanel(gateway BulkGateway) *BulkPanel {
	return &BulkPanel{gateway: gateway}
}

// Busy reports whether an upload from this panel is in flight.
func (p *BulkPanel) Busy() bool {
	return p.busy
}

// LastResult returns the outcome of the most recent upload, or nil.
func (p *BulkPanel) LastResult() *models.BulkImportResult {
	return p.result
}

// DownloadTemplate fetches the import workbook with the expected columns.
func (p *BulkPanel) DownloadTemplate(ctx context.Context) (*client.Download, error) {
	return p.gateway.BulkTemplate(ctx)
}

// Upload validates and pushes one workbook, recording the row-level
// outcome on success.
func (p *BulkPanel) Upload(ctx context.Context, filename string, data []byte) (*models.BulkImportResult, error) {
	if !workbookFilename(filename) {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedMedia, "file must be an Excel file (.xlsx or .xls)")
	}
	if int64(len(data)) > MaxWorkbookBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "workbook must be smaller than 10MB")
	}

	p.busy = true
	defer func() { p.busy = false }()

	result, err := p.gateway.BulkUpload(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	p.result = result
	return result, nil
}

func workbookFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}
