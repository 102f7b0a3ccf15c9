package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/client"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

type bulkGatewayStub struct {
	uploads  int
	result   *models.BulkImportResult
	template *client.Download
}

func (g *bulkGatewayStub) BulkTemplate(ctx context.Context) (*client.Download, error) {
	return g.template, nil
}

func (g *bulkGatewayStub) BulkUpload(ctx context.Context, filename string, data []byte) (*models.BulkImportResult, error) {
	g.uploads++
	return g.result, nil
}

func TestBulkPanelUpload(t *testing.T) {
	gw := &bulkGatewayStub{result: &models.BulkImportResult{Message: "Created 3 universities", CreatedCount: 3}}
	panel := NewBulkPanel(gw)

	result, err := panel.Upload(context.Background(), "universities.xlsx", []byte("workbook"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.CreatedCount)
	assert.Equal(t, result, panel.LastResult())
	assert.False(t, panel.Busy())
}

func TestBulkPanelRejectsNonExcelBeforeNetwork(t *testing.T) {
	gw := &bulkGatewayStub{}
	panel := NewBulkPanel(gw)

	_, err := panel.Upload(context.Background(), "universities.csv", []byte("a,b"))
	require.Error(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, appErrors.FromError(err).Status)
	assert.Zero(t, gw.uploads)

	// Legacy .xls workbooks are accepted.
	gw.result = &models.BulkImportResult{}
	_, err = panel.Upload(context.Background(), "UNIVERSITIES.XLS", []byte("workbook"))
	require.NoError(t, err)
	assert.Equal(t, 1, gw.uploads)
}

func TestBulkPanelRejectsOversizedWorkbook(t *testing.T) {
	gw := &bulkGatewayStub{}
	panel := NewBulkPanel(gw)

	_, err := panel.Upload(context.Background(), "big.xlsx", make([]byte, MaxWorkbookBytes+1))
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, appErrors.FromError(err).Status)
	assert.Zero(t, gw.uploads)
}

func TestBulkPanelDownloadTemplate(t *testing.T) {
	gw := &bulkGatewayStub{template: &client.Download{Filename: "university_template.xlsx"}}
	panel := NewBulkPanel(gw)

	download, err := panel.DownloadTemplate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "university_template.xlsx", download.Filename)
}
