package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderProducesDocument(t *testing.T) {
	exporter := NewPDFExporter()
	data := Dataset{
		Headers: []string{"Name", "Email", "Status"},
		Rows: []map[string]string{
			{"Name": "Asha", "Email": "asha@example.com", "Status": "pending"},
			{"Name": "Vikram", "Email": "vikram@example.com", "Status": "completed"},
		},
	}

	raw, err := exporter.Render(data, "Applications")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()
	_, err := exporter.Render(Dataset{}, "Empty")
	assert.Error(t, err)
}

func TestColumnWidthsSumToTotal(t *testing.T) {
	data := Dataset{
		Headers: []string{"Name", "Short Note"},
		Rows: []map[string]string{
			{"Name": "Asha", "Short Note": "Interested in the upcoming B.Tech intake and hostel availability"},
		},
	}

	widths := columnWidths(data, 277.0)
	require.Len(t, widths, 2)
	assert.Greater(t, widths[1], widths[0])
	assert.InDelta(t, 277.0, widths[0]+widths[1], 0.001)
}
