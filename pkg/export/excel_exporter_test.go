package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcelRenderAndReadSheet(t *testing.T) {
	exporter := NewExcelExporter()
	data := Dataset{
		Headers: []string{"Name", "Email"},
		Rows: []map[string]string{
			{"Name": "Asha", "Email": "asha@example.com"},
			{"Name": "Ravi", "Email": "ravi@example.com"},
		},
	}

	raw, err := exporter.Render(data, "Applications")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	rows, err := ReadSheet(raw)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email"}, rows[0])
	assert.Equal(t, "Asha", rows[1][0])
	assert.Equal(t, "ravi@example.com", rows[2][1])
}

func TestExcelRenderRequiresHeaders(t *testing.T) {
	exporter := NewExcelExporter()
	_, err := exporter.Render(Dataset{}, "Empty")
	assert.Error(t, err)
}
