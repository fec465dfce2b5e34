package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/inhuren/agency-scraper/internal/model"
)

func exportSample() model.Agency {
	a := model.NewAgency("delta", "https://delta.example")
	a.SectorsCore = []string{"logistiek", "zorg"}
	a.Services.Uitzenden = true
	return *a
}

func TestFlatColumnsSorted(t *testing.T) {
	cols := flatColumns(exportSample())
	require.NotEmpty(t, cols)
	assert.True(t, sort.StringsAreSorted(cols))
	assert.Contains(t, cols, "agency_name")
	assert.Contains(t, cols, "services.uitzenden")
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, exportJSON([]model.Agency{exportSample()}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var agencies []model.Agency
	require.NoError(t, json.Unmarshal(data, &agencies))
	require.Len(t, agencies, 1)
	assert.Equal(t, "delta", agencies[0].AgencyName)
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	agency := exportSample()
	require.NoError(t, exportXLSX([]model.Agency{agency}, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.GreaterOrEqual(t, len(sheet.Rows), 2)

	// Header row matches the sorted flat columns; list cells are joined.
	cols := flatColumns(agency)
	require.Len(t, sheet.Rows[0].Cells, len(cols))
	header := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		header[cell.String()] = i
	}
	row := sheet.Rows[1]
	assert.Equal(t, "delta", row.Cells[header["agency_name"]].String())
	assert.Equal(t, "logistiek; zorg", row.Cells[header["sectors_core"]].String())
}
