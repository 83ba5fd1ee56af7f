package report

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/meridianwx/climate-report/internal/domain"
)

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	w := NewWorkbookWriter(dir, slog.Default())

	require.NoError(t, w.WriteWorkbook(sampleAnalysis()))

	f, err := excelize.OpenFile(filepath.Join(dir, WorkbookFile))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{seasonSheet, stationSheet, extremesSheet}, f.GetSheetList())

	got, err := f.GetCellValue(seasonSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Summer", got)
	got, err = f.GetCellValue(seasonSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "31", got)

	rows, err := f.GetRows(stationSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Station", "Observations", "Min °C", "Max °C", "Range °C", "StdDev °C"}, rows[0])
	assert.Equal(t, "StationA", rows[1][0])
	assert.Equal(t, "StationB", rows[2][0])

	got, err = f.GetCellValue(extremesSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Widest Range", got)
	got, err = f.GetCellValue(extremesSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "StationB", got)
	got, err = f.GetCellValue(extremesSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "24", got)
	got, err = f.GetCellValue(extremesSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Most Stable", got)
	got, err = f.GetCellValue(extremesSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "StationA", got)
}

func TestWriteWorkbook_SaveFailure(t *testing.T) {
	w := NewWorkbookWriter(filepath.Join(t.TempDir(), "no-such-dir"), slog.Default())

	err := w.WriteWorkbook(sampleAnalysis())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReportWriteFailed)
}
