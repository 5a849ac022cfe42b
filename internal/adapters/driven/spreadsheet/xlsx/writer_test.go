package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// createTemplate saves a workbook whose active sheet is "Daily Report".
func createTemplate(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet("Daily Report")
	require.NoError(t, err)
	f.SetActiveSheet(idx)
	require.NoError(t, f.SetCellStr("Daily Report", "A1", "DAILY REPORT"))

	path := filepath.Join(dir, "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func readCell(t *testing.T, path, sheet, cell string) string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return value
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	template := createTemplate(t, dir)
	output := filepath.Join(dir, "out", "VoiceReport.xlsx")
	report := &domain.Report{
		SessionID: "s1",
		Cells: map[domain.Coordinate]string{
			"C4":  "12-345",
			"J10": "Yes",
			"B26": "8",
			"B15": "Carpenter",
			"F5":  "Austin, Texas, United States",
			"C8":  "Clear sky, 75.2°F",
			"K4":  "2024-06-03",
		},
	}

	path, err := NewWriter(template, output).Write(context.Background(), report)

	require.NoError(t, err)
	assert.Equal(t, output, path)
	for coord, want := range report.Cells {
		assert.Equal(t, want, readCell(t, output, "Daily Report", coord.String()), coord)
	}
	assert.Equal(t, "DAILY REPORT", readCell(t, output, "Daily Report", "A1"))

	// The template is left untouched.
	assert.Equal(t, "", readCell(t, template, "Daily Report", "C4"))
}

func TestWriter_Write_TemplateNotFound(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "out.xlsx"))

	_, err := writer.Write(context.Background(), &domain.Report{})

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestWriter_Write_InvalidCoordinate(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(createTemplate(t, dir), filepath.Join(dir, "out.xlsx"))
	report := &domain.Report{Cells: map[domain.Coordinate]string{"not-a-cell": "x"}}

	_, err := writer.Write(context.Background(), report)

	assert.Error(t, err)
}

func TestWriter_Write_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(createTemplate(t, dir), filepath.Join(dir, "out.xlsx"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := writer.Write(ctx, &domain.Report{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWriter_Defaults(t *testing.T) {
	writer := NewWriter("", "")

	assert.Equal(t, domain.DefaultTemplatePath, writer.templatePath)
	assert.Equal(t, domain.DefaultOutputPath, writer.outputPath)
}
