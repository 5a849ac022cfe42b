// Package xlsx writes reports into an Excel template using excelize.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// Writer fills the active sheet of a template workbook and saves a copy.
// The template itself is never modified.
type Writer struct {
	templatePath string
	outputPath   string
}

// NewWriter creates a writer for the given template and output paths.
func NewWriter(templatePath, outputPath string) *Writer {
	if templatePath == "" {
		templatePath = domain.DefaultTemplatePath
	}
	if outputPath == "" {
		outputPath = domain.DefaultOutputPath
	}
	return &Writer{
		templatePath: templatePath,
		outputPath:   outputPath,
	}
}

// Write copies every report cell into the template and saves the output workbook.
// Values are written as text exactly as answered.
func (w *Writer) Write(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(w.templatePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, w.templatePath)
		}
		return "", fmt.Errorf("stat template: %w", err)
	}

	f, err := excelize.OpenFile(w.templatePath)
	if err != nil {
		return "", fmt.Errorf("open template %s: %w", w.templatePath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("close workbook: %v", cerr)
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return "", fmt.Errorf("template %s has no active sheet", w.templatePath)
	}

	for _, coord := range report.Coordinates() {
		if err := f.SetCellStr(sheet, coord.String(), report.Cells[coord]); err != nil {
			return "", fmt.Errorf("set %s: %w", coord, err)
		}
	}

	if dir := filepath.Dir(w.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := f.SaveAs(w.outputPath); err != nil {
		return "", fmt.Errorf("save %s: %w", w.outputPath, err)
	}

	logger.Debug("wrote sheet %q of %s to %s", sheet, w.templatePath, w.outputPath)
	return w.outputPath, nil
}
