package reader

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"FormationImporter/internal/domain"
	"FormationImporter/internal/source"
)

// XLSXSource loads the first worksheet of an Excel workbook into a sheet,
// with the same trimming and blank-row rules the CSV tokenizer applies. Row
// numbers are spreadsheet row numbers, so line references in duplicate
// groups and error reports match what the operator sees in Excel.
type XLSXSource struct {
	// SheetName selects a worksheet; empty means the first one.
	SheetName string
}

var _ source.Source = (*XLSXSource)(nil)

// Name identifies the format inside the registry.
func (s *XLSXSource) Name() string {
	return "xlsx"
}

// Load opens the workbook and extracts header plus data rows.
func (s *XLSXSource) Load(ctx context.Context, path string) (domain.Sheet, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer book.Close()

	name := s.SheetName
	if name == "" {
		name = book.GetSheetName(0)
	}

	raw, err := book.GetRows(name)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("read sheet %s: %w", name, err)
	}

	var rows []domain.Row
	for i, cells := range raw {
		trimmed := make([]string, len(cells))
		empty := true
		for j, cell := range cells {
			trimmed[j] = strings.TrimSpace(cell)
			if trimmed[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, domain.Row{Cells: trimmed, Line: i + 1})
	}

	if len(rows) == 0 {
		return domain.Sheet{}, fmt.Errorf("workbook sheet %s contains no rows", name)
	}
	if len(rows[0].Cells) == 0 {
		return domain.Sheet{}, fmt.Errorf("header row is empty")
	}

	return domain.Sheet{Header: domain.Header(rows[0].Cells), Rows: rows[1:]}, nil
}
