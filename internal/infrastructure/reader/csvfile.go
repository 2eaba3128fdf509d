package reader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"FormationImporter/internal/domain"
	"FormationImporter/internal/parser"
	"FormationImporter/internal/source"
)

const utf8BOM = "\ufeff"

// CSVSource loads UTF-8 CSV exports. The delimiter is auto-detected from the
// first logical line unless an explicit one is configured.
type CSVSource struct {
	// Delimiter forces a field delimiter; zero means auto-detect.
	Delimiter rune
}

var _ source.Source = (*CSVSource)(nil)

// Name identifies the format inside the registry.
func (s *CSVSource) Name() string {
	return "csv"
}

// Load reads the file and tokenizes it into a sheet.
func (s *CSVSource) Load(ctx context.Context, path string) (domain.Sheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s.Sheet(string(raw))
}

// Sheet tokenizes raw CSV text: strips the BOM, detects the delimiter, and
// splits the result into header plus numbered data rows. An input without a
// usable header row is fatal for the whole job.
func (s *CSVSource) Sheet(raw string) (domain.Sheet, error) {
	raw = strings.TrimPrefix(raw, utf8BOM)

	delimiter := s.Delimiter
	if delimiter == 0 {
		delimiter = parser.DetectDelimiter(raw)
	}

	rows := parser.Tokenize(raw, delimiter)
	if len(rows) == 0 {
		return domain.Sheet{}, fmt.Errorf("input contains no rows")
	}

	header := domain.Header(rows[0].Cells)
	if len(header) == 0 {
		return domain.Sheet{}, fmt.Errorf("header row is empty")
	}

	return domain.Sheet{Header: header, Rows: rows[1:]}, nil
}
