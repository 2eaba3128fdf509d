package parser

import (
	"strings"

	"FormationImporter/internal/domain"
)

// Tokenize splits raw text into rows of trimmed cells using a single
// left-to-right scan. Quoted cells may contain the delimiter, escaped quotes
// (""), and embedded line terminators, which are preserved as data. Rows
// without a single non-empty cell are dropped; their line numbers are still
// counted so that every emitted row keeps the 1-based logical line number it
// started on. An unterminated quote at end of input is tolerated: the scan
// ends still inside quotes and flushes what was accumulated.
//
// The stdlib encoding/csv reader is deliberately not used here: it has no
// notion of per-cell trimming, blank-line skipping keyed on post-trim
// emptiness, or recoverable unterminated quotes, all of which the legacy
// exports require.
func Tokenize(text string, delimiter rune) []domain.Row {
	var (
		rows     []domain.Row
		cells    []string
		cell     strings.Builder
		inQuotes bool
		line     = 1
	)

	delim := byte(delimiter)

	closeCell := func() {
		cells = append(cells, strings.TrimSpace(cell.String()))
		cell.Reset()
	}

	closeRow := func(nextLine int) {
		closeCell()
		for _, c := range cells {
			if c != "" {
				rows = append(rows, domain.Row{Cells: cells, Line: line})
				break
			}
		}
		cells = nil
		line = nextLine
	}

	logical := 1 // logical line counter; quoted newlines do not advance it
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' && !inQuotes:
			inQuotes = true
		case c == '"' && inQuotes:
			if i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case c == delim && !inQuotes:
			closeCell()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			logical++
			closeRow(logical)
		default:
			cell.WriteByte(c)
		}
	}

	// Flush the pending row, if any, under the same non-empty rule.
	if cell.Len() > 0 || len(cells) > 0 {
		closeRow(logical + 1)
	}

	return rows
}
