package parser

// Candidate delimiters, in tie-break priority order: comma wins over
// semicolon unless the semicolon count is strictly higher; tab wins only by
// strict majority over both.
const (
	Comma     = ','
	Semicolon = ';'
	Tab       = '\t'
)

// DetectDelimiter inspects the first logical line of raw text and returns the
// most likely field delimiter. Occurrences inside quoted sections are ignored.
// Absence of any delimiter defaults to comma; there are no error conditions.
func DetectDelimiter(text string) rune {
	line := firstLogicalLine(text)

	var commas, semicolons, tabs int
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '"' {
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				i++ // escaped quote, stays inside
				continue
			}
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		switch c {
		case Comma:
			commas++
		case Semicolon:
			semicolons++
		case Tab:
			tabs++
		}
	}

	if tabs > commas && tabs > semicolons {
		return Tab
	}
	if semicolons > commas {
		return Semicolon
	}
	return Comma
}

// firstLogicalLine returns the text up to the first unquoted line terminator.
// A quoted newline is data, not a line break.
func firstLogicalLine(text string) string {
	inQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' {
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				i++
				continue
			}
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes && (c == '\n' || c == '\r') {
			return text[:i]
		}
	}
	return text
}
