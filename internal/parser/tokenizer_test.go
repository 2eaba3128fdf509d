package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormationImporter/internal/domain"
)

func cellsOf(rows []domain.Row) [][]string {
	var out [][]string
	for _, r := range rows {
		out = append(out, r.Cells)
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		text  string
		delim rune
		want  [][]string
	}{
		{
			"plain rows",
			"a,b,c\nd,e,f",
			Comma,
			[][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			"quoted delimiter stays in one cell",
			`a,"b,c",d`,
			Comma,
			[][]string{{"a", "b,c", "d"}},
		},
		{
			"escaped quotes unescape",
			`"say ""hi""",x`,
			Comma,
			[][]string{{`say "hi"`, "x"}},
		},
		{
			"embedded newline preserved",
			"\"line1\nline2\",x",
			Comma,
			[][]string{{"line1\nline2", "x"}},
		},
		{
			"cells are trimmed",
			"  a , b ,  \nc,d,e",
			Comma,
			[][]string{{"a", "b", ""}, {"c", "d", "e"}},
		},
		{
			"blank lines skipped",
			"a,b\n\n   \n, ,\nc,d\n",
			Comma,
			[][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			"crlf terminators",
			"a;b\r\nc;d\r\n",
			Semicolon,
			[][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			"bare cr terminator",
			"a\tb\rc\td",
			Tab,
			[][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			"unterminated quote tolerated",
			"a,\"b never closes",
			Comma,
			[][]string{{"a", "b never closes"}},
		},
		{
			"empty input",
			"",
			Comma,
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cellsOf(Tokenize(tc.text, tc.delim)))
		})
	}
}

func TestTokenizeLineNumbers(t *testing.T) {
	t.Parallel()

	text := "h1,h2\nv1,v2\n\nv3,v4"
	rows := Tokenize(text, Comma)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 2, rows[1].Line)
	// Blank line 3 is skipped but still counted.
	assert.Equal(t, 4, rows[2].Line)
}

func TestTokenizeQuotedNewlineKeepsLineCount(t *testing.T) {
	t.Parallel()

	text := "h\n\"a\nb\"\nc"
	rows := Tokenize(text, Comma)
	require.Len(t, rows, 3)

	assert.Equal(t, "a\nb", rows[1].Cells[0])
	// The quoted newline is data, not a logical line break.
	assert.Equal(t, 3, rows[2].Line)
}

func TestTokenizeRoundTrip(t *testing.T) {
	t.Parallel()

	// Non-adversarial round-trip: no cell contains the delimiter or a quote.
	rows := Tokenize("a;b;c\nd;e;f", Semicolon)
	require.Len(t, rows, 2)

	var lines []string
	for _, row := range rows {
		lines = append(lines, strings.Join(row.Cells, ";"))
	}
	again := Tokenize(strings.Join(lines, "\n"), Semicolon)
	assert.Equal(t, cellsOf(rows), cellsOf(again))
}
