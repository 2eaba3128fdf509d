package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want rune
	}{
		{"comma header", "nom,prenom,email\na,b,c", Comma},
		{"semicolon header", "nom;prenom;email\na;b;c", Semicolon},
		{"tab header", "nom\tprenom\temail\na\tb\tc", Tab},
		{"no delimiter defaults to comma", "singlecolumn\nvalue", Comma},
		{"empty input defaults to comma", "", Comma},
		{"tie goes to comma", "a,b;c;x,y", Comma},
		{"semicolon wins by strict majority", "a;b;c,d", Semicolon},
		{"tab needs strict majority over both", "a\tb,c;d", Comma},
		{"quoted delimiters are ignored", `"a;b;c";"d;e";f,g,h,i`, Comma},
		{"escaped quote stays inside quotes", "\"a\"\";\"\";b\";c;d", Semicolon},
		{"only first logical line counts", "a,b\nx;y;z;w;v", Comma},
		{"quoted newline does not end the line", "\"a\nx;y;z\",b,c\nq", Comma},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectDelimiter(tc.text))
		})
	}
}

func TestDetectDelimiterIdempotent(t *testing.T) {
	t.Parallel()

	text := "col a;col b;\"c;d\"\n1;2;3"
	first := DetectDelimiter(text)
	assert.Equal(t, first, DetectDelimiter(text))
}
