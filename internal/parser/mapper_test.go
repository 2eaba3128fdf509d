package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormationImporter/internal/domain"
)

func TestMapRowsShortRow(t *testing.T) {
	t.Parallel()

	header := domain.Header{"a", "b", "c", "d", "e"}
	records := MapRows(header, []domain.Row{{Cells: []string{"1", "2"}, Line: 2}})
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 5, rec.Len())
	assert.Equal(t, "1", rec.Get("a"))
	assert.Equal(t, "2", rec.Get("b"))
	for _, field := range []string{"c", "d", "e"} {
		assert.Equal(t, "", rec.Get(field))
	}
	assert.Equal(t, 2, rec.Line)
}

func TestMapRowsExtraCellsIgnored(t *testing.T) {
	t.Parallel()

	header := domain.Header{"a", "b"}
	records := MapRows(header, []domain.Row{{Cells: []string{"1", "2", "3", "4"}, Line: 2}})
	require.Len(t, records, 1)

	assert.Equal(t, []string{"1", "2"}, records[0].Values())
}

func TestRecordGetUnknownField(t *testing.T) {
	t.Parallel()

	rec := domain.NewRecord(domain.Header{"a"}, domain.Row{Cells: []string{"1"}})
	assert.Equal(t, "", rec.Get("missing"))
}
