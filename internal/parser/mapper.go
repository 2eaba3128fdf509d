package parser

import "FormationImporter/internal/domain"

// MapRows zips the header with each data row into Records. The header length
// is authoritative: short rows pad with empty strings, extra trailing cells
// are ignored. Always succeeds.
func MapRows(header domain.Header, rows []domain.Row) []domain.Record {
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.NewRecord(header, row))
	}
	return records
}
