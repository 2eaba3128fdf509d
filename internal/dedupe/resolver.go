// Package dedupe groups import rows by a derived identity key and separates
// unique rows from duplicate clusters that need operator resolution.
package dedupe

import (
	"strings"

	"FormationImporter/internal/domain"
)

// KeyFunc derives the identity key of a record. Rows with equal keys are
// duplicates of one another.
type KeyFunc func(domain.Record) string

// FullRowKey joins every cell (trimmed, lowercased) with a pipe. It catches
// byte-identical resubmissions only, which is the right contract for
// immutable survey answers.
func FullRowKey(rec domain.Record) string {
	cells := rec.Values()
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = strings.ToLower(strings.TrimSpace(cell))
	}
	return strings.Join(parts, "|")
}

// FieldKey keys on a single trimmed field, e.g. the PRJ number for project
// imports, which also catches same-project-different-content resubmissions.
func FieldKey(field string) KeyFunc {
	return func(rec domain.Record) string {
		return strings.TrimSpace(rec.Get(field))
	}
}

// Result of one resolution pass.
type Result struct {
	// Groups holds one entry per key shared by more than one row, in
	// first-seen order.
	Groups []domain.DuplicateGroup

	// Unique is the row set with every group collapsed to its first-seen
	// representative; when no duplicates exist it is the input unchanged.
	Unique []domain.Record
}

// Resolve iterates the rows once, grouping by identity key. Ordering is
// stable for identical input: groups, rows within a group, and unique rows
// all preserve first-seen order. Map iteration order is never relied on.
func Resolve(rows []domain.Record, key KeyFunc) Result {
	type slot struct {
		unique int // index into result.Unique
		group  int // index into result.Groups, -1 until a duplicate appears
	}

	var result Result
	seen := make(map[string]*slot, len(rows))

	for _, rec := range rows {
		k := key(rec)
		s, ok := seen[k]
		if !ok {
			seen[k] = &slot{unique: len(result.Unique), group: -1}
			result.Unique = append(result.Unique, rec)
			continue
		}

		if s.group == -1 {
			s.group = len(result.Groups)
			result.Groups = append(result.Groups, domain.DuplicateGroup{
				Key:  k,
				Rows: []domain.Record{result.Unique[s.unique]},
			})
		}
		g := &result.Groups[s.group]
		g.Rows = append(g.Rows, rec)
	}

	return result
}
