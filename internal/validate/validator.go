// Package validate flags rows missing required fields. Failures are reported
// as structured outcomes; the pipeline never halts on a bad row.
package validate

import (
	"fmt"
	"strings"

	"FormationImporter/internal/domain"
)

// WarnFunc lets a job profile add non-blocking domain warnings for a row.
type WarnFunc func(domain.Record) []string

// Check verifies that every required field is non-empty after trimming and
// collects profile warnings. Valid is true iff no error was recorded;
// warnings never affect validity.
func Check(rec domain.Record, required []string, warn WarnFunc) domain.ValidationOutcome {
	outcome := domain.ValidationOutcome{Valid: true}

	for _, field := range required {
		if strings.TrimSpace(rec.Get(field)) == "" {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("missing required field: %s", field))
		}
	}
	outcome.Valid = len(outcome.Errors) == 0

	if warn != nil {
		outcome.Warnings = append(outcome.Warnings, warn(rec)...)
	}

	return outcome
}
