package domain

// EntityKind enumerates the entity categories the reconciliation step knows
// about. Closed set: persistence dispatches on these values only.
type EntityKind string

const (
	KindCompany     EntityKind = "company"
	KindTrainer     EntityKind = "trainer"
	KindSalesperson EntityKind = "salesperson"
	KindCoursePlan  EntityKind = "course_plan"
	KindProject     EntityKind = "project"
	KindEvaluation  EntityKind = "evaluation"
)

// Entity is a stored record addressable by kind plus natural key.
type Entity struct {
	ID     string
	Kind   EntityKind
	Key    string
	Fields map[string]string
}

// ValidationOutcome is the per-row result of required-field checks. Errors
// block persistence; warnings never do.
type ValidationOutcome struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// DuplicateGroup collects every row sharing one identity key, in first-seen
// order. Groups exist only when more than one row shares the key.
type DuplicateGroup struct {
	Key  string
	Rows []Record
}

// Lines returns the 1-based line numbers of the grouped rows.
func (g DuplicateGroup) Lines() []int {
	lines := make([]int, len(g.Rows))
	for i, rec := range g.Rows {
		lines[i] = rec.Line
	}
	return lines
}

// ImportProgress is the cumulative state of one running import, reported
// synchronously after each row. Owned by the orchestrator; observers must
// treat it as read-only.
type ImportProgress struct {
	Current int
	Total   int
	Created int
	Updated int
	Message string
}

// RowError records one non-fatal failure: the originating line, the business
// identifier when it was parseable, and the error text.
type RowError struct {
	Line       int
	BusinessID string
	Message    string
}

// Summary is the final result of an import job.
type Summary struct {
	Created int
	Updated int

	// NewRelated lists natural keys of related entities created during
	// reconciliation, grouped by category (entity kind).
	NewRelated map[string][]string

	Errors   []RowError
	Warnings []RowError
}
