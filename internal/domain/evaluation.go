package domain

import "time"

// ParsedEvaluation is the typed projection of one survey-export row after
// normalization. Nullable members are decided once here, not re-checked at
// every use site.
type ParsedEvaluation struct {
	ResponseDate   *time.Time
	TrainerEmail   string
	TrainerFirst   string
	TrainerLast    string
	Session        string
	Company        string
	OverallGrade   *int // 1-5, from the text-grade vocabulary
	Recommendation *int // 1-5, collapsed from the 0-10 survey scale
	Comment        string

	// Source keeps the originating record for diagnostics.
	Source Record
}

// ParsedProjectRow is the typed projection of one project-list row after
// normalization.
type ParsedProjectRow struct {
	Number       string // PRJ business identifier
	Company      string
	City         string
	TrainerFirst string
	TrainerLast  string
	SalesFirst   string
	SalesLast    string
	CoursePlan   string
	StartDate    *time.Time
	SessionDates []time.Time

	Source Record
}
