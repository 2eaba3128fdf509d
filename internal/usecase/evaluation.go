package usecase

import (
	"context"
	"fmt"
	"strings"

	"FormationImporter/internal/config"
	"FormationImporter/internal/dedupe"
	"FormationImporter/internal/domain"
	"FormationImporter/internal/normalize"
	"FormationImporter/internal/ports"
)

// Logical field names of the evaluation survey export. The header names the
// export actually carries can be remapped per deployment via configuration.
const (
	evalFieldDate         = "date"
	evalFieldEmail        = "email"
	evalFieldTrainerEmail = "trainerEmail"
	evalFieldSession      = "session"
	evalFieldCompany      = "company"
	evalFieldOverall      = "overall"
	evalFieldRecommend    = "recommend"
	evalFieldComment      = "comment"
)

var evalDefaultColumns = map[string]string{
	evalFieldDate:         "Date",
	evalFieldEmail:        "Email",
	evalFieldTrainerEmail: "Email formateur",
	evalFieldSession:      "Session",
	evalFieldCompany:      "Société",
	evalFieldOverall:      "Note globale",
	evalFieldRecommend:    "Recommandation",
	evalFieldComment:      "Commentaire",
}

// EvaluationProfile imports historical survey submissions. Submissions are
// immutable, so the identity key is the full row: only byte-identical
// resubmissions count as duplicates.
type EvaluationProfile struct {
	columns  map[string]string
	required []string
}

var _ Profile = (*EvaluationProfile)(nil)

// NewEvaluationProfile applies configuration overrides on top of the export
// defaults.
func NewEvaluationProfile(cfg config.ProfileConfig) *EvaluationProfile {
	p := &EvaluationProfile{
		columns:  overlayColumns(evalDefaultColumns, cfg.Columns),
		required: cfg.RequiredFields,
	}
	if len(p.required) == 0 {
		p.required = []string{p.columns[evalFieldEmail], p.columns[evalFieldDate], p.columns[evalFieldSession]}
	}
	return p
}

// Name identifies the profile.
func (p *EvaluationProfile) Name() string { return "evaluations" }

// IdentityKey groups byte-identical rows only.
func (p *EvaluationProfile) IdentityKey() dedupe.KeyFunc { return dedupe.FullRowKey }

// RequiredFields lists the header names that must be non-empty.
func (p *EvaluationProfile) RequiredFields() []string { return p.required }

// Warnings flags a missing trainer email; the import proceeds regardless.
func (p *EvaluationProfile) Warnings(rec domain.Record) []string {
	if strings.TrimSpace(rec.Get(p.columns[evalFieldTrainerEmail])) == "" {
		return []string{fmt.Sprintf("missing optional field: %s", p.columns[evalFieldTrainerEmail])}
	}
	return nil
}

// BusinessID is the respondent email plus response date; evaluations have no
// export-side identifier of their own.
func (p *EvaluationProfile) BusinessID(rec domain.Record) string {
	email := strings.ToLower(strings.TrimSpace(rec.Get(p.columns[evalFieldEmail])))
	if date, ok := normalize.MonthFirst(rec.Get(p.columns[evalFieldDate])); ok {
		return email + "|" + date.Format("2006-01-02")
	}
	return email
}

// Parse builds the typed projection of one survey row.
func (p *EvaluationProfile) Parse(rec domain.Record) domain.ParsedEvaluation {
	eval := domain.ParsedEvaluation{
		TrainerEmail: strings.TrimSpace(rec.Get(p.columns[evalFieldTrainerEmail])),
		Session:      rec.Get(p.columns[evalFieldSession]),
		Company:      normalize.CompanyName(rec.Get(p.columns[evalFieldCompany])),
		Comment:      rec.Get(p.columns[evalFieldComment]),
		Source:       rec,
	}

	// The response timestamp is the one month-first column in the export.
	if date, ok := normalize.MonthFirst(rec.Get(p.columns[evalFieldDate])); ok {
		eval.ResponseDate = &date
	}
	if grade, ok := normalize.TextGrade(rec.Get(p.columns[evalFieldOverall])); ok {
		eval.OverallGrade = &grade
	}
	if grade, ok := normalize.Scale10To5(rec.Get(p.columns[evalFieldRecommend])); ok {
		eval.Recommendation = &grade
	}
	if name, ok := normalize.NameFromEmail(eval.TrainerEmail); ok {
		eval.TrainerFirst = name.First
		eval.TrainerLast = name.Last
	}
	return eval
}

// Persist reconciles one survey row: trainer and course plan are looked up or
// created by natural key, then the evaluation itself is upserted.
func (p *EvaluationProfile) Persist(ctx context.Context, store ports.EntityStore, related *RelatedTracker, rec domain.Record) (bool, error) {
	eval := p.Parse(rec)

	trainer, err := related.FindOrCreate(ctx, domain.KindTrainer, strings.ToLower(eval.TrainerEmail), map[string]string{
		"email":      eval.TrainerEmail,
		"first_name": eval.TrainerFirst,
		"last_name":  eval.TrainerLast,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile trainer: %w", err)
	}

	plan, err := related.FindOrCreate(ctx, domain.KindCoursePlan, eval.Session, map[string]string{
		"label": eval.Session,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile course plan: %w", err)
	}

	fields := map[string]string{
		"email":   strings.TrimSpace(rec.Get(p.columns[evalFieldEmail])),
		"company": eval.Company,
		"comment": eval.Comment,
	}
	if eval.ResponseDate != nil {
		fields["response_date"] = eval.ResponseDate.Format("2006-01-02")
	}
	if eval.OverallGrade != nil {
		fields["overall_grade"] = fmt.Sprintf("%d", *eval.OverallGrade)
	}
	if eval.Recommendation != nil {
		fields["recommendation"] = fmt.Sprintf("%d", *eval.Recommendation)
	}
	if trainer != nil {
		fields["trainer_id"] = trainer.ID
	}
	if plan != nil {
		fields["course_plan_id"] = plan.ID
	}

	_, created, err := store.CreateOrUpdatePrimary(ctx, domain.KindEvaluation, p.BusinessID(rec), fields)
	if err != nil {
		return false, err
	}
	return created, nil
}

func overlayColumns(defaults, overrides map[string]string) map[string]string {
	columns := make(map[string]string, len(defaults))
	for logical, header := range defaults {
		columns[logical] = header
	}
	for logical, header := range overrides {
		columns[logical] = header
	}
	return columns
}
