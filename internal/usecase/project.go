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

// Logical field names of the project-list export.
const (
	projFieldNumber      = "number"
	projFieldClient      = "client"
	projFieldTrainer     = "trainer"
	projFieldSalesperson = "salesperson"
	projFieldCoursePlan  = "coursePlan"
	projFieldDates       = "dates"
	projFieldCity        = "city"
)

var projDefaultColumns = map[string]string{
	projFieldNumber:      "N° PRJ",
	projFieldClient:      "Client",
	projFieldTrainer:     "Formateur",
	projFieldSalesperson: "Commercial",
	projFieldCoursePlan:  "PDC",
	projFieldDates:       "Dates",
	projFieldCity:        "Ville",
}

// ProjectProfile imports training projects. Projects are mutable records, so
// the identity key is the PRJ business number: two rows for the same project
// are duplicates even when their content differs.
type ProjectProfile struct {
	columns  map[string]string
	required []string
}

var _ Profile = (*ProjectProfile)(nil)

// NewProjectProfile applies configuration overrides on top of the export
// defaults.
func NewProjectProfile(cfg config.ProfileConfig) *ProjectProfile {
	p := &ProjectProfile{
		columns:  overlayColumns(projDefaultColumns, cfg.Columns),
		required: cfg.RequiredFields,
	}
	if len(p.required) == 0 {
		p.required = []string{p.columns[projFieldNumber], p.columns[projFieldClient]}
	}
	return p
}

// Name identifies the profile.
func (p *ProjectProfile) Name() string { return "projects" }

// IdentityKey groups rows sharing the PRJ number.
func (p *ProjectProfile) IdentityKey() dedupe.KeyFunc {
	return dedupe.FieldKey(p.columns[projFieldNumber])
}

// RequiredFields lists the header names that must be non-empty.
func (p *ProjectProfile) RequiredFields() []string { return p.required }

// Warnings flags a row without a trainer; scheduling can proceed without one.
func (p *ProjectProfile) Warnings(rec domain.Record) []string {
	if strings.TrimSpace(rec.Get(p.columns[projFieldTrainer])) == "" {
		return []string{fmt.Sprintf("missing optional field: %s", p.columns[projFieldTrainer])}
	}
	return nil
}

// BusinessID is the PRJ number.
func (p *ProjectProfile) BusinessID(rec domain.Record) string {
	return strings.TrimSpace(rec.Get(p.columns[projFieldNumber]))
}

// Parse builds the typed projection of one project row.
func (p *ProjectProfile) Parse(rec domain.Record) domain.ParsedProjectRow {
	client := rec.Get(p.columns[projFieldClient])

	row := domain.ParsedProjectRow{
		Number:       p.BusinessID(rec),
		Company:      normalize.CompanyName(client),
		City:         rec.Get(p.columns[projFieldCity]),
		CoursePlan:   rec.Get(p.columns[projFieldCoursePlan]),
		SessionDates: normalize.DateList(rec.Get(p.columns[projFieldDates])),
		Source:       rec,
	}
	if row.City == "" {
		row.City = normalize.CompanyCity(client)
	}
	if len(row.SessionDates) > 0 {
		row.StartDate = &row.SessionDates[0]
	}

	trainer := normalize.SplitFullName(rec.Get(p.columns[projFieldTrainer]))
	row.TrainerFirst, row.TrainerLast = trainer.First, trainer.Last

	sales := normalize.SplitFullName(rec.Get(p.columns[projFieldSalesperson]))
	row.SalesFirst, row.SalesLast = sales.First, sales.Last

	return row
}

// Persist reconciles one project row: company, trainer, salesperson, and
// course plan are looked up or created by natural key, then the project is
// upserted under its PRJ number.
func (p *ProjectProfile) Persist(ctx context.Context, store ports.EntityStore, related *RelatedTracker, rec domain.Record) (bool, error) {
	row := p.Parse(rec)

	company, err := related.FindOrCreate(ctx, domain.KindCompany, row.Company, map[string]string{
		"name": row.Company,
		"city": row.City,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile company: %w", err)
	}

	trainer, err := related.FindOrCreate(ctx, domain.KindTrainer, personKey(row.TrainerFirst, row.TrainerLast), map[string]string{
		"first_name": row.TrainerFirst,
		"last_name":  row.TrainerLast,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile trainer: %w", err)
	}

	sales, err := related.FindOrCreate(ctx, domain.KindSalesperson, personKey(row.SalesFirst, row.SalesLast), map[string]string{
		"first_name": row.SalesFirst,
		"last_name":  row.SalesLast,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile salesperson: %w", err)
	}

	plan, err := related.FindOrCreate(ctx, domain.KindCoursePlan, row.CoursePlan, map[string]string{
		"label": row.CoursePlan,
	})
	if err != nil {
		return false, fmt.Errorf("reconcile course plan: %w", err)
	}

	fields := map[string]string{
		"company": row.Company,
		"city":    row.City,
	}
	if row.StartDate != nil {
		fields["start_date"] = row.StartDate.Format("2006-01-02")
	}
	if len(row.SessionDates) > 0 {
		dates := make([]string, len(row.SessionDates))
		for i, d := range row.SessionDates {
			dates[i] = d.Format("2006-01-02")
		}
		fields["session_dates"] = strings.Join(dates, ",")
	}
	if company != nil {
		fields["company_id"] = company.ID
	}
	if trainer != nil {
		fields["trainer_id"] = trainer.ID
	}
	if sales != nil {
		fields["salesperson_id"] = sales.ID
	}
	if plan != nil {
		fields["course_plan_id"] = plan.ID
	}

	_, created, err := store.CreateOrUpdatePrimary(ctx, domain.KindProject, row.Number, fields)
	if err != nil {
		return false, err
	}
	return created, nil
}

func personKey(first, last string) string {
	key := strings.TrimSpace(strings.ToLower(first + " " + last))
	return key
}
