package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"FormationImporter/internal/dedupe"
	"FormationImporter/internal/domain"
	"FormationImporter/internal/parser"
	"FormationImporter/internal/ports"
	"FormationImporter/internal/validate"
)

var (
	// ErrJobCancelled is returned when a cancelled job is processed or
	// resumed. Rows persisted before the cancellation are not rolled back.
	ErrJobCancelled = errors.New("import job cancelled")

	// ErrNotSuspended is returned by Resume when the job is not waiting for
	// duplicate resolution.
	ErrNotSuspended = errors.New("import job is not suspended")

	// ErrIncompleteSelection is returned by Resume when at least one
	// duplicate group has no (or an out-of-range) selection. The job stays
	// suspended.
	ErrIncompleteSelection = errors.New("selection missing for duplicate group")
)

// Profile describes one import flavor: how rows are keyed for duplicate
// detection, which fields must be present, and how a valid row is reconciled
// against the store.
type Profile interface {
	Name() string
	IdentityKey() dedupe.KeyFunc
	RequiredFields() []string

	// Warnings reports non-blocking anomalies for a row.
	Warnings(rec domain.Record) []string

	// BusinessID extracts the primary business identifier, used in error
	// reports. May be empty when the row does not carry one.
	BusinessID(rec domain.Record) string

	// Persist reconciles one valid row against the store: related entities
	// are looked up or created through the tracker, then the primary entity
	// is upserted. Reports whether the primary entity was created.
	Persist(ctx context.Context, store ports.EntityStore, related *RelatedTracker, rec domain.Record) (bool, error)
}

type jobState int

const (
	stateIdle jobState = iota
	stateSuspended
	stateCompleted
	stateCancelled
)

// JobDeps wires the orchestrator dependencies.
type JobDeps struct {
	Profile  Profile
	Store    ports.EntityStore
	Progress ports.ProgressFunc
	Logger   *slog.Logger
}

// Job drives one import end-to-end: map rows, detect duplicates, suspend for
// operator resolution when needed, validate, normalize, and persist in strict
// input order. A Job is single-use and not safe for concurrent calls.
type Job struct {
	profile  Profile
	store    ports.EntityStore
	progress ports.ProgressFunc
	logger   *slog.Logger

	state     jobState
	cancelled bool
	rows      []domain.Record
	groups    []domain.DuplicateGroup
}

// NewJob constructs the orchestrator.
func NewJob(deps JobDeps) *Job {
	return &Job{
		profile:  deps.Profile,
		store:    deps.Store,
		progress: deps.Progress,
		logger:   deps.Logger,
	}
}

// StartOutcome is the result of Start: either the job ran to completion
// (Summary set) or duplicate groups need operator resolution first
// (Duplicates non-empty, Summary nil).
type StartOutcome struct {
	Duplicates []domain.DuplicateGroup
	Summary    *domain.Summary
}

// Start maps the sheet into records and runs duplicate detection. When
// duplicate groups exist the job suspends, holding its row set immutable
// until Resume; nothing has been persisted at that point. Header problems
// are fatal for the whole job.
func (j *Job) Start(ctx context.Context, sheet domain.Sheet) (*StartOutcome, error) {
	if j.state != stateIdle || j.cancelled {
		return nil, fmt.Errorf("job already started")
	}
	if len(sheet.Header) == 0 {
		return nil, fmt.Errorf("header row is empty")
	}

	records := parser.MapRows(sheet.Header, sheet.Rows)
	result := dedupe.Resolve(records, j.profile.IdentityKey())
	j.rows = result.Unique
	j.groups = result.Groups

	if len(result.Groups) > 0 {
		j.state = stateSuspended
		j.debug("job suspended on duplicates", "groups", len(result.Groups))
		return &StartOutcome{Duplicates: result.Groups}, nil
	}

	summary, err := j.process(ctx)
	if err != nil {
		return nil, err
	}
	return &StartOutcome{Summary: summary}, nil
}

// Resume continues a suspended job with one selected row index per duplicate
// group (keyed by group identity key, 0-based index into the group rows).
// An incomplete or out-of-range selection rejects the call synchronously and
// the job stays suspended with no rows processed.
func (j *Job) Resume(ctx context.Context, selections map[string]int) (*domain.Summary, error) {
	if j.cancelled || j.state == stateCancelled {
		return nil, ErrJobCancelled
	}
	if j.state != stateSuspended {
		return nil, ErrNotSuspended
	}

	chosen := make(map[string]domain.Record, len(j.groups))
	for _, group := range j.groups {
		idx, ok := selections[group.Key]
		if !ok || idx < 0 || idx >= len(group.Rows) {
			return nil, fmt.Errorf("%w: %q", ErrIncompleteSelection, group.Key)
		}
		chosen[group.Key] = group.Rows[idx]
	}

	// Swap each first-seen representative for the operator's choice; rows
	// outside any group pass through untouched.
	key := j.profile.IdentityKey()
	for i, rec := range j.rows {
		if selected, ok := chosen[key(rec)]; ok {
			j.rows[i] = selected
		}
	}

	return j.process(ctx)
}

// Cancel stops the job between rows. Already-persisted entities stay; the
// job can never be resumed afterwards.
func (j *Job) Cancel() {
	j.cancelled = true
}

// process validates, normalizes, and persists the pending row set. Row-level
// failures are accumulated, never thrown mid-loop.
func (j *Job) process(ctx context.Context) (*domain.Summary, error) {
	summary := &domain.Summary{NewRelated: map[string][]string{}}
	related := NewRelatedTracker(j.store)
	total := len(j.rows)

	for i, rec := range j.rows {
		if j.cancelled || ctx.Err() != nil {
			j.state = stateCancelled
			j.cancelled = true
			summary.NewRelated = related.Created()
			return summary, ErrJobCancelled
		}

		businessID := j.profile.BusinessID(rec)
		message := fmt.Sprintf("row %d/%d", i+1, total)

		outcome := validate.Check(rec, j.profile.RequiredFields(), j.profile.Warnings)
		for _, warning := range outcome.Warnings {
			summary.Warnings = append(summary.Warnings, domain.RowError{
				Line:       rec.Line,
				BusinessID: businessID,
				Message:    warning,
			})
		}

		switch {
		case !outcome.Valid:
			summary.Errors = append(summary.Errors, domain.RowError{
				Line:       rec.Line,
				BusinessID: businessID,
				Message:    strings.Join(outcome.Errors, "; "),
			})
			message = fmt.Sprintf("row %d/%d skipped", i+1, total)
		default:
			created, err := j.profile.Persist(ctx, j.store, related, rec)
			if err != nil {
				j.debug("persist row failed", "line", rec.Line, "error", err)
				summary.Errors = append(summary.Errors, domain.RowError{
					Line:       rec.Line,
					BusinessID: businessID,
					Message:    err.Error(),
				})
			} else if created {
				summary.Created++
			} else {
				summary.Updated++
			}
		}

		if j.progress != nil {
			j.progress(domain.ImportProgress{
				Current: i + 1,
				Total:   total,
				Created: summary.Created,
				Updated: summary.Updated,
				Message: message,
			})
		}
	}

	summary.NewRelated = related.Created()
	j.state = stateCompleted
	return summary, nil
}

func (j *Job) debug(msg string, args ...any) {
	if j.logger != nil {
		j.logger.Debug(msg, args...)
	}
}
