package importer

import (
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
)

// RowError pinpoints one validation failure: which data row and which field
// violated the contract.
type RowError struct {
	Line   int
	Field  string
	Reason error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, %s: %v", e.Line, e.Field, e.Reason)
}

func (e *RowError) Unwrap() error { return e.Reason }

// Validate checks every row against the existing hierarchy before any
// mutation: gateway identifiers must be recognized, dates must parse, project
// names must be present, and the existing hierarchy must not contain
// ambiguous (duplicated) project names. All violations are collected so the
// caller can report the full list; any violation rejects the whole batch.
func Validate(rows []Row, existing *domain.Hierarchy) []error {
	var errs []error

	if name, dup := existing.DuplicateProjectName(); dup {
		errs = append(errs, fmt.Errorf("%w: project name %q is ambiguous, cannot merge by name",
			domain.ErrDuplicateIdentity, name))
	}

	for _, row := range rows {
		errs = append(errs, validateRow(row)...)
	}
	return errs
}

func validateRow(row Row) []error {
	var errs []error

	if row.ProjectName == "" {
		errs = append(errs, &RowError{Line: row.Line, Field: "project_name",
			Reason: fmt.Errorf("is required")})
	}
	if _, err := domain.ParseGatewayID(row.Gateway); err != nil {
		errs = append(errs, &RowError{Line: row.Line, Field: "gateway", Reason: err})
	}
	if _, err := domain.ParseDate(row.PlanDate); err != nil {
		errs = append(errs, &RowError{Line: row.Line, Field: "plan_date", Reason: err})
	}
	if _, err := domain.ParseDate(row.ActualDate); err != nil {
		errs = append(errs, &RowError{Line: row.Line, Field: "actual_date", Reason: err})
	}
	return errs
}

// FormatErrors renders the collected violations as one failure.
func FormatErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
