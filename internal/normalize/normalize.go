// Package normalize converts raw worksheet cells into canonical task field
// values. It is applied independently to every data row and never fails:
// anything it cannot make sense of becomes a warning, not an error.
package normalize

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/resolve"
)

// Fields holds the normalized values of one data row before validation.
type Fields struct {
	PONumber    string
	DateCreated time.Time
	Category    domain.Category
	Action      string
	Customer    string
	Requester   string
	Responsible string
	Deadline    *time.Time
	Status      domain.Status
	Notes       string

	Installation bool
	Repair       bool
	Development  bool
	Delivery     bool
}

// Warning is a row-level anomaly observed while normalizing.
type Warning struct {
	Outcome domain.RowOutcome
	Detail  string
}

// Clean converts any raw cell value to a trimmed string. Missing cells
// come through as empty strings.
func Clean(raw string) string {
	return strings.TrimSpace(raw)
}

// Truthy decides whether a flag cell is set. Hand-maintained workbooks use
// all kinds of ad-hoc markers, so any non-empty value that is not an
// explicit negative counts as set.
func Truthy(raw string) bool {
	value := strings.ToLower(Clean(raw))
	switch value {
	case "true", "1", "yes", "oui", "x", "✓", "checked":
		return true
	case "", "0", "false", "no", "non":
		return false
	}
	return true
}

// Status maps a raw status cell onto the canonical vocabulary. Unknown or
// empty values default to Pending without a warning: an ambiguous backlog
// item is safest treated as not started.
func (v *Vocabulary) Status(raw string) domain.Status {
	value := strings.ToLower(Clean(raw))
	if status, ok := v.Statuses[value]; ok {
		return status
	}
	return domain.StatusPending
}

var titleCaser = cases.Title(language.Und)

// Category maps a raw category cell onto the canonical vocabulary. An
// unknown non-empty value is kept, title-cased, rather than discarded:
// the operator may have entered it on purpose. The second return reports
// whether the value was recognized.
func (v *Vocabulary) Category(raw string) (domain.Category, bool) {
	value := strings.ToLower(Clean(raw))
	if value == "" {
		return "", true
	}
	if category, ok := v.Categories[value]; ok {
		return category, true
	}
	return domain.Category(titleCaser.String(value)), false
}

// flagCategories is the category inference order when the explicit category
// cell is empty. It mirrors the flag columns' order in the source workbook
// and must not be reordered.
var flagCategories = []struct {
	field    resolve.Field
	category domain.Category
}{
	{resolve.FieldInstallFlag, domain.CategoryInstallation},
	{resolve.FieldRepairFlag, domain.CategoryRepair},
	{resolve.FieldDevFlag, domain.CategoryDevelopment},
	{resolve.FieldDeliverFlag, domain.CategoryDelivery},
}

// Row normalizes one data row into partial fields. ref supplies both the
// fallback creation instant and the century anchor for two-digit years.
func Row(row []string, headers resolve.HeaderMap, vocab *Vocabulary, ref time.Time) (Fields, []Warning) {
	cell := func(f resolve.Field) string {
		idx, ok := headers[f]
		if !ok || idx >= len(row) {
			return ""
		}
		return Clean(row[idx])
	}

	var warnings []Warning

	fields := Fields{
		PONumber:     cell(resolve.FieldPONumber),
		Action:       cell(resolve.FieldAction),
		Customer:     cell(resolve.FieldCustomer),
		Requester:    cell(resolve.FieldRequester),
		Responsible:  cell(resolve.FieldResponsible),
		Notes:        cell(resolve.FieldNotes),
		Status:       vocab.Status(cell(resolve.FieldStatus)),
		Installation: Truthy(cell(resolve.FieldInstallFlag)),
		Repair:       Truthy(cell(resolve.FieldRepairFlag)),
		Development:  Truthy(cell(resolve.FieldDevFlag)),
		Delivery:     Truthy(cell(resolve.FieldDeliverFlag)),
	}

	// Creation date falls back to the processing instant when missing or
	// unparseable; only the unparseable case is worth a warning.
	if raw := cell(resolve.FieldDate); raw == "" {
		fields.DateCreated = ref
	} else if t, ok := ParseDate(raw, ref); ok {
		fields.DateCreated = t
	} else {
		fields.DateCreated = ref
		warnings = append(warnings, Warning{domain.RowWarningDateUnparsed, raw})
	}

	// Deadlines have no sensible fallback and stay unset instead.
	if raw := cell(resolve.FieldDeadline); raw != "" {
		if t, ok := ParseDate(raw, ref); ok {
			fields.Deadline = &t
		} else {
			warnings = append(warnings, Warning{domain.RowWarningDateUnparsed, raw})
		}
	}

	rawCategory := cell(resolve.FieldCategory)
	category, known := vocab.Category(rawCategory)
	fields.Category = category
	if !known {
		warnings = append(warnings, Warning{domain.RowWarningUnrecognizedCategory, rawCategory})
	}

	if fields.Category == "" {
		fields.Category = inferCategory(fields)
	}

	return fields, warnings
}

// inferCategory derives a category from the flag columns when the explicit
// cell is empty. First set flag wins, in workbook column order.
func inferCategory(f Fields) domain.Category {
	set := map[resolve.Field]bool{
		resolve.FieldInstallFlag: f.Installation,
		resolve.FieldRepairFlag:  f.Repair,
		resolve.FieldDevFlag:     f.Development,
		resolve.FieldDeliverFlag: f.Delivery,
	}
	for _, fc := range flagCategories {
		if set[fc.field] {
			return fc.category
		}
	}
	return ""
}
