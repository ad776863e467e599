// Package resolve maps the raw header row of a workbook onto the canonical
// task fields. Raw headers in hand-maintained files drift in case, spacing
// and language, so matching is done against a ranked synonym table per
// field instead of exact labels.
package resolve

import (
	"strings"

	"github.com/techmac/taskimport/internal/domain"
)

// Field names a canonical slot in the TaskRecord schema.
type Field string

// Canonical fields
const (
	FieldAction      Field = "actionDescription"
	FieldCustomer    Field = "customer"
	FieldRequester   Field = "requester"
	FieldResponsible Field = "responsible"
	FieldDate        Field = "dateCreated"
	FieldPONumber    Field = "poNumber"
	FieldCategory    Field = "category"
	FieldDeadline    Field = "deadline"
	FieldStatus      Field = "status"
	FieldNotes       Field = "notes"
	FieldInstallFlag Field = "installationFlag"
	FieldRepairFlag  Field = "repairFlag"
	FieldDevFlag     Field = "developmentFlag"
	FieldDeliverFlag Field = "deliveryFlag"
)

type fieldSpec struct {
	field    Field
	required bool
	synonyms []string
}

// Resolution order matters twice over: required fields claim their columns
// before optional ones (so "Responsible" is never swallowed by the "po"
// synonym), and within one field the leftmost matching header wins.
var fieldSpecs = []fieldSpec{
	{FieldAction, true, []string{"action"}},
	{FieldCustomer, true, []string{"customer"}},
	{FieldRequester, true, []string{"requester"}},
	{FieldResponsible, true, []string{"resp"}},
	{FieldDate, false, []string{"date"}},
	{FieldDeadline, false, []string{"dead line", "deadline"}},
	{FieldPONumber, false, []string{"po"}},
	{FieldCategory, false, []string{"catégorie", "categorie", "category"}},
	{FieldStatus, false, []string{"status", "statut"}},
	{FieldNotes, false, []string{"note"}},
	{FieldInstallFlag, false, []string{"installation"}},
	{FieldRepairFlag, false, []string{"réparation", "reparation", "repair"}},
	{FieldDevFlag, false, []string{"développement", "developpement", "development"}},
	{FieldDeliverFlag, false, []string{"livraison", "delivery"}},
}

// HeaderMap maps each resolved canonical field to its column index in the
// worksheet grid. Built once per import and discarded with it.
type HeaderMap map[Field]int

// Has reports whether the field resolved to a column.
func (m HeaderMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Headers resolves the raw header row against the synonym table. A raw
// header matches a field if, after trimming and lower-casing, it contains
// one of the field's synonyms. Every unresolved required field is collected
// before failing, so the caller can report them all at once via
// *domain.MissingColumnsError.
func Headers(header []string) (HeaderMap, error) {
	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}

	headerMap := make(HeaderMap, len(fieldSpecs))
	claimed := make(map[int]bool, len(header))
	var missing []string

	for _, spec := range fieldSpecs {
		idx, found := findColumn(cleaned, claimed, spec.synonyms)
		if found {
			headerMap[spec.field] = idx
			claimed[idx] = true
			continue
		}
		if spec.required {
			missing = append(missing, string(spec.field))
		}
	}

	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Columns: missing}
	}

	return headerMap, nil
}

func findColumn(cleaned []string, claimed map[int]bool, synonyms []string) (int, bool) {
	for _, syn := range synonyms {
		for i, h := range cleaned {
			if h == "" || claimed[i] {
				continue
			}
			if strings.Contains(h, syn) {
				return i, true
			}
		}
	}
	return 0, false
}
