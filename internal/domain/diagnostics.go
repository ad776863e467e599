package domain

// RowOutcome classifies what happened to a single data row during import.
type RowOutcome string

// Row outcomes
const (
	RowAccepted                    RowOutcome = "Accepted"
	RowSkippedEmpty                RowOutcome = "SkippedEmpty"
	RowSkippedMissingRequiredField RowOutcome = "SkippedMissingRequiredField"
	RowWarningDateUnparsed         RowOutcome = "WarningDateUnparsed"
	RowWarningUnrecognizedCategory RowOutcome = "WarningUnrecognizedCategory"
)

// Diagnostic records one outcome for one data row. RowIndex is the row's
// position in the worksheet grid: the header row is 0, data rows start at 1.
// A row may carry several diagnostics, e.g. Accepted plus a date warning.
type Diagnostic struct {
	RowIndex int        `json:"rowIndex"`
	Outcome  RowOutcome `json:"outcome"`
	Detail   string     `json:"detail,omitempty"`
}

// Stats summarizes an import run.
type Stats struct {
	Rows     int `json:"rows"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Warnings int `json:"warnings"`
}

// Result is what an import hands back to the caller: every record that
// could be built, plus the ordered per-row diagnostics for the rest.
type Result struct {
	Records     []TaskRecord `json:"records"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Stats       Stats        `json:"stats"`
}

// StructureReport is the outcome of the pre-flight structural check.
type StructureReport struct {
	Valid          bool     `json:"valid"`
	MissingHeaders []string `json:"missingHeaders,omitempty"`
}
