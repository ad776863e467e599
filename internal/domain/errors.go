package domain

import (
	"errors"
	"strings"
)

// Structural errors abort an entire import before any row is processed.
// Everything else surfaces as a per-row Diagnostic instead.
var (
	ErrCorruptWorkbook = errors.New("corrupt workbook")
	ErrEmptyWorkbook   = errors.New("empty workbook")
)

// MissingColumnsError reports every required canonical field that could not
// be resolved against the workbook's header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
