// Package service wires the workbook reader, header resolver, row
// normalizer and record builder into the public import API.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/normalize"
	"github.com/techmac/taskimport/internal/record"
	"github.com/techmac/taskimport/internal/resolve"
	"github.com/techmac/taskimport/internal/workbook"
	"github.com/techmac/taskimport/pkg/logger"
)

// Importer runs the import pipeline. It holds no mutable state between
// calls: every Import allocates a fresh header map and diagnostics list,
// so concurrent imports of different files are independent.
type Importer struct {
	vocab   *normalize.Vocabulary
	builder *record.Builder
	clock   func() time.Time
	log     logger.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithVocabulary replaces the built-in FR/EN synonym tables, typically
// with tables extended from a vocabulary file.
func WithVocabulary(v *normalize.Vocabulary) Option {
	return func(imp *Importer) { imp.vocab = v }
}

// WithLogger attaches a logger. Row anomalies stay diagnostics either way;
// the logger only narrates.
func WithLogger(log logger.Logger) Option {
	return func(imp *Importer) { imp.log = log }
}

// WithClock overrides the processing-time source used for date fallbacks,
// century anchoring, and record timestamps.
func WithClock(fn func() time.Time) Option {
	return func(imp *Importer) {
		imp.clock = fn
		imp.builder = record.NewBuilder(record.WithClock(fn))
	}
}

// WithBuilder overrides the record builder, mainly to inject deterministic
// identifiers in tests.
func WithBuilder(b *record.Builder) Option {
	return func(imp *Importer) { imp.builder = b }
}

// NewImporter creates an Importer with the default vocabulary, a UTC wall
// clock, and no logging.
func NewImporter(opts ...Option) *Importer {
	imp := &Importer{
		vocab:   normalize.DefaultVocabulary(),
		builder: record.NewBuilder(),
		clock:   func() time.Time { return time.Now().UTC() },
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ValidateStructure is the cheap pre-flight check: it opens the container
// and resolves the header row, without touching any data row. Malformed
// content never raises; only an unreadable container returns an error.
func (imp *Importer) ValidateStructure(data []byte) (domain.StructureReport, error) {
	grid, err := workbook.ReadGrid(data)
	if err != nil {
		return domain.StructureReport{}, err
	}

	_, err = resolve.Headers(grid[0])
	var missing *domain.MissingColumnsError
	if errors.As(err, &missing) {
		return domain.StructureReport{Valid: false, MissingHeaders: missing.Columns}, nil
	}
	if err != nil {
		return domain.StructureReport{}, err
	}

	return domain.StructureReport{Valid: true}, nil
}

// Import runs the full pipeline on a workbook. It fails only on structural
// problems (corrupt container, empty workbook, missing required columns);
// every row-level anomaly is recorded as a diagnostic and the rest of the
// rows still go through. Rows are processed strictly top to bottom.
func (imp *Importer) Import(data []byte) (domain.Result, error) {
	grid, err := workbook.ReadGrid(data)
	if err != nil {
		return domain.Result{}, err
	}

	headers, err := resolve.Headers(grid[0])
	if err != nil {
		return domain.Result{}, err
	}

	ref := imp.clock()
	result := domain.Result{}

	for rowIndex := 1; rowIndex < len(grid); rowIndex++ {
		row := grid[rowIndex]
		result.Stats.Rows++

		if rowIsEmpty(row) {
			result.Stats.Skipped++
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				RowIndex: rowIndex, Outcome: domain.RowSkippedEmpty,
			})
			continue
		}

		fields, warnings := normalize.Row(row, headers, imp.vocab, ref)

		rec, rejection := imp.builder.Build(fields)
		switch {
		case rejection == nil:
			result.Records = append(result.Records, rec)
			result.Stats.Imported++
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				RowIndex: rowIndex, Outcome: domain.RowAccepted,
			})
		case rejection.Blank:
			result.Stats.Skipped++
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				RowIndex: rowIndex, Outcome: domain.RowSkippedEmpty,
			})
			continue
		default:
			result.Stats.Skipped++
			detail := strings.Join(rejection.MissingFields, ", ")
			imp.log.Warn("row rejected", "row", rowIndex, "missing", detail)
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				RowIndex: rowIndex,
				Outcome:  domain.RowSkippedMissingRequiredField,
				Detail:   detail,
			})
		}

		for _, w := range warnings {
			result.Stats.Warnings++
			result.Diagnostics = append(result.Diagnostics, domain.Diagnostic{
				RowIndex: rowIndex, Outcome: w.Outcome, Detail: w.Detail,
			})
		}
	}

	imp.log.Info("import finished",
		"rows", result.Stats.Rows,
		"imported", result.Stats.Imported,
		"skipped", result.Stats.Skipped,
		"warnings", result.Stats.Warnings,
	)

	return result, nil
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if normalize.Clean(cell) != "" {
			return false
		}
	}
	return true
}
