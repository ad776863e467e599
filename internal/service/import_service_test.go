package service_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/record"
	"github.com/techmac/taskimport/internal/service"
)

var testHeaders = []interface{}{
	"Date", "PO", "Catégorie", "Action ", "Customer", "Requester",
	"Techmac Resp", "Dead line ", "Status", "Note",
	"Installation/F", "Réparation", "Développement", "Livraison ",
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("addressing row: %v", err)
		}
		r := row
		if err := file.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("writing row: %v", err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}
	return buf.Bytes()
}

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func deterministicImporter() *service.Importer {
	n := 0
	builder := record.NewBuilder(
		record.WithIDFunc(func() string { n++; return fmt.Sprintf("task-%d", n) }),
		record.WithClock(fixedClock),
	)
	return service.NewImporter(
		service.WithClock(fixedClock),
		service.WithBuilder(builder),
	)
}

func TestImport_MixedRows(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		testHeaders,
		// Clean row
		{"15/03/24", "202400042", "repair", "Replace spindle", "Client ABC",
			"Manager", "Hassan", "20/03/24", "done", "call first", "", "x", "", ""},
		// Missing responsible
		{"16/03/24", "", "", "Install press", "Client XYZ", "Boss", "",
			"", "", "", "x", "", "", ""},
		// Unknown status defaults to Pending without a warning
		{"17/03/24", "", "dev", "Patch firmware", "Client ABC", "Boss", "Amine",
			"", "N/A", "", "", "", "", ""},
		// Blank trailing row (a stray space keeps the row in the sheet)
		{" ", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	})

	result, err := deterministicImporter().Import(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result.Records))
	}

	first := result.Records[0]
	if first.ActionDescription != "Replace spindle" || first.Status != domain.StatusDone {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if first.DateCreated.Year() != 2024 || first.DateCreated.Month() != time.March || first.DateCreated.Day() != 15 {
		t.Errorf("Unexpected creation date: %v", first.DateCreated)
	}
	if first.Deadline == nil || first.Deadline.Day() != 20 {
		t.Errorf("Unexpected deadline: %v", first.Deadline)
	}
	if !first.RepairFlag || first.Category != domain.CategoryRepair {
		t.Errorf("Unexpected flags/category: %+v", first)
	}

	second := result.Records[1]
	if second.Status != domain.StatusPending {
		t.Errorf("Expected unknown status to default to Pending, got %s", second.Status)
	}
	if second.Category != domain.CategoryDevelopment {
		t.Errorf("Expected dev category, got %s", second.Category)
	}

	wantOutcomes := []struct {
		row     int
		outcome domain.RowOutcome
	}{
		{1, domain.RowAccepted},
		{2, domain.RowSkippedMissingRequiredField},
		{3, domain.RowAccepted},
		{4, domain.RowSkippedEmpty},
	}
	if len(result.Diagnostics) != len(wantOutcomes) {
		t.Fatalf("Expected %d diagnostics, got %v", len(wantOutcomes), result.Diagnostics)
	}
	for i, want := range wantOutcomes {
		d := result.Diagnostics[i]
		if d.RowIndex != want.row || d.Outcome != want.outcome {
			t.Errorf("Diagnostic %d: expected row %d %s, got row %d %s",
				i, want.row, want.outcome, d.RowIndex, d.Outcome)
		}
	}

	if result.Diagnostics[1].Detail != "responsible" {
		t.Errorf("Expected missing-field detail 'responsible', got %q", result.Diagnostics[1].Detail)
	}

	wantStats := domain.Stats{Rows: 4, Imported: 2, Skipped: 2, Warnings: 0}
	if result.Stats != wantStats {
		t.Errorf("Expected stats %+v, got %+v", wantStats, result.Stats)
	}
}

func TestImport_NativeDateCell(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	header := testHeaders
	if err := file.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("writing header: %v", err)
	}
	// A date-typed cell is stored as a workbook serial number
	if err := file.SetCellValue("Sheet1", "A2", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("writing date cell: %v", err)
	}
	rest := []interface{}{"", "", "Fix it", "Client", "Boss", "Amine"}
	if err := file.SetSheetRow("Sheet1", "B2", &rest); err != nil {
		t.Fatalf("writing row: %v", err)
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}

	result, err := deterministicImporter().Import(buf.Bytes())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(result.Records))
	}

	got := result.Records[0].DateCreated
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("Expected serial date 2024-03-15, got %v", got)
	}
}

func TestImport_DateWarningStillImportsRow(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		testHeaders,
		{"someday", "", "", "Fix it", "Client", "Boss", "Amine",
			"", "", "", "", "", "", ""},
	})

	result, err := deterministicImporter().Import(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(result.Records))
	}
	if !result.Records[0].DateCreated.Equal(fixedClock()) {
		t.Errorf("Expected fallback creation date, got %v", result.Records[0].DateCreated)
	}

	var sawWarning bool
	for _, d := range result.Diagnostics {
		if d.Outcome == domain.RowWarningDateUnparsed && d.RowIndex == 1 {
			sawWarning = true
		}
	}
	if !sawWarning {
		t.Errorf("Expected a date warning diagnostic, got %v", result.Diagnostics)
	}
	if result.Stats.Warnings != 1 {
		t.Errorf("Expected 1 warning in stats, got %d", result.Stats.Warnings)
	}
}

func TestImport_MissingRequiredColumnAborts(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Date", "Action", "Requester", "Techmac Resp"},
		{"15/03/24", "Fix it", "Boss", "Amine"},
	})

	_, err := deterministicImporter().Import(data)
	if err == nil {
		t.Fatal("Expected structural error")
	}

	var missing *domain.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingColumnsError, got %T: %v", err, err)
	}
	if len(missing.Columns) != 1 || missing.Columns[0] != "customer" {
		t.Errorf("Expected [customer], got %v", missing.Columns)
	}
}

func TestValidateStructure(t *testing.T) {
	valid := buildWorkbook(t, [][]interface{}{testHeaders})

	structure, err := deterministicImporter().ValidateStructure(valid)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !structure.Valid || len(structure.MissingHeaders) != 0 {
		t.Errorf("Expected valid structure, got %+v", structure)
	}

	invalid := buildWorkbook(t, [][]interface{}{
		{"Date", "Action", "Requester", "Techmac Resp"},
	})

	structure, err = deterministicImporter().ValidateStructure(invalid)
	if err != nil {
		t.Fatalf("Missing columns must not raise in pre-flight, got %v", err)
	}
	if structure.Valid {
		t.Error("Expected invalid structure")
	}
	if len(structure.MissingHeaders) != 1 || structure.MissingHeaders[0] != "customer" {
		t.Errorf("Expected [customer], got %v", structure.MissingHeaders)
	}
}

func TestValidateStructure_CorruptContainer(t *testing.T) {
	_, err := deterministicImporter().ValidateStructure([]byte("junk"))
	if !errors.Is(err, domain.ErrCorruptWorkbook) {
		t.Errorf("Expected ErrCorruptWorkbook, got %v", err)
	}
}

func TestImport_Idempotence(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		testHeaders,
		{"15/03/24", "202400042", "repair", "Replace spindle", "Client ABC",
			"Manager", "Hassan", "", "done", "", "", "x", "", ""},
		{"16/03/24", "", "", "Install press", "Client XYZ", "Boss", "Amine",
			"", "", "", "x", "", "", ""},
	})

	first, err := deterministicImporter().Import(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := deterministicImporter().Import(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected byte-identical imports to produce identical results")
	}
}
