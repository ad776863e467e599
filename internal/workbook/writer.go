package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/techmac/taskimport/internal/domain"
)

const exportSheet = "Tasks"

// exportHeaders is the canonical column layout, matching what the import
// side resolves.
var exportHeaders = []string{
	"Date", "PO", "Catégorie", "Action", "Customer", "Requester",
	"Responsible", "Dead line", "Status", "Note",
	"Installation", "Réparation", "Développement", "Livraison",
}

const exportDateLayout = "02/01/2006"

// Export renders task records back into a workbook using the canonical
// column layout, so an exported file can be re-imported as-is.
func Export(records []domain.TaskRecord) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	if err := writeHeaderRow(file, exportSheet, exportHeaders); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := []interface{}{
			rec.DateCreated.Format(exportDateLayout),
			rec.PONumber,
			string(rec.Category),
			rec.ActionDescription,
			rec.Customer,
			rec.Requester,
			rec.Responsible,
			formatDeadline(rec.Deadline),
			string(rec.Status),
			rec.Notes,
			flagMark(rec.InstallationFlag),
			flagMark(rec.RepairFlag),
			flagMark(rec.DevelopmentFlag),
			flagMark(rec.DeliveryFlag),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := file.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(file *excelize.File, sheet string, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := file.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	style, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1976D2"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("addressing header row: %w", err)
	}
	if err := file.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("naming last column: %w", err)
	}
	if err := file.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}

func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return ""
	}
	return deadline.Format(exportDateLayout)
}

func flagMark(set bool) string {
	if set {
		return "X"
	}
	return ""
}
