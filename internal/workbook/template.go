package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var templateSamples = [][]interface{}{
	{"01/01/2024", "202400001", "Installation", "Setup new equipment", "Client ABC",
		"Manager", "Amine", "15/01/2024", "InProgress", "Priority task", "X", "", "", ""},
	{"02/01/2024", "202400002", "Repair", "Fix TDR701 machine", "Client XYZ",
		"Technician", "Hassan", "10/01/2024", "Done", "Completed on time", "", "X", "", ""},
}

var templateInstructions = []string{
	"How to fill in the task sheet:",
	"",
	"1. Date: DD/MM/YYYY (e.g. 01/01/2024)",
	"2. PO: purchase order number (optional)",
	"3. Catégorie: Installation, Repair, Development, Delivery, Commercial",
	"4. Action: task description (required)",
	"5. Customer: customer name (required)",
	"6. Requester: who asked for the task (required)",
	"7. Responsible: who owns the task (required)",
	"8. Dead line: due date, DD/MM/YYYY",
	"9. Status: Pending, InProgress, Done, Cancelled, OnHold",
	"10. Note: free-text comments",
	"11. Flag columns: mark with 'X' where applicable",
	"",
	"Action, Customer, Requester and Responsible are required on every row.",
}

// Template produces a blank entry workbook with the canonical headers, two
// sample rows, and an instructions sheet for operators maintaining the
// source file by hand.
func Template() ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	if err := writeHeaderRow(file, exportSheet, exportHeaders); err != nil {
		return nil, err
	}

	for i, sample := range templateSamples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("addressing sample row %d: %w", i+2, err)
		}
		row := sample
		if err := file.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing sample row %d: %w", i+2, err)
		}
	}

	if _, err := file.NewSheet("Instructions"); err != nil {
		return nil, fmt.Errorf("creating instructions sheet: %w", err)
	}
	for i, line := range templateInstructions {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("addressing instruction %d: %w", i+1, err)
		}
		if err := file.SetCellValue("Instructions", cell, line); err != nil {
			return nil, fmt.Errorf("writing instruction %d: %w", i+1, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing template: %w", err)
	}
	return buf.Bytes(), nil
}
