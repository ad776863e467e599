// Package workbook reads and writes the zip-based spreadsheet container.
// Reading yields the first worksheet as a raw string grid; everything
// smarter than that lives in the resolve and normalize packages.
package workbook

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/techmac/taskimport/internal/domain"
)

// ReadGrid extracts the first worksheet of the workbook as a rectangular
// grid of raw cell values. Raw values keep date cells as their serial
// numbers, which the normalizer knows how to interpret. Fails with
// domain.ErrCorruptWorkbook when the container cannot be parsed and
// domain.ErrEmptyWorkbook when there is no worksheet or no rows.
func ReadGrid(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptWorkbook, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", domain.ErrCorruptWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}

	return rows, nil
}
