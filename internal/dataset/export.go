package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteCSV writes records as comma-separated text: one header row of
// canonical column names, then one row per record in the same column order.
// Absent numeric values become empty cells, so the output round-trips
// through Load.
func WriteCSV(w io.Writer, columns []Field, records []Record) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header()
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = r.Cell(c)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes records as a single-sheet Excel workbook with the same
// layout as WriteCSV. Numeric cells are written as numbers; absent values
// are left blank.
func WriteXLSX(w io.Writer, sheet string, columns []Field, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c.Header()
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, r := range records {
		row := make([]interface{}, len(columns))
		for i, c := range columns {
			if c.Numeric() {
				if v := r.Number(c); v.Valid {
					row[i] = v.Value
				} else {
					row[i] = nil
				}
			} else {
				row[i] = r.Text(c)
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
