package service

import (
	"fmt"

	"hotel/internal/manager"

	"github.com/xuri/excelize/v2"
)

const (
	maxSheetName   = 31
	columnWidth    = 22
	headerFill     = "#DDEBF7"
	defaultSheet   = "Sheet1"
	firstDataRow   = 2
	headerRowIndex = 1
)

func sheetName(table manager.Table) string {
	name := table.Title
	if name == "" {
		name = table.Collection
	}

	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}

	return name
}

// renderWorkbook writes the table into a single sheet: one bold header row,
// then one row per record.
func renderWorkbook(table manager.Table) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := sheetName(table)

	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	file.SetActiveSheet(index)

	if sheet != defaultSheet {
		if err = file.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	header := make([]any, len(table.Headers))
	for idx, column := range table.Headers {
		header[idx] = column.Title
	}

	if err = writeRow(file, sheet, headerRowIndex, header); err != nil {
		return nil, err
	}

	for offset, row := range table.Rows {
		cells := make([]any, len(row))
		for idx, cell := range row {
			cells[idx] = cell
		}

		if err = writeRow(file, sheet, firstDataRow+offset, cells); err != nil {
			return nil, err
		}
	}

	if len(table.Headers) > 0 {
		if err = styleHeader(file, sheet, len(table.Headers)); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func writeRow(file *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	if err = file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return nil
}

func styleHeader(file *excelize.File, sheet string, columns int) error {
	last, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return fmt.Errorf("failed to resolve column: %w", err)
	}

	style, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err = file.SetCellStyle(sheet, "A1", last+"1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err = file.SetColWidth(sheet, "A", last, columnWidth); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	return nil
}
