// Package parser turns a workbook into an API specification: sheet
// classification, column mapping, parameter extraction, schema inference,
// and final assembly.
package parser

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads every sheet of an xlsx file into an ordered in-memory
// Workbook. Sheets whose rows cannot be read are kept with no rows so that
// classification can still account for them.
func LoadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		sheet := models.Sheet{Name: sheetName}
		rows, err := f.GetRows(sheetName)
		if err != nil {
			wb.Sheets = append(wb.Sheets, sheet)
			continue
		}
		for _, row := range rows {
			cells := make(models.Row, len(row))
			for i, v := range row {
				cells[i] = parseCell(v)
			}
			sheet.Rows = append(sheet.Rows, cells)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// parseCell narrows a raw cell string to int64, float64, bool, or string.
// Empty cells become nil.
func parseCell(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
