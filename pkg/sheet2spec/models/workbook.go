// Package models defines the data structures used by workbook parsing and
// the assembled API specification.
package models

import (
	"fmt"
	"strconv"
)

// Cell is a single primitive cell value: string, int64, float64, bool, or nil
// for an empty cell.
type Cell interface{}

// Row is an ordered sequence of cell values.
type Row []Cell

// Sheet is a named, ordered grid of rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is an ordered collection of sheets. It exists only for the
// duration of one conversion and is discarded afterwards.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	Sheets   []Sheet
}

// CellText renders a cell as text. Numbers use their canonical decimal form.
func CellText(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
