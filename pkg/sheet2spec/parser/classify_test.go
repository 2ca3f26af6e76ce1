package parser

import (
	"testing"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

func TestClassifySheetByName(t *testing.T) {
	tests := []struct {
		name string
		want SheetRole
	}{
		{"Common", RoleCommon},
		{"shared errors", RoleCommon},
		{"Global Defaults", RoleCommon},
		{"Overview", RoleOverview},
		{"API Info", RoleOverview},
		{"About", RoleOverview},
		{"Users", RoleEndpoints},
		{"Sheet1", RoleEndpoints},
	}
	for _, tt := range tests {
		got := ClassifySheet(models.Sheet{Name: tt.name})
		if got != tt.want {
			t.Errorf("ClassifySheet(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassifySheetByMetadataRows(t *testing.T) {
	sheet := models.Sheet{
		Name: "Sheet2",
		Rows: []models.Row{
			{"Title", "Payments API"},
			{"Version", "2.1.0"},
			{"Base URL", "https://api.example.com"},
		},
	}
	if got := ClassifySheet(sheet); got != RoleOverview {
		t.Errorf("ClassifySheet = %s, want overview", got)
	}
}

// A single metadata-looking row is not enough to reclassify a sheet.
func TestClassifySheetSingleMetadataRowStaysEndpoints(t *testing.T) {
	sheet := models.Sheet{
		Name: "Sheet3",
		Rows: []models.Row{
			{"Title", "Payments API"},
			{"/payments", "GET"},
		},
	}
	if got := ClassifySheet(sheet); got != RoleEndpoints {
		t.Errorf("ClassifySheet = %s, want endpoints", got)
	}
}

func TestClassifySheetMetadataScanStopsAtTenRows(t *testing.T) {
	sheet := models.Sheet{Name: "Sheet4"}
	for i := 0; i < 10; i++ {
		sheet.Rows = append(sheet.Rows, models.Row{"note", "text"})
	}
	// Metadata pairs beyond the scan window must not count.
	sheet.Rows = append(sheet.Rows,
		models.Row{"Title", "Hidden API"},
		models.Row{"Version", "9.9"},
	)
	if got := ClassifySheet(sheet); got != RoleEndpoints {
		t.Errorf("ClassifySheet = %s, want endpoints", got)
	}
}
