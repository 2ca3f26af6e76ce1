package parser

import (
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

// SheetRole identifies how a sheet contributes to the specification.
type SheetRole int

const (
	// RoleEndpoints marks a sheet holding endpoint rows. It is the default:
	// an unrecognized sheet is always assumed to contain endpoints.
	RoleEndpoints SheetRole = iota
	// RoleCommon marks a sheet supplying shared defaults.
	RoleCommon
	// RoleOverview marks a sheet holding API metadata key/value rows.
	RoleOverview
)

func (r SheetRole) String() string {
	switch r {
	case RoleCommon:
		return "common"
	case RoleOverview:
		return "overview"
	default:
		return "endpoints"
	}
}

var commonNameKeywords = []string{"common", "shared", "global", "default"}

var overviewNameKeywords = []string{"overview", "info", "meta", "about", "general"}

// overviewKeyKeywords match key cells of metadata key/value rows.
var overviewKeyKeywords = []string{"title", "version", "url", "base", "server", "auth"}

// metadataScanRows limits the key/value scan to the top of the sheet.
const metadataScanRows = 10

// ClassifySheet assigns a role to a sheet. Common keywords in the name win
// over overview keywords; a sheet with neither is checked for metadata
// key/value pairs in its first rows before falling back to endpoints.
func ClassifySheet(sheet models.Sheet) SheetRole {
	name := strings.ToLower(sheet.Name)
	for _, kw := range commonNameKeywords {
		if strings.Contains(name, kw) {
			return RoleCommon
		}
	}
	for _, kw := range overviewNameKeywords {
		if strings.Contains(name, kw) {
			return RoleOverview
		}
	}
	if countMetadataPairs(sheet) >= 2 {
		return RoleOverview
	}
	return RoleEndpoints
}

// countMetadataPairs counts key/value rows within the first metadataScanRows
// rows whose key text contains an overview keyword and whose value is
// non-empty.
func countMetadataPairs(sheet models.Sheet) int {
	n := 0
	for i, row := range sheet.Rows {
		if i >= metadataScanRows {
			break
		}
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(models.CellText(row[0])))
		value := strings.TrimSpace(models.CellText(row[1]))
		if key == "" || value == "" {
			continue
		}
		for _, kw := range overviewKeyKeywords {
			if strings.Contains(key, kw) {
				n++
				break
			}
		}
	}
	return n
}
