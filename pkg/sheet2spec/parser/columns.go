package parser

import (
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

// Field identifies a canonical column role in an endpoints sheet.
type Field string

const (
	FieldPath            Field = "path"
	FieldMethod          Field = "method"
	FieldDescription     Field = "description"
	FieldRequestBody     Field = "request_body"
	FieldRequestParams   Field = "request_params"
	FieldResponse        Field = "response"
	FieldResponseExample Field = "response_example"
	FieldStatusCodes     Field = "status_codes"
	FieldAuth            Field = "auth"
	FieldTags            Field = "tags"
)

// ColumnMap maps canonical fields to zero-based column indexes. It is built
// once per endpoints sheet and discarded with it.
type ColumnMap map[Field]int

// columnRule binds a canonical field to the header keywords that select it.
// Rules are evaluated in order for every header, so more specific fields
// must precede the ones their keywords would otherwise shadow:
// response_example before response, request_params before request_body
// ("Request Params" must not be claimed by the bare "request" keyword).
type columnRule struct {
	field    Field
	keywords []string
}

var columnRules = []columnRule{
	{FieldPath, []string{"endpoint", "path", "url", "route", "resource", "uri"}},
	{FieldMethod, []string{"method", "http", "verb"}},
	{FieldResponseExample, []string{"response example", "example response", "sample response"}},
	{FieldResponse, []string{"response", "result", "output", "returns"}},
	{FieldRequestParams, []string{"parameter", "param", "query"}},
	{FieldRequestBody, []string{"request body", "payload", "body", "request"}},
	{FieldStatusCodes, []string{"status", "code"}},
	{FieldDescription, []string{"description", "summary", "desc", "detail"}},
	{FieldAuth, []string{"auth", "security", "permission"}},
	{FieldTags, []string{"tag", "category", "group", "module"}},
}

// reassignable fields may be claimed again by a later matching header.
// All other fields keep their first match.
var reassignable = map[Field]bool{
	FieldMethod: true,
	FieldTags:   true,
	FieldAuth:   true,
}

// BuildColumnMap maps a header row onto canonical fields. Each header claims
// at most one field and each field keeps its first matching header, except
// the reassignable fields. The second return is false when no header maps to
// the path field, which makes the sheet unusable.
func BuildColumnMap(headers models.Row) (ColumnMap, bool) {
	cols := make(ColumnMap)
	for idx, cell := range headers {
		header := strings.ToLower(strings.TrimSpace(models.CellText(cell)))
		if header == "" {
			continue
		}
		for _, rule := range columnRules {
			if !matchesAny(header, rule.keywords) {
				continue
			}
			if _, taken := cols[rule.field]; taken && !reassignable[rule.field] {
				continue
			}
			cols[rule.field] = idx
			break
		}
	}
	if _, ok := cols[FieldPath]; !ok {
		return nil, false
	}
	// A sheet carrying only an example column still describes its success
	// bodies; let that column serve the response field too.
	if _, ok := cols[FieldResponse]; !ok {
		if idx, ok := cols[FieldResponseExample]; ok {
			cols[FieldResponse] = idx
		}
	}
	return cols, true
}

func matchesAny(header string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// cellAt reads the text of the mapped column in a row, or "" when the field
// is unmapped or the row is short.
func cellAt(row models.Row, cols ColumnMap, field Field) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return models.CellText(row[idx])
}
