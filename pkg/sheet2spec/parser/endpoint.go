package parser

import (
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

// Endpoint binds one path and method to its parsed operation. Method is the
// lowercase form used as the paths-map key.
type Endpoint struct {
	Path      string
	Method    string
	Operation *models.Operation
}

// BearerRequirementName is the security-requirement key attached to
// operations whose auth column is affirmative.
const BearerRequirementName = "bearerAuth"

var supportedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

var bodyMethods = map[string]bool{"POST": true, "PUT": true, "PATCH": true}

var affirmative = map[string]bool{"yes": true, "true": true, "required": true, "y": true}

// ParseEndpointRow converts one sheet row into an endpoint. The second
// return is false when the row carries no usable path (empty or the literal
// "none") and must be skipped. Paths are normalized to a leading slash and
// unknown methods fall back to GET.
func ParseEndpointRow(row models.Row, cols ColumnMap, defaultTag string) (*Endpoint, bool) {
	path := strings.TrimSpace(cellAt(row, cols, FieldPath))
	if path == "" || strings.EqualFold(path, "none") {
		return nil, false
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	method := strings.ToUpper(strings.TrimSpace(cellAt(row, cols, FieldMethod)))
	if !supportedMethods[method] {
		method = "GET"
	}

	op := &models.Operation{
		Tags:      rowTags(cellAt(row, cols, FieldTags), defaultTag),
		Responses: BuildResponses(cellAt(row, cols, FieldResponse), cellAt(row, cols, FieldStatusCodes), cellAt(row, cols, FieldResponseExample)),
	}

	if desc := strings.TrimSpace(cellAt(row, cols, FieldDescription)); desc != "" {
		op.Summary = firstLine(desc)
		op.Description = desc
	}

	op.Parameters = ExtractParameters(path, cellAt(row, cols, FieldRequestParams))

	if bodyMethods[method] {
		if body := strings.TrimSpace(cellAt(row, cols, FieldRequestBody)); body != "" {
			op.RequestBody = &models.RequestBody{
				Required: true,
				Content: map[string]models.MediaType{
					"application/json": {Schema: InferFromText(body)},
				},
			}
		}
	}

	if affirmative[strings.ToLower(strings.TrimSpace(cellAt(row, cols, FieldAuth)))] {
		op.Security = []map[string][]string{{BearerRequirementName: {}}}
	}

	return &Endpoint{Path: path, Method: strings.ToLower(method), Operation: op}, true
}

// rowTags splits the tags column, falling back to the sheet's default tag.
func rowTags(text, defaultTag string) []string {
	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 && defaultTag != "" {
		return []string{defaultTag}
	}
	return tags
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
