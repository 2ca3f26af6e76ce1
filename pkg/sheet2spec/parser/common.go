package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
	"github.com/tiendc/go-deepcopy"
)

// CommonErrorCode is one shared error response collected from a common
// sheet.
type CommonErrorCode struct {
	Code        string
	Description string
	Schema      models.SchemaNode
}

// CommonRegistry aggregates shared defaults for one conversion. A registry
// must be constructed fresh per invocation and never shared between
// concurrent conversions.
type CommonRegistry struct {
	errorCodes []CommonErrorCode
}

// NewCommonRegistry returns an empty per-invocation registry.
func NewCommonRegistry() *CommonRegistry {
	return &CommonRegistry{}
}

// ErrorCodes exposes the collected entries.
func (r *CommonRegistry) ErrorCodes() []CommonErrorCode {
	return r.errorCodes
}

var errorHeaderKeywords = []string{"error", "status", "code"}

// errorCodeRe matches a 4xx/5xx status code token.
var errorCodeRe = regexp.MustCompile(`\b[45]\d\d\b`)

// Collect inspects a common sheet and records shared error codes when the
// header row looks error-related. Other common-sheet kinds (shared bodies)
// are reserved and currently ignored.
func (r *CommonRegistry) Collect(sheet models.Sheet) {
	if len(sheet.Rows) < 2 {
		return
	}
	if !hasErrorHeaders(sheet.Rows[0]) {
		return
	}
	for _, row := range sheet.Rows[1:] {
		code, desc := "", ""
		for _, cell := range row {
			text := strings.TrimSpace(models.CellText(cell))
			if text == "" {
				continue
			}
			if code == "" {
				if m := errorCodeRe.FindString(text); m != "" {
					code = m
					continue
				}
			}
			if desc == "" {
				desc = text
			}
		}
		if code == "" {
			continue
		}
		if desc == "" {
			desc = describeStatus(code)
		}
		r.errorCodes = append(r.errorCodes, CommonErrorCode{
			Code:        code,
			Description: desc,
			Schema:      defaultErrorSchema(),
		})
	}
}

func hasErrorHeaders(headers models.Row) bool {
	var parts []string
	for _, cell := range headers {
		parts = append(parts, strings.ToLower(models.CellText(cell)))
	}
	joined := strings.Join(parts, " ")
	for _, kw := range errorHeaderKeywords {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

// defaultErrorCodes is the built-in set installed when no common sheet
// supplied any.
var defaultErrorCodes = []string{"400", "401", "404", "500"}

// defaultErrorSchema is the generic error body attached to shared error
// responses.
func defaultErrorSchema() models.SchemaNode {
	return &models.Object{Properties: []models.Property{
		{Name: "error", Schema: &models.Scalar{Kind: models.KindString}},
		{Name: "message", Schema: &models.Scalar{Kind: models.KindString}},
	}}
}

// Apply inserts the collected (or built-in default) error responses into
// every operation that does not already define the status code. An
// operation's own definition always wins. Each operation receives its own
// copy of the shared schema so no two operations alias one schema tree.
func (r *CommonRegistry) Apply(spec *models.Spec) error {
	codes := r.errorCodes
	if len(codes) == 0 {
		for _, c := range defaultErrorCodes {
			codes = append(codes, CommonErrorCode{
				Code:        c,
				Description: describeStatus(c),
				Schema:      defaultErrorSchema(),
			})
		}
	}

	if spec.Components.Responses == nil {
		spec.Components.Responses = make(map[string]models.Response, len(codes))
	}
	for _, ec := range codes {
		spec.Components.Responses[ec.Code] = models.Response{
			Description: ec.Description,
			Content:     map[string]models.MediaType{"application/json": {Schema: ec.Schema}},
		}
	}

	for _, item := range spec.Paths {
		for _, op := range item {
			for _, ec := range codes {
				if _, exists := op.Responses[ec.Code]; exists {
					continue
				}
				schema, err := cloneSchema(ec.Schema)
				if err != nil {
					return fmt.Errorf("copy shared schema for %s: %w", ec.Code, err)
				}
				op.Responses[ec.Code] = models.Response{
					Description: ec.Description,
					Content:     map[string]models.MediaType{"application/json": {Schema: schema}},
				}
			}
		}
	}
	return nil
}

// cloneSchema deep-copies a schema node by its concrete type.
func cloneSchema(n models.SchemaNode) (models.SchemaNode, error) {
	switch v := n.(type) {
	case *models.Object:
		dst := &models.Object{}
		if err := deepcopy.Copy(dst, v); err != nil {
			return nil, err
		}
		return dst, nil
	case *models.Array:
		dst := &models.Array{}
		if err := deepcopy.Copy(dst, v); err != nil {
			return nil, err
		}
		return dst, nil
	case *models.Scalar:
		cp := *v
		return &cp, nil
	default:
		return n, nil
	}
}
