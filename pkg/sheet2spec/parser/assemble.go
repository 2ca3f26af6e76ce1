package parser

import (
	"fmt"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DiagnosticKind classifies a recoverable parse issue.
type DiagnosticKind string

const (
	// DiagSheetSkipped records a sheet with no recognizable path column.
	DiagSheetSkipped DiagnosticKind = "sheet_skipped"
	// DiagRowSkipped records a row with no usable path.
	DiagRowSkipped DiagnosticKind = "row_skipped"
	// DiagDuplicateOperation records a path+method defined by more than one
	// row; the later definition wins.
	DiagDuplicateOperation DiagnosticKind = "duplicate_operation"
)

// Diagnostic is one recoverable issue absorbed during parsing. Row is
// 1-based and zero when the issue is sheet-scoped.
type Diagnostic struct {
	Kind   DiagnosticKind
	Sheet  string
	Row    int
	Detail string
}

func (d Diagnostic) String() string {
	if d.Row > 0 {
		return fmt.Sprintf("%s: sheet %q row %d: %s", d.Kind, d.Sheet, d.Row, d.Detail)
	}
	return fmt.Sprintf("%s: sheet %q: %s", d.Kind, d.Sheet, d.Detail)
}

// AssemblerConfig carries the defaults the assembler falls back to.
type AssemblerConfig struct {
	OpenAPIVersion   string
	DefaultTitle     string
	DefaultVersion   string
	DefaultServerURL string
}

// Assembler accumulates the specification across sheets. One assembler
// serves exactly one conversion; it must not be reused or shared.
type Assembler struct {
	cfg           AssemblerConfig
	spec          *models.Spec
	endpointCount int
	seenTags      map[string]bool
}

// NewAssembler returns a fresh assembler with an empty specification.
func NewAssembler(cfg AssemblerConfig) *Assembler {
	return &Assembler{
		cfg: cfg,
		spec: &models.Spec{
			OpenAPI: cfg.OpenAPIVersion,
			Paths:   map[string]models.PathItem{},
			Components: models.Components{
				SecuritySchemes: map[string]models.SecurityScheme{},
			},
		},
		seenTags: map[string]bool{},
	}
}

// EndpointCount reports the number of distinct path+method pairs registered.
func (a *Assembler) EndpointCount() int {
	return a.endpointCount
}

// SetInfo consumes an overview sheet's key/value rows: info fields, server
// entries, and the declared security scheme.
func (a *Assembler) SetInfo(sheet models.Sheet) {
	for _, row := range sheet.Rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(models.CellText(row[0])))
		value := strings.TrimSpace(models.CellText(row[1]))
		if key == "" || value == "" {
			continue
		}
		switch {
		case strings.Contains(key, "title"):
			a.spec.Info.Title = value
		case strings.Contains(key, "version"):
			a.spec.Info.Version = value
		case strings.Contains(key, "description") || strings.Contains(key, "summary") || strings.Contains(key, "about"):
			a.spec.Info.Description = value
		case strings.Contains(key, "url") || strings.Contains(key, "server") || strings.Contains(key, "host") || strings.Contains(key, "base"):
			a.spec.Servers = append(a.spec.Servers, models.Server{URL: value})
		case strings.Contains(key, "auth") || strings.Contains(key, "security"):
			a.setSecurityScheme(value)
		}
	}
}

// setSecurityScheme installs the single declared scheme, replacing any
// earlier declaration.
func (a *Assembler) setSecurityScheme(value string) {
	v := strings.ToLower(value)
	schemes := map[string]models.SecurityScheme{}
	switch {
	case strings.Contains(v, "bearer") || strings.Contains(v, "jwt"):
		schemes[BearerRequirementName] = models.SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"}
	case strings.Contains(v, "api key") || strings.Contains(v, "apikey") || strings.Contains(v, "api-key"):
		schemes["apiKeyAuth"] = models.SecurityScheme{Type: "apiKey", In: "header", Name: "X-API-Key"}
	case strings.Contains(v, "oauth"):
		schemes["oauth2"] = models.SecurityScheme{
			Type: "oauth2",
			Flows: &models.OAuthFlows{ClientCredentials: &models.OAuthFlow{
				TokenURL: "https://example.com/oauth/token",
				Scopes:   map[string]string{},
			}},
		}
	default:
		return
	}
	a.spec.Components.SecuritySchemes = schemes
}

// MergeSheet parses an endpoints sheet and merges its operations into the
// running specification. All recoverable issues come back as diagnostics.
func (a *Assembler) MergeSheet(sheet models.Sheet) []Diagnostic {
	var diags []Diagnostic
	if len(sheet.Rows) == 0 {
		return append(diags, Diagnostic{Kind: DiagSheetSkipped, Sheet: sheet.Name, Detail: "sheet is empty"})
	}
	cols, ok := BuildColumnMap(sheet.Rows[0])
	if !ok {
		return append(diags, Diagnostic{Kind: DiagSheetSkipped, Sheet: sheet.Name, Row: 1, Detail: "no recognizable path column"})
	}

	tag := HumanizeSheetName(sheet.Name)
	a.registerTag(tag)

	for i, row := range sheet.Rows[1:] {
		rowNum := i + 2
		ep, ok := ParseEndpointRow(row, cols, tag)
		if !ok {
			diags = append(diags, Diagnostic{Kind: DiagRowSkipped, Sheet: sheet.Name, Row: rowNum, Detail: "empty or disabled path"})
			continue
		}
		if d, dup := a.insert(ep, sheet.Name, rowNum); dup {
			diags = append(diags, d)
		}
	}
	return diags
}

// insert registers an endpoint. A duplicate path+method silently overwrites
// the earlier definition (last write wins) but is reported as a diagnostic.
func (a *Assembler) insert(ep *Endpoint, sheetName string, rowNum int) (Diagnostic, bool) {
	item, ok := a.spec.Paths[ep.Path]
	if !ok {
		item = models.PathItem{}
		a.spec.Paths[ep.Path] = item
	}
	_, exists := item[ep.Method]
	item[ep.Method] = ep.Operation
	if exists {
		return Diagnostic{
			Kind:   DiagDuplicateOperation,
			Sheet:  sheetName,
			Row:    rowNum,
			Detail: fmt.Sprintf("%s %s redefined, earlier definition replaced", strings.ToUpper(ep.Method), ep.Path),
		}, true
	}
	a.endpointCount++
	return Diagnostic{}, false
}

func (a *Assembler) registerTag(name string) {
	if name == "" || a.seenTags[name] {
		return
	}
	a.seenTags[name] = true
	a.spec.Tags = append(a.spec.Tags, models.Tag{Name: name})
}

// Finalize completes the specification. The second return is false when no
// endpoint was produced by any sheet; in that case the spec is unusable and
// the caller must fail the whole conversion.
func (a *Assembler) Finalize() (*models.Spec, bool) {
	if a.endpointCount == 0 {
		return nil, false
	}
	if a.spec.Info.Title == "" {
		a.spec.Info.Title = a.cfg.DefaultTitle
	}
	if a.spec.Info.Version == "" {
		a.spec.Info.Version = a.cfg.DefaultVersion
	}
	if len(a.spec.Servers) == 0 {
		a.spec.Servers = []models.Server{{URL: a.cfg.DefaultServerURL, Description: "Default server"}}
	}
	a.ensureBearerScheme()
	return a.spec, true
}

// ensureBearerScheme registers the bearer scheme when operations reference
// it but no overview sheet declared one, so every security requirement in
// the document resolves.
func (a *Assembler) ensureBearerScheme() {
	if _, ok := a.spec.Components.SecuritySchemes[BearerRequirementName]; ok {
		return
	}
	for _, item := range a.spec.Paths {
		for _, op := range item {
			for _, req := range op.Security {
				if _, ok := req[BearerRequirementName]; ok {
					a.spec.Components.SecuritySchemes[BearerRequirementName] = models.SecurityScheme{
						Type: "http", Scheme: "bearer", BearerFormat: "JWT",
					}
					return
				}
			}
		}
	}
}

var sheetSeparators = strings.NewReplacer("_", " ", "-", " ")

// HumanizeSheetName turns a sheet name like "user_accounts" into the tag
// "User Accounts". The caser is constructed per call: cases.Caser is
// stateful and must not be shared between concurrent conversions.
func HumanizeSheetName(name string) string {
	cleaned := strings.Join(strings.Fields(sheetSeparators.Replace(name)), " ")
	if cleaned == "" {
		return strings.TrimSpace(name)
	}
	return cases.Title(language.English, cases.NoLower).String(cleaned)
}
