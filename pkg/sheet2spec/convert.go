package sheet2spec

import (
	"fmt"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/parser"
)

// Diagnostic is one recoverable issue absorbed during a conversion.
type Diagnostic = parser.Diagnostic

// Result is the outcome of one conversion.
type Result struct {
	// Spec is the assembled specification.
	Spec *models.Spec
	// Diagnostics lists the sheets and rows that were skipped or
	// overwritten while processing continued.
	Diagnostics []Diagnostic
	// SheetCount is the number of sheets read from the workbook.
	SheetCount int
	// EndpointCount is the number of distinct path+method pairs.
	EndpointCount int
}

// Convert reads an xlsx workbook and assembles the API specification.
// All state is constructed fresh per call, so concurrent conversions of
// different files never interleave.
func Convert(path string, opts Options) (*Result, error) {
	wb, err := parser.LoadWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}
	return ConvertWorkbook(wb, opts)
}

// ConvertWorkbook runs the pipeline over an in-memory workbook: classify
// each sheet, route it to the overview/common/endpoints handler, then apply
// common defaults to the finished specification.
func ConvertWorkbook(wb *models.Workbook, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	asm := parser.NewAssembler(parser.AssemblerConfig{
		OpenAPIVersion:   opts.OpenAPIVersion,
		DefaultTitle:     defaultTitle(wb.BookName),
		DefaultVersion:   opts.DefaultVersion,
		DefaultServerURL: opts.DefaultServerURL,
	})
	registry := parser.NewCommonRegistry()

	var diags []Diagnostic
	for _, sheet := range wb.Sheets {
		switch parser.ClassifySheet(sheet) {
		case parser.RoleCommon:
			registry.Collect(sheet)
		case parser.RoleOverview:
			asm.SetInfo(sheet)
		default:
			diags = append(diags, asm.MergeSheet(sheet)...)
		}
	}

	spec, ok := asm.Finalize()
	if !ok {
		return nil, &NoEndpointsError{BookName: wb.BookName}
	}
	if err := registry.Apply(spec); err != nil {
		return nil, fmt.Errorf("apply common defaults: %w", err)
	}

	return &Result{
		Spec:          spec,
		Diagnostics:   diags,
		SheetCount:    len(wb.Sheets),
		EndpointCount: asm.EndpointCount(),
	}, nil
}

// defaultTitle derives an info.title from the workbook file name.
func defaultTitle(bookName string) string {
	name := bookName
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	if title := parser.HumanizeSheetName(name); title != "" {
		return title
	}
	return "API Specification"
}
