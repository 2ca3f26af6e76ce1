package parser

import (
	"regexp"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

// pathParamRe matches {name} tokens in a path template.
var pathParamRe = regexp.MustCompile(`\{([^{}]+)\}`)

// ExtractParameters derives the parameter list for one operation. Every
// {name} token in the path becomes a required string-typed path parameter.
// The free-text parameters column is then parsed with three ordered fallback
// strategies ("name (type)" tokens, then "name: value" pairs, then a plain
// comma list), stopping at the first that matches. Names already claimed by
// the path are discarded.
func ExtractParameters(path, paramsText string) []models.Parameter {
	var params []models.Parameter
	inPath := map[string]bool{}
	for _, m := range pathParamRe.FindAllStringSubmatch(path, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || inPath[name] {
			continue
		}
		inPath[name] = true
		params = append(params, models.Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   &models.Scalar{Kind: models.KindString},
		})
	}

	for _, q := range queryParameters(paramsText) {
		if inPath[q.Name] {
			continue
		}
		params = append(params, q)
	}
	return params
}

// queryParameters parses the free-text parameters column.
func queryParameters(text string) []models.Parameter {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if matches := typedTokenRe.FindAllStringSubmatch(trimmed, -1); len(matches) > 0 {
		var params []models.Parameter
		for _, m := range matches {
			params = append(params, queryParam(m[1], schemaForKind(canonicalKind(m[2]))))
		}
		return params
	}

	if strings.Contains(trimmed, ":") {
		var params []models.Parameter
		for _, part := range listSplitRe.Split(trimmed, -1) {
			name, value, found := strings.Cut(part, ":")
			if !found {
				continue
			}
			name = strings.TrimSpace(name)
			if !identRe.MatchString(name) {
				continue
			}
			params = append(params, queryParam(name, &models.Scalar{Kind: valueKind(strings.TrimSpace(value))}))
		}
		if len(params) > 0 {
			return params
		}
	}

	if strings.Contains(trimmed, ",") {
		var params []models.Parameter
		for _, part := range strings.Split(trimmed, ",") {
			name := strings.TrimSpace(part)
			if !identRe.MatchString(name) {
				continue
			}
			params = append(params, queryParam(name, &models.Scalar{Kind: models.KindString}))
		}
		return params
	}
	return nil
}

func queryParam(name string, schema models.SchemaNode) models.Parameter {
	return models.Parameter{
		Name:   name,
		In:     "query",
		Schema: schema,
	}
}
