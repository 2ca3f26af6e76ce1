package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

// Member is one key/value pair of a decoded structured object.
type Member struct {
	Key   string
	Value interface{}
}

// OrderedObject is a decoded structured object with key order preserved.
type OrderedObject []Member

// typedTokenRe matches repeated "name (type)" tokens.
var typedTokenRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(\s*([A-Za-z]+)\s*\)`)

// identRe matches a full identifier token.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// wordIdentRe matches snake_case or camelCase identifier-like words inside
// free text.
var wordIdentRe = regexp.MustCompile(`\b[a-z][a-z0-9]*(?:_[a-z0-9]+)+\b|\b[a-z][a-z0-9]*(?:[A-Z][a-z0-9]*)+\b`)

// listSplitRe splits free text on commas and newlines.
var listSplitRe = regexp.MustCompile(`[,\n]`)

// ParseStructured decodes text as a strict JSON value. Objects decode to
// OrderedObject so that key order survives, numbers decode to json.Number.
// Trailing non-whitespace after the value is an error.
func ParseStructured(text string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := OrderedObject{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []interface{}{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// InferFromExample recursively maps a decoded example value to its schema.
// Objects keep property insertion order; a non-empty array takes its first
// element's schema and an empty array falls back to an array of objects.
func InferFromExample(v interface{}) models.SchemaNode {
	switch val := v.(type) {
	case OrderedObject:
		obj := &models.Object{}
		for _, m := range val {
			obj.Properties = append(obj.Properties, models.Property{
				Name:   m.Key,
				Schema: InferFromExample(m.Value),
			})
		}
		return obj
	case []interface{}:
		if len(val) == 0 {
			return &models.Array{Items: &models.Object{}}
		}
		return &models.Array{Items: InferFromExample(val[0])}
	case bool:
		return &models.Scalar{Kind: models.KindBoolean}
	case json.Number:
		if strings.ContainsAny(val.String(), ".eE") {
			return &models.Scalar{Kind: models.KindNumber}
		}
		return &models.Scalar{Kind: models.KindInteger}
	case int64:
		return &models.Scalar{Kind: models.KindInteger}
	case float64:
		return &models.Scalar{Kind: models.KindNumber}
	default:
		return &models.Scalar{Kind: models.KindString}
	}
}

// InferFromText derives a schema from a free-text field description. Text
// that looks structured ("{" or "[" first) is parsed strictly and handed to
// InferFromExample. Otherwise the ordered fallback heuristics run:
// "name (type)" tokens, then "name: value" pairs, then a comma-separated
// identifier list, then a scan for identifier-like words. The precedence can
// misread a punctuated identifier list as colon-typed fields; it is kept
// as-is and pinned by tests. When nothing matches, the result is a generic
// object carrying the original text as its description.
func InferFromText(text string) models.SchemaNode {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &models.Object{}
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		if v, err := ParseStructured(trimmed); err == nil {
			return InferFromExample(v)
		}
	}

	if props := typedProperties(trimmed); len(props) > 0 {
		return &models.Object{Properties: props}
	}
	if props := colonProperties(trimmed); len(props) > 0 {
		return &models.Object{Properties: props}
	}
	if props := commaProperties(trimmed); len(props) > 0 {
		return &models.Object{Properties: props}
	}
	if props := wordProperties(trimmed); len(props) > 0 {
		return &models.Object{Properties: props}
	}
	return &models.Object{Description: trimmed}
}

// typedProperties extracts "name (type)" tokens.
func typedProperties(text string) []models.Property {
	var props []models.Property
	for _, m := range typedTokenRe.FindAllStringSubmatch(text, -1) {
		props = append(props, models.Property{
			Name:   m[1],
			Schema: schemaForKind(canonicalKind(m[2])),
		})
	}
	return props
}

// colonProperties splits "name: value" pairs and infers each kind from the
// value's shape.
func colonProperties(text string) []models.Property {
	if !strings.Contains(text, ":") {
		return nil
	}
	var props []models.Property
	for _, part := range listSplitRe.Split(text, -1) {
		name, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if !identRe.MatchString(name) {
			continue
		}
		props = append(props, models.Property{
			Name:   name,
			Schema: &models.Scalar{Kind: valueKind(strings.TrimSpace(value))},
		})
	}
	return props
}

// commaProperties treats the text as a plain comma-separated name list.
func commaProperties(text string) []models.Property {
	if !strings.Contains(text, ",") {
		return nil
	}
	var props []models.Property
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if !identRe.MatchString(name) {
			continue
		}
		props = append(props, models.Property{
			Name:   name,
			Schema: &models.Scalar{Kind: models.KindString},
		})
	}
	return props
}

// wordProperties scans prose for snake_case/camelCase words.
func wordProperties(text string) []models.Property {
	var props []models.Property
	seen := map[string]bool{}
	for _, name := range wordIdentRe.FindAllString(text, -1) {
		if seen[name] {
			continue
		}
		seen[name] = true
		props = append(props, models.Property{
			Name:   name,
			Schema: &models.Scalar{Kind: models.KindString},
		})
	}
	return props
}

// canonicalKind maps a loose type token onto a canonical kind name. Unknown
// tokens default to string.
func canonicalKind(token string) string {
	switch strings.ToLower(token) {
	case "int", "integer", "number":
		return "integer"
	case "string", "str", "text":
		return "string"
	case "bool", "boolean":
		return "boolean"
	case "float", "double", "decimal":
		return "number"
	case "array", "list":
		return "array"
	case "object", "dict":
		return "object"
	default:
		return "string"
	}
}

// schemaForKind builds the node for a canonical kind name. Compound kinds
// get permissive element/property shapes.
func schemaForKind(kind string) models.SchemaNode {
	switch kind {
	case "array":
		return &models.Array{Items: &models.Scalar{Kind: models.KindString}}
	case "object":
		return &models.Object{}
	default:
		return &models.Scalar{Kind: models.ScalarKind(kind)}
	}
}

// intRe and numberValueRe classify value shapes for colonProperties.
var (
	intRe         = regexp.MustCompile(`^-?\d+$`)
	numberValueRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// valueKind infers a scalar kind from an example value's shape.
func valueKind(value string) models.ScalarKind {
	switch strings.ToLower(value) {
	case "true", "false":
		return models.KindBoolean
	}
	if intRe.MatchString(value) {
		return models.KindInteger
	}
	if numberValueRe.MatchString(value) {
		return models.KindNumber
	}
	return models.KindString
}
