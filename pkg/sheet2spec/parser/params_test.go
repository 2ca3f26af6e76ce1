package parser

import (
	"testing"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

func TestExtractParametersPathOnly(t *testing.T) {
	params := ExtractParameters("/users/{id}/orders/{orderId}", "")
	if len(params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(params))
	}
	for i, want := range []string{"id", "orderId"} {
		p := params[i]
		if p.Name != want {
			t.Errorf("parameter %d name = %q, want %q", i, p.Name, want)
		}
		if p.In != "path" {
			t.Errorf("parameter %q in = %q, want path", p.Name, p.In)
		}
		if !p.Required {
			t.Errorf("parameter %q should be required", p.Name)
		}
		scalar, ok := p.Schema.(*models.Scalar)
		if !ok || scalar.Kind != models.KindString {
			t.Errorf("parameter %q should be string-typed", p.Name)
		}
	}
}

// Path parameters always win regardless of the parameters column's content.
func TestExtractParametersPathWinsOverText(t *testing.T) {
	params := ExtractParameters("/users/{id}/orders/{orderId}", "id (int), limit (int)")
	if len(params) != 3 {
		t.Fatalf("expected 3 parameters, got %d: %v", len(params), params)
	}
	if params[0].Name != "id" || params[0].In != "path" {
		t.Errorf("first parameter = %s in %s, want id in path", params[0].Name, params[0].In)
	}
	if params[2].Name != "limit" || params[2].In != "query" {
		t.Errorf("last parameter = %s in %s, want limit in query", params[2].Name, params[2].In)
	}
}

func TestExtractParametersTypedTokens(t *testing.T) {
	params := ExtractParameters("/items", "page (int), q (string), active (bool), ratio (float), ids (list)")
	wantKinds := map[string]string{
		"page":   "integer",
		"q":      "string",
		"active": "boolean",
		"ratio":  "number",
	}
	if len(params) != 5 {
		t.Fatalf("expected 5 parameters, got %d", len(params))
	}
	for _, p := range params {
		if p.Name == "ids" {
			if _, ok := p.Schema.(*models.Array); !ok {
				t.Errorf("ids schema = %T, want *Array", p.Schema)
			}
			continue
		}
		scalar, ok := p.Schema.(*models.Scalar)
		if !ok {
			t.Errorf("parameter %q: expected *Scalar, got %T", p.Name, p.Schema)
			continue
		}
		if string(scalar.Kind) != wantKinds[p.Name] {
			t.Errorf("parameter %q kind = %q, want %q", p.Name, scalar.Kind, wantKinds[p.Name])
		}
	}
}

func TestExtractParametersColonPairs(t *testing.T) {
	params := ExtractParameters("/items", "page: 1, q: shoes, active: true")
	if len(params) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(params))
	}
	kinds := map[string]models.ScalarKind{}
	for _, p := range params {
		kinds[p.Name] = p.Schema.(*models.Scalar).Kind
	}
	if kinds["page"] != models.KindInteger {
		t.Errorf("page kind = %q, want integer", kinds["page"])
	}
	if kinds["q"] != models.KindString {
		t.Errorf("q kind = %q, want string", kinds["q"])
	}
	if kinds["active"] != models.KindBoolean {
		t.Errorf("active kind = %q, want boolean", kinds["active"])
	}
}

func TestExtractParametersCommaList(t *testing.T) {
	params := ExtractParameters("/items", "page, limit, sort")
	if len(params) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(params))
	}
	for _, p := range params {
		if p.In != "query" || p.Required {
			t.Errorf("parameter %q: in=%q required=%v, want optional query", p.Name, p.In, p.Required)
		}
		if p.Schema.(*models.Scalar).Kind != models.KindString {
			t.Errorf("parameter %q should be string-typed", p.Name)
		}
	}
}

func TestExtractParametersUnknownTypeDefaultsToString(t *testing.T) {
	params := ExtractParameters("/items", "token (uuid)")
	if len(params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(params))
	}
	if params[0].Schema.(*models.Scalar).Kind != models.KindString {
		t.Errorf("unknown type should default to string, got %q", params[0].Schema.(*models.Scalar).Kind)
	}
}

func TestExtractParametersNoMatch(t *testing.T) {
	params := ExtractParameters("/items", "see the documentation")
	if len(params) != 0 {
		t.Errorf("expected no parameters, got %v", params)
	}
}
