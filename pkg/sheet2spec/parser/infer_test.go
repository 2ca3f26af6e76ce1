package parser

import (
	"reflect"
	"testing"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

func TestInferFromTextStructuredObject(t *testing.T) {
	node := InferFromText(`{"id": 1, "name": "str", "price": 9.99, "active": true}`)

	obj, ok := node.(*models.Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", node)
	}
	wantKinds := []struct {
		name string
		kind models.ScalarKind
	}{
		{"id", models.KindInteger},
		{"name", models.KindString},
		{"price", models.KindNumber},
		{"active", models.KindBoolean},
	}
	if len(obj.Properties) != len(wantKinds) {
		t.Fatalf("expected %d properties, got %d", len(wantKinds), len(obj.Properties))
	}
	for i, want := range wantKinds {
		p := obj.Properties[i]
		if p.Name != want.name {
			t.Errorf("property %d name = %q, want %q", i, p.Name, want.name)
		}
		scalar, ok := p.Schema.(*models.Scalar)
		if !ok {
			t.Fatalf("property %q: expected *Scalar, got %T", p.Name, p.Schema)
		}
		if scalar.Kind != want.kind {
			t.Errorf("property %q kind = %q, want %q", p.Name, scalar.Kind, want.kind)
		}
	}
}

func TestInferFromTextIdempotent(t *testing.T) {
	text := `{"id": 1, "name": "str"}`
	first := InferFromText(text)
	second := InferFromText(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("inference is not idempotent: %#v vs %#v", first, second)
	}
}

func TestInferFromTextNestedAndArrays(t *testing.T) {
	node := InferFromText(`{"items": [{"sku": "a"}], "empty": []}`)
	obj, ok := node.(*models.Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", node)
	}

	itemsSchema, ok := obj.Property("items")
	if !ok {
		t.Fatal("items property missing")
	}
	arr, ok := itemsSchema.(*models.Array)
	if !ok {
		t.Fatalf("items: expected *Array, got %T", itemsSchema)
	}
	inner, ok := arr.Items.(*models.Object)
	if !ok {
		t.Fatalf("items.items: expected *Object, got %T", arr.Items)
	}
	if _, ok := inner.Property("sku"); !ok {
		t.Error("items element lost sku property")
	}

	emptySchema, ok := obj.Property("empty")
	if !ok {
		t.Fatal("empty property missing")
	}
	emptyArr, ok := emptySchema.(*models.Array)
	if !ok {
		t.Fatalf("empty: expected *Array, got %T", emptySchema)
	}
	if _, ok := emptyArr.Items.(*models.Object); !ok {
		t.Errorf("empty array items: expected generic *Object, got %T", emptyArr.Items)
	}
}

func TestInferFromTextHeuristics(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		props map[string]models.ScalarKind
	}{
		{
			name:  "typed tokens",
			text:  "name (string), age (int), score (float)",
			props: map[string]models.ScalarKind{"name": models.KindString, "age": models.KindInteger, "score": models.KindNumber},
		},
		{
			name:  "colon pairs",
			text:  "id: 10, enabled: true, label: hello",
			props: map[string]models.ScalarKind{"id": models.KindInteger, "enabled": models.KindBoolean, "label": models.KindString},
		},
		{
			name:  "comma list",
			text:  "name, email, city",
			props: map[string]models.ScalarKind{"name": models.KindString, "email": models.KindString, "city": models.KindString},
		},
		{
			name:  "identifier scan",
			text:  "Returns the created_at timestamp and the userName of the owner",
			props: map[string]models.ScalarKind{"created_at": models.KindString, "userName": models.KindString},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := InferFromText(tt.text).(*models.Object)
			if !ok {
				t.Fatalf("expected *Object")
			}
			if len(obj.Properties) != len(tt.props) {
				t.Fatalf("expected %d properties, got %d (%v)", len(tt.props), len(obj.Properties), obj.Properties)
			}
			for _, p := range obj.Properties {
				wantKind, ok := tt.props[p.Name]
				if !ok {
					t.Errorf("unexpected property %q", p.Name)
					continue
				}
				scalar, ok := p.Schema.(*models.Scalar)
				if !ok {
					t.Errorf("property %q: expected *Scalar, got %T", p.Name, p.Schema)
					continue
				}
				if scalar.Kind != wantKind {
					t.Errorf("property %q kind = %q, want %q", p.Name, scalar.Kind, wantKind)
				}
			}
		})
	}
}

// The typed-pattern strategy outranks the colon strategy even when both could
// match. This pins the documented precedence.
func TestInferFromTextPrecedence(t *testing.T) {
	obj, ok := InferFromText("limit (int): maximum rows").(*models.Object)
	if !ok {
		t.Fatal("expected *Object")
	}
	if len(obj.Properties) != 1 || obj.Properties[0].Name != "limit" {
		t.Fatalf("expected single limit property, got %v", obj.Properties)
	}
	scalar := obj.Properties[0].Schema.(*models.Scalar)
	if scalar.Kind != models.KindInteger {
		t.Errorf("limit kind = %q, want integer", scalar.Kind)
	}
}

func TestInferFromTextProseFallback(t *testing.T) {
	text := "the usual payload"
	obj, ok := InferFromText(text).(*models.Object)
	if !ok {
		t.Fatal("expected *Object")
	}
	if len(obj.Properties) != 0 {
		t.Errorf("expected no properties, got %v", obj.Properties)
	}
	if obj.Description != text {
		t.Errorf("description = %q, want %q", obj.Description, text)
	}
}

func TestInferFromTextInvalidStructuredFallsBack(t *testing.T) {
	// Looks structured but is broken; the heuristics take over.
	obj, ok := InferFromText(`{"user_id": 1,`).(*models.Object)
	if !ok {
		t.Fatal("expected *Object")
	}
	if _, ok := obj.Property("user_id"); !ok {
		t.Errorf("expected heuristic user_id property from broken JSON text, got %v", obj.Properties)
	}
}

func TestInferFromExampleTopLevelArray(t *testing.T) {
	v, err := ParseStructured(`[{"id": 1}]`)
	if err != nil {
		t.Fatalf("ParseStructured failed: %v", err)
	}
	arr, ok := InferFromExample(v).(*models.Array)
	if !ok {
		t.Fatal("expected *Array")
	}
	if _, ok := arr.Items.(*models.Object); !ok {
		t.Errorf("expected object items, got %T", arr.Items)
	}
}

func TestParseStructuredRejectsTrailingData(t *testing.T) {
	if _, err := ParseStructured(`{"a": 1} trailing`); err == nil {
		t.Error("expected error for trailing data")
	}
}

func TestParseStructuredPreservesKeyOrder(t *testing.T) {
	v, err := ParseStructured(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatalf("ParseStructured failed: %v", err)
	}
	obj, ok := v.(OrderedObject)
	if !ok {
		t.Fatalf("expected OrderedObject, got %T", v)
	}
	want := []string{"z", "a", "m"}
	for i, m := range obj {
		if m.Key != want[i] {
			t.Errorf("key %d = %q, want %q", i, m.Key, want[i])
		}
	}
}
