package models

import (
	"bytes"
	"encoding/json"
)

// ScalarKind enumerates the primitive schema types.
type ScalarKind string

const (
	KindString  ScalarKind = "string"
	KindInteger ScalarKind = "integer"
	KindNumber  ScalarKind = "number"
	KindBoolean ScalarKind = "boolean"
)

// SchemaNode is the inferred shape of a request or response value. Exactly
// three implementations exist: *Object, *Array, and *Scalar. Each marshals
// to the corresponding OpenAPI schema object.
type SchemaNode interface {
	json.Marshaler
	schemaNode()
}

// Property is one named member of an Object. Order is significant and
// matches insertion order during inference.
type Property struct {
	Name   string
	Schema SchemaNode
}

// Object is a schema with ordered named properties. A description is set
// when inference could not derive any properties from the input.
type Object struct {
	Properties  []Property
	Description string
}

// Array is a schema whose elements share one item schema.
type Array struct {
	Items SchemaNode
}

// Scalar is a primitive-typed schema.
type Scalar struct {
	Kind ScalarKind
}

func (*Object) schemaNode() {}
func (*Array) schemaNode()  {}
func (*Scalar) schemaNode() {}

// Property returns the schema of the named property, if present.
func (o *Object) Property(name string) (SchemaNode, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// MarshalJSON emits an OpenAPI object schema with properties in insertion
// order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object"`)
	if o.Description != "" {
		desc, err := json.Marshal(o.Description)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"description":`)
		buf.Write(desc)
	}
	if len(o.Properties) > 0 {
		buf.WriteString(`,"properties":{`)
		for i, p := range o.Properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(p.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			schema, err := json.Marshal(p.Schema)
			if err != nil {
				return nil, err
			}
			buf.Write(schema)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON emits an OpenAPI array schema.
func (a *Array) MarshalJSON() ([]byte, error) {
	items, err := json.Marshal(a.Items)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":"array","items":`)
	buf.Write(items)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON emits an OpenAPI primitive schema.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{Type: string(s.Kind)})
}
