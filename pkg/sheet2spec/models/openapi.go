package models

import "encoding/json"

// Spec is the assembled OpenAPI-3-compatible specification. It is the sole
// durable output of a conversion and is JSON-serializable as-is.
type Spec struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Servers    []Server            `json:"servers"`
	Paths      map[string]PathItem `json:"paths"`
	Components Components          `json:"components"`
	Tags       []Tag               `json:"tags,omitempty"`
}

// PathItem maps a lowercase HTTP method to the operation bound to one path.
type PathItem map[string]*Operation

// Info carries API-level metadata collected from overview sheets.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server is one server entry.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag is one API tag, derived from endpoint sheet names.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Components holds reusable objects referenced across the specification.
type Components struct {
	Schemas         map[string]SchemaNode     `json:"schemas,omitempty"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty"`
	Responses       map[string]Response       `json:"responses,omitempty"`
}

// SecurityScheme describes the declared authentication scheme.
type SecurityScheme struct {
	Type         string      `json:"type"`
	Scheme       string      `json:"scheme,omitempty"`
	BearerFormat string      `json:"bearerFormat,omitempty"`
	In           string      `json:"in,omitempty"`
	Name         string      `json:"name,omitempty"`
	Flows        *OAuthFlows `json:"flows,omitempty"`
}

// OAuthFlows holds the configured OAuth2 flows.
type OAuthFlows struct {
	ClientCredentials *OAuthFlow `json:"clientCredentials,omitempty"`
}

// OAuthFlow is one OAuth2 flow configuration.
type OAuthFlow struct {
	TokenURL string            `json:"tokenUrl"`
	Scopes   map[string]string `json:"scopes"`
}

// Operation is one HTTP method attached to one path.
type Operation struct {
	Tags        []string              `json:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty"`
	Description string                `json:"description,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"`
	Security    []map[string][]string `json:"security,omitempty"`
}

// Parameter is one path or query parameter.
type Parameter struct {
	Name        string     `json:"name"`
	In          string     `json:"in"`
	Required    bool       `json:"required"`
	Description string     `json:"description,omitempty"`
	Schema      SchemaNode `json:"schema"`
}

// RequestBody describes the body accepted by POST/PUT/PATCH operations.
type RequestBody struct {
	Description string               `json:"description,omitempty"`
	Required    bool                 `json:"required"`
	Content     map[string]MediaType `json:"content"`
}

// MediaType binds a schema (and an optional literal example) to a media type.
type MediaType struct {
	Schema  SchemaNode      `json:"schema"`
	Example json.RawMessage `json:"example,omitempty"`
}

// Response is one entry in an operation's status-code-indexed response map.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}
