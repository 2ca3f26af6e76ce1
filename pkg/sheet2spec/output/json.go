// Package output serializes the assembled specification. The converter core
// never serializes on its own; callers invoke this package on the returned
// object.
package output

import (
	"encoding/json"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes the specification to JSON.
func ToJSON(spec *models.Spec, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}

// ToYAML serializes the specification to block YAML. YAML is a superset of
// JSON, so the canonical JSON bytes are re-parsed into a yaml.Node to keep
// key order before encoding.
func ToYAML(spec *models.Spec) ([]byte, error) {
	data, err := ToJSON(spec, false)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)
	return yaml.Marshal(&node)
}

// clearStyle drops the flow style inherited from the JSON source so the
// encoder emits block YAML.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
