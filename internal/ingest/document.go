package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/okra-platform/rustgen/internal/schema"
	"gopkg.in/yaml.v3"
)

// LoadJSON decodes a schema document written as JSON. Unknown keys are
// rejected so that typos do not silently drop parts of the schema.
func LoadJSON(data []byte) (*schema.Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s schema.Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode JSON schema: %w", err)
	}
	return &s, nil
}

// LoadYAML decodes a schema document written as YAML, with the same keys
// as the JSON form.
func LoadYAML(data []byte) (*schema.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s schema.Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode YAML schema: %w", err)
	}
	return &s, nil
}
