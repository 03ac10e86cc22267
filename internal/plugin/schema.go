// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaID is the canonical $id; editors wire plugin.yaml completion to it.
const schemaID = "https://chatgrid.dev/schemas/plugin.schema.json"

// GetSchemaID returns the schema $id for use in plugin.yaml files.
func GetSchemaID() string {
	return schemaID
}

// GenerateSchema reflects the Manifest struct into a self-contained JSON
// Schema document. DoNotReference inlines nested types so the output has no
// $defs section for consumers to resolve.
func GenerateSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}

	doc := reflector.Reflect(&Manifest{})
	doc.ID = jsonschema.ID(schemaID)
	doc.Title = "ChatGrid Plugin Manifest"
	doc.Description = "Schema for plugin.yaml manifest files"

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest schema: %w", err)
	}
	return out, nil
}

var compiled struct {
	sync.Mutex
	schema *jschema.Schema
}

// manifestSchema compiles the reflected schema once and reuses it across
// validations.
func manifestSchema() (*jschema.Schema, error) {
	compiled.Lock()
	defer compiled.Unlock()

	if compiled.schema != nil {
		return compiled.schema, nil
	}

	raw, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest schema: %w", err)
	}

	compiler := jschema.NewCompiler()
	if err := compiler.AddResource(schemaID, doc); err != nil {
		return nil, fmt.Errorf("register manifest schema: %w", err)
	}
	sch, err := compiler.Compile(schemaID)
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}

	compiled.schema = sch
	return sch, nil
}

// ResetSchemaCache drops the compiled schema. Used for testing.
func ResetSchemaCache() {
	compiled.Lock()
	compiled.schema = nil
	compiled.Unlock()
}

// ValidateSchema checks raw plugin.yaml bytes against the manifest schema.
// It reports structural problems (missing required fields, unknown fields,
// wrong types) without constructing a Manifest.
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return errors.New("manifest data is empty")
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	// The validator wants pure JSON types; a round trip through
	// encoding/json normalizes whatever yaml.Unmarshal produced.
	encoded, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("manifest is not JSON-representable: %w", err)
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return fmt.Errorf("normalize manifest: %w", err)
	}

	sch, err := manifestSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(instance); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}

// FormatSchemaError renders a validation failure for CLI display, dropping
// the wrapping added by ValidateSchema when the cause is a schema violation.
func FormatSchemaError(err error) string {
	if err == nil {
		return ""
	}
	var ve *jschema.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return err.Error()
}
