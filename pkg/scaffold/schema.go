package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ConfigSchema produces the JSON Schema for the config file, for editor
// integration and validation tooling.
func ConfigSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "spinup configuration"
	schema.Description = "Defaults for spinup scaffold runs, read from " + ConfigFileName + "."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config schema: %w", err)
	}
	return data, nil
}
