package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a scenario file, indented.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/bnema/lrutrace/scenario.schema.json"
	schema.Title = "lrutrace scenario"
	schema.Description = "A cache capacity and the operations to replay against it"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
