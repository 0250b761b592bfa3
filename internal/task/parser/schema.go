package parser

import (
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskSchema is the shape the completion service is asked to return.
// Unknown keys are allowed and ignored on decode.
const taskSchema = `{
	"type": "object",
	"properties": {
		"title":            {"type": ["string", "null"]},
		"description":      {"type": ["string", "null"]},
		"due_date":         {"type": ["string", "null"]},
		"duration_minutes": {"type": ["number", "string", "null"]},
		"tags": {
			"type":  ["array", "string", "null"],
			"items": {"type": "string"}
		},
		"priority_hint":    {"type": ["string", "null"]}
	}
}`

var compiledTaskSchema = jsonschema.MustCompileString("task.schema.json", taskSchema)

// validateReply checks a decoded reply against taskSchema and reports the first leaf failure.
func validateReply(v any) error {
	err := compiledTaskSchema.Validate(v)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidReply, ve.InstanceLocation, ve.Message)
}
