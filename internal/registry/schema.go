package registry

import (
	"encoding/json"

	"github.com/Fuabioo/mcpd/internal/errors"
)

// Primitive field types accepted in tool input schemas.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Field describes a single named argument in a tool input schema.
type Field struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// InputSchema is a structural description of the argument shapes a tool
// accepts: named fields with primitive types and required/optional flags.
// Field order is declaration order and is preserved in listings.
type InputSchema struct {
	fields []Field
}

// Fields returns a copy of the schema's fields in declaration order.
func (s *InputSchema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate checks the given arguments against the schema: every required
// field must be present and every present field must match its declared type.
// Arguments not named in the schema are passed through untouched.
func (s *InputSchema) Validate(args map[string]any) error {
	for _, f := range s.fields {
		val, ok := args[f.Name]
		if !ok || val == nil {
			if f.Required {
				return errors.MissingArgument(f.Name)
			}
			continue
		}
		if !typeMatches(f.Type, val) {
			return errors.InvalidArgument(f.Name, f.Type)
		}
	}
	return nil
}

// typeMatches checks a decoded JSON value against a schema type. Values come
// from encoding/json, so numbers are float64 and objects are maps.
func typeMatches(schemaType string, val any) bool {
	switch schemaType {
	case TypeString:
		_, ok := val.(string)
		return ok
	case TypeNumber:
		_, ok := val.(float64)
		return ok
	case TypeInteger:
		num, ok := val.(float64)
		return ok && num == float64(int64(num))
	case TypeBoolean:
		_, ok := val.(bool)
		return ok
	case TypeObject:
		_, ok := val.(map[string]any)
		return ok
	case TypeArray:
		_, ok := val.([]any)
		return ok
	default:
		return false
	}
}

// MarshalJSON renders the schema as a JSON Schema object, the wire shape
// clients expect in tools/list results.
func (s InputSchema) MarshalJSON() ([]byte, error) {
	properties := make(map[string]any, len(s.fields))
	var required []string
	for _, f := range s.fields {
		prop := map[string]any{"type": f.Type}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return json.Marshal(schema)
}
