// Package llm - schema.go describes structured-output schemas independently of the provider SDK.
package llm

import "github.com/google/generative-ai-go/genai"

// SchemaType is the JSON type of a schema node.
type SchemaType string

// Supported schema node types.
const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema describes the shape the model must answer with.
// Minimum and Maximum only apply to numeric nodes.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Minimum     *int
	Maximum     *int
}

// IntRange returns a pointer pair for inclusive integer bounds.
func IntRange(lo, hi int) (*int, *int) {
	return &lo, &hi
}

// JSONSchema renders the schema as a draft-07 JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	doc := s.jsonNode()
	doc["$schema"] = "http://json-schema.org/draft-07/schema#"
	return doc
}

func (s *Schema) jsonNode() map[string]any {
	node := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		node["description"] = s.Description
	}
	if s.Minimum != nil {
		node["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		node["maximum"] = *s.Maximum
	}
	if s.Items != nil {
		node["items"] = s.Items.jsonNode()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.jsonNode()
		}
		node["properties"] = props
	}
	if len(s.Required) > 0 {
		required := make([]any, len(s.Required))
		for i, name := range s.Required {
			required[i] = name
		}
		node["required"] = required
	}
	return node
}

// toGenai converts the schema to the Gemini SDK representation.
// Gemini schemas carry no numeric bounds; callers state them in the description.
func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Items:       s.Items.toGenai(),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
	}
	return out
}

func genaiType(t SchemaType) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeInteger:
		return genai.TypeInteger
	case TypeNumber:
		return genai.TypeNumber
	case TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
