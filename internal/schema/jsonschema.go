// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

// FromJSONSchema derives a public struct definition from a JSON Schema object
// given as YAML or JSON. Required properties keep their resolved type; the
// others are wrapped in wrapper. The type is named after the schema title,
// falling back to fallbackName. Property order follows the document.
func FromJSONSchema(fallbackName string, data []byte, wrapper string) (*Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("empty schema document")
	}

	s, err := decodeJSONSchema(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON schema: %w", err)
	}

	name := s.Title
	if name == "" {
		name = fallbackName
	}
	name = ToPascalCase(name)

	if s.Type != "" && s.Type != "object" {
		return nil, fmt.Errorf("%w: %s is a %q schema, expected an object", ErrUnsupportedShape, name, s.Type)
	}
	if len(s.Properties) == 0 {
		return nil, fmt.Errorf("%w: %s has no properties", ErrUnsupportedShape, name)
	}

	order := propertyOrder(valueOf(root.Content[0], "properties"), s.Properties)

	def := &Definition{
		Name:       name,
		Visibility: Public,
		Kind:       KindStruct,
		Fields:     make([]DefinitionField, 0, len(order)),
	}
	for _, propName := range order {
		prop := s.Properties[propName]

		ref, nullable, err := resolveType(prop, propName)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, propName, err)
		}
		if nullable || !slices.Contains(s.Required, propName) {
			ref = typeref.Generic(wrapper, ref)
		}

		def.Fields = append(def.Fields, DefinitionField{
			Name:       ToPascalCase(propName),
			Type:       ref.String(),
			Visibility: Public,
		})
	}

	return def, nil
}

// decodeJSONSchema converts a YAML or JSON node into a jsonschema.Schema by
// way of its JSON encoding.
func decodeJSONSchema(node *yaml.Node) (*jsonschema.Schema, error) {
	var generic any
	if err := node.Decode(&generic); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// propertyOrder returns property names in document order. Names missing from
// the node are appended alphabetically.
func propertyOrder(node *yaml.Node, props map[string]*jsonschema.Schema) []string {
	order := make([]string, 0, len(props))
	seen := make(map[string]struct{}, len(props))
	if node != nil && node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if _, ok := props[key]; ok {
				order = append(order, key)
				seen[key] = struct{}{}
			}
		}
	}

	var rest []string
	for key := range props {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// resolveType maps a property schema onto a Go type reference.
// The returned flag is set when the schema admits null.
func resolveType(s *jsonschema.Schema, fieldName string) (typeref.TypeRef, bool, error) {
	if s == nil {
		return typeref.Plain("any"), false, nil
	}

	if s.Ref != "" {
		return typeref.Plain(ToPascalCase(s.Ref[strings.LastIndex(s.Ref, "/")+1:])), false, nil
	}

	schemaType, nullable := s.Type, false
	if schemaType == "" && len(s.Types) > 0 {
		for _, t := range s.Types {
			if t == "null" {
				nullable = true
				continue
			}
			if schemaType == "" {
				schemaType = t
			}
		}
	}

	switch {
	case schemaType == "array":
		if s.Items == nil {
			return typeref.Plain("[]any"), nullable, nil
		}
		elem, _, err := resolveType(s.Items, fieldName)
		if err != nil {
			return typeref.TypeRef{}, false, err
		}
		return typeref.Plain("[]" + elem.Format(typeref.Square)), nullable, nil
	case schemaType == "object" || (schemaType == "" && len(s.Properties) > 0):
		return typeref.TypeRef{}, false, fmt.Errorf("%w: inline object %q needs its own definition", ErrUnsupportedShape, fieldName)
	}

	return typeref.Plain(primitiveType(schemaType, s.Format)), nullable, nil
}

func primitiveType(schemaType, format string) string {
	switch format {
	case "date", "date-time":
		return "time.Time"
	case "uuid":
		return "string"
	}

	switch schemaType {
	case "string":
		return "string"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	default:
		return "any"
	}
}
