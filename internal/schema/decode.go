// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definition file.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath determines the format from a file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("format not supported: %s", p)
	}
}

// UnmarshalYAML decodes a definition. Fields may be written as a sequence of
// {name, type, visibility} entries or as an ordered name: type mapping;
// mapping entries inherit the visibility of the type.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name       string     `yaml:"name"`
		Visibility Visibility `yaml:"visibility"`
		Kind       Kind       `yaml:"kind"`
		Fields     yaml.Node  `yaml:"fields"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	fields, err := decodeFields(&raw.Fields, raw.Visibility)
	if err != nil {
		return fmt.Errorf("type %q: %w", raw.Name, err)
	}

	*d = Definition{
		Name:       raw.Name,
		Visibility: raw.Visibility,
		Kind:       raw.Kind,
		Fields:     fields,
	}
	return nil
}

func decodeFields(node *yaml.Node, inherited Visibility) ([]DefinitionField, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		fields := make([]DefinitionField, 0, len(node.Content))
		for _, item := range node.Content {
			var f DefinitionField
			if err := item.Decode(&f); err != nil {
				return nil, fmt.Errorf("line %d: %w", item.Line, err)
			}
			fields = append(fields, f)
		}
		return fields, nil
	case yaml.MappingNode:
		fields := make([]DefinitionField, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			f := DefinitionField{Name: key.Value, Visibility: inherited}
			switch value.Kind {
			case yaml.ScalarNode:
				f.Type = value.Value
			case yaml.MappingNode:
				var spec struct {
					Type       string      `yaml:"type"`
					Visibility *Visibility `yaml:"visibility"`
				}
				if err := value.Decode(&spec); err != nil {
					return nil, fmt.Errorf("field %q: %w", key.Value, err)
				}
				f.Type = spec.Type
				if spec.Visibility != nil {
					f.Visibility = *spec.Visibility
				}
			default:
				return nil, fmt.Errorf("field %q: expected a type name or a mapping (line %d)", key.Value, value.Line)
			}
			fields = append(fields, f)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("fields must be a sequence or a mapping (line %d)", node.Line)
	}
}

// Decode parses one or more definitions from data.
// A document is either a single definition or a mapping with a "types" list.
// JSON documents are decoded through the YAML parser so key order survives.
func Decode(data []byte, format Format) ([]Definition, error) {
	if format == JSON && !json.Valid(data) {
		return nil, errors.New("invalid JSON document")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the document root (line %d)", doc.Line)
	}

	if hasKey(doc, "types") {
		var multi struct {
			Types []Definition `yaml:"types"`
		}
		if err := doc.Decode(&multi); err != nil {
			return nil, err
		}
		if len(multi.Types) == 0 {
			return nil, errors.New("types list is empty")
		}
		return multi.Types, nil
	}

	var def Definition
	if err := doc.Decode(&def); err != nil {
		return nil, err
	}
	return []Definition{def}, nil
}

// LoadFile reads definitions from a file in fsys.
// JSON Schema documents are recognized and converted with FromJSONSchema,
// in which case wrapper names the optional wrapper for non-required properties.
func LoadFile(fsys fs.FS, filePath, wrapper string) ([]Definition, error) {
	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	format, err := FormatFromPath(filePath)
	if err != nil {
		return nil, err
	}

	if IsJSONSchema(data) {
		base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		def, err := FromJSONSchema(base, data, wrapper)
		if err != nil {
			return nil, err
		}
		return []Definition{*def}, nil
	}

	return Decode(data, format)
}

// IsJSONSchema reports whether data looks like a JSON Schema document rather
// than a definition file.
func IsJSONSchema(data []byte) bool {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return false
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return false
	}
	return hasKey(doc, "$schema") || hasKey(doc, "properties")
}

func hasKey(node *yaml.Node, key string) bool {
	return valueOf(node, key) != nil
}

func valueOf(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
