// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema normalizes record type definitions into ordered field lists.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

// ErrUnsupportedShape indicates the definition is not a record with named fields.
var ErrUnsupportedShape = errors.New("unsupported shape")

// Visibility is a visibility marker carried from the definition to the
// generated builder. Restricted markers such as "pub(crate)" are kept verbatim.
type Visibility string

const (
	// Private is the default visibility.
	Private Visibility = ""
	// Public marks an item visible outside its package or module.
	Public Visibility = "pub"
)

// IsPublic reports whether v is the unrestricted public marker.
func (v Visibility) IsPublic() bool {
	return v == Public
}

// Kind is the shape of a type definition.
type Kind string

// Definition kinds. Only KindStruct can be extracted.
const (
	KindStruct Kind = "struct"
	KindTuple  Kind = "tuple"
	KindUnit   Kind = "unit"
	KindEnum   Kind = "enum"
)

// Definition is a raw type definition as produced by a front-end.
type Definition struct {
	Name       string            `yaml:"name"`
	Visibility Visibility        `yaml:"visibility,omitempty"`
	Kind       Kind              `yaml:"kind,omitempty"`
	Fields     []DefinitionField `yaml:"fields,omitempty"`
}

// DefinitionField is one field of a raw definition. Type is unparsed text.
type DefinitionField struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Visibility Visibility `yaml:"visibility,omitempty"`
}

// FieldDescriptor is a normalized field.
type FieldDescriptor struct {
	Visibility Visibility      `yaml:"visibility,omitempty"`
	Name       string          `yaml:"name"`
	Type       typeref.TypeRef `yaml:"type"`
}

// TypeSchema is a record type with its fields in declaration order.
type TypeSchema struct {
	Name       string            `yaml:"name"`
	Visibility Visibility        `yaml:"visibility,omitempty"`
	Fields     []FieldDescriptor `yaml:"fields"`
}

// Extract validates a definition and returns its schema.
// Field order is preserved exactly as given.
func Extract(def Definition) (*TypeSchema, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: type name is required", ErrUnsupportedShape)
	}

	switch def.Kind {
	case "", KindStruct:
	case KindTuple, KindUnit, KindEnum:
		return nil, fmt.Errorf("%w: %s: %s types are not supported, only structs with named fields",
			ErrUnsupportedShape, name, def.Kind)
	default:
		return nil, fmt.Errorf("%w: %s has unknown kind %q", ErrUnsupportedShape, name, def.Kind)
	}

	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no named fields", ErrUnsupportedShape, name)
	}

	fields := make([]FieldDescriptor, 0, len(def.Fields))
	seen := make(map[string]struct{}, len(def.Fields))
	for i, f := range def.Fields {
		fieldName := strings.TrimSpace(f.Name)
		if fieldName == "" {
			return nil, fmt.Errorf("%w: %s field %d has no name", ErrUnsupportedShape, name, i)
		}
		if _, dup := seen[fieldName]; dup {
			return nil, fmt.Errorf("%w: %s declares field %q more than once", ErrUnsupportedShape, name, fieldName)
		}
		seen[fieldName] = struct{}{}

		ref := typeref.Parse(f.Type)
		if ref.IsZero() {
			return nil, fmt.Errorf("%w: %s field %q has no type", ErrUnsupportedShape, name, fieldName)
		}

		fields = append(fields, FieldDescriptor{
			Visibility: f.Visibility,
			Name:       fieldName,
			Type:       ref,
		})
	}

	return &TypeSchema{
		Name:       name,
		Visibility: def.Visibility,
		Fields:     fields,
	}, nil
}

// ExtractAll extracts every definition, stopping at the first failure.
func ExtractAll(defs []Definition) ([]*TypeSchema, error) {
	out := make([]*TypeSchema, 0, len(defs))
	for _, def := range defs {
		s, err := Extract(def)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
