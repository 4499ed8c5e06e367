// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package builder

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

// Init describes how the factory initializes a storage field.
type Init string

const (
	// InitAbsent means the factory sets the field to the wrapper's absent value.
	InitAbsent Init = "absent"
	// InitWrapperDefault means the field is left at the wrapper type's own
	// empty value; the factory does not initialize it explicitly.
	InitWrapperDefault Init = "wrapper-default"
)

// StorageField is a field of the builder type.
type StorageField struct {
	Visibility schema.Visibility `yaml:"visibility,omitempty"`
	Name       string            `yaml:"name"`
	Type       typeref.TypeRef   `yaml:"type"`
	Init       Init              `yaml:"init"`
}

// Setter is a chainable method on the builder. It stores Param as present.
type Setter struct {
	Visibility schema.Visibility `yaml:"visibility,omitempty"`
	Name       string            `yaml:"name"`
	Param      typeref.TypeRef   `yaml:"param"`
	// Optional is set when the field's own type is the wrapper, so the
	// setter wraps an inner-typed argument.
	Optional bool `yaml:"optional,omitempty"`
}

// AssemblyStep is one field of the assembly method, in declaration order.
// Required steps fail assembly when their storage is absent; optional steps
// copy storage through unchanged.
type AssemblyStep struct {
	Name     string `yaml:"name"`
	Optional bool   `yaml:"optional,omitempty"`
}

// Plan is the structural description of a synthesized builder.
// It carries no behavior; printers render it into source text.
type Plan struct {
	TypeName          string            `yaml:"type"`
	TypeVisibility    schema.Visibility `yaml:"type_visibility,omitempty"`
	BuilderName       string            `yaml:"builder"`
	BuilderVisibility schema.Visibility `yaml:"builder_visibility,omitempty"`
	Wrapper           string            `yaml:"wrapper"`
	Storage           []StorageField    `yaml:"storage"`
	Setters           []Setter          `yaml:"setters"`
	Assembly          []AssemblyStep    `yaml:"assembly"`
}

// Required returns the names of the required fields in declaration order.
func (p *Plan) Required() []string {
	var names []string
	for _, step := range p.Assembly {
		if !step.Optional {
			names = append(names, step.Name)
		}
	}
	return names
}

// YAML renders the plan as a YAML document.
func (p *Plan) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
