// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package builder synthesizes builder plans for record types.
//
// For every field, in declaration order:
//
//   - A field typed as the optional wrapper (Option<T>) is stored in the
//     builder with its original type, its setter accepts T and wraps it,
//     and assembly copies the stored value through.
//   - Any other field of type T is stored as Option<T>, initialized absent,
//     its setter accepts T, and assembly fails on the first such field that
//     is still absent.
package builder

import (
	"errors"
	"fmt"

	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

type synthOptions struct {
	wrapper string
	log     logger.Logger
}

// SynthOption configures Synthesize.
type SynthOption func(*synthOptions)

// WithWrapper sets the recognized optional wrapper name.
func WithWrapper(name string) SynthOption {
	return func(o *synthOptions) {
		o.wrapper = name
	}
}

// WithLogger traces the synthesized plan at debug level.
func WithLogger(l logger.Logger) SynthOption {
	return func(o *synthOptions) {
		o.log = l
	}
}

// BuilderName returns the builder type name for a record type.
func BuilderName(typeName string) string {
	return typeName + "Builder"
}

// Synthesize builds the plan for s.
func Synthesize(s *schema.TypeSchema, opts ...SynthOption) (*Plan, error) {
	o := synthOptions{wrapper: DefaultWrapper}
	for _, opt := range opts {
		opt(&o)
	}

	if s == nil {
		return nil, errors.New("schema is required")
	}
	if o.wrapper == "" {
		return nil, errors.New("optional wrapper name is required")
	}

	plan := &Plan{
		TypeName:          s.Name,
		TypeVisibility:    s.Visibility,
		BuilderName:       BuilderName(s.Name),
		BuilderVisibility: s.Visibility,
		Wrapper:           o.wrapper,
		Storage:           make([]StorageField, 0, len(s.Fields)),
		Setters:           make([]Setter, 0, len(s.Fields)),
		Assembly:          make([]AssemblyStep, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		class := Classify(f.Type, o.wrapper)

		storage := StorageField{Visibility: f.Visibility, Name: f.Name}
		if class.Optional {
			storage.Type = f.Type
			storage.Init = InitWrapperDefault
		} else {
			storage.Type = typeref.Generic(o.wrapper, f.Type)
			storage.Init = InitAbsent
		}

		plan.Storage = append(plan.Storage, storage)
		plan.Setters = append(plan.Setters, Setter{
			Visibility: f.Visibility,
			Name:       f.Name,
			Param:      class.Type,
			Optional:   class.Optional,
		})
		plan.Assembly = append(plan.Assembly, AssemblyStep{
			Name:     f.Name,
			Optional: class.Optional,
		})

		if o.log != nil {
			o.log.Debug("field",
				"type", s.Name,
				"name", f.Name,
				"class", class.String(),
				"storage", storage.Type.String())
		}
	}

	if o.log != nil {
		o.log.Debug("synthesized builder",
			"type", plan.TypeName,
			"builder", plan.BuilderName,
			"wrapper", plan.Wrapper,
			"fields", len(plan.Storage),
			"required", len(plan.Required()))
	}

	return plan, nil
}

// SynthesizeAll builds one plan per schema.
func SynthesizeAll(schemas []*schema.TypeSchema, opts ...SynthOption) ([]*Plan, error) {
	plans := make([]*Plan, 0, len(schemas))
	for i, s := range schemas {
		p, err := Synthesize(s, opts...)
		if err != nil {
			return nil, fmt.Errorf("schema %d: %w", i, err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}
