// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package builder

import (
	"errors"
	"fmt"

	"github.com/rfaulhaber/proc-macro-workshop/pkg/option"
)

// ErrUnknownField is returned by Dynamic.Build when a setter named a field
// the plan does not declare.
var ErrUnknownField = errors.New("unknown field")

// FieldValue is one assembled field.
// For optional fields Present distinguishes Some(Value) from None.
type FieldValue struct {
	Name    string
	Value   any
	Present bool
}

// Record is an assembled value, fields in declaration order.
type Record []FieldValue

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, f.Present
		}
	}
	return nil, false
}

// Dynamic executes a plan's setter and assembly semantics in-process.
// It behaves like the code a printer generates from the same plan, which
// makes the plan's contract checkable without compiling generated source.
// A Dynamic is not safe for concurrent use.
type Dynamic struct {
	plan  *Plan
	slots map[string]option.Option[any]
	err   error
}

// NewDynamic returns a fresh builder for p. Required fields start absent;
// optional fields start at the wrapper's empty value, which is also None here.
func (p *Plan) NewDynamic() *Dynamic {
	slots := make(map[string]option.Option[any], len(p.Storage))
	for _, s := range p.Storage {
		switch s.Init {
		case InitAbsent:
			slots[s.Name] = option.None[any]()
		default:
			slots[s.Name] = option.Option[any]{}
		}
	}
	return &Dynamic{plan: p, slots: slots}
}

// Set stores v as present for the named field and returns d for chaining.
// Naming an unknown field is reported by the next Build.
func (d *Dynamic) Set(name string, v any) *Dynamic {
	if _, ok := d.slots[name]; !ok {
		if d.err == nil {
			d.err = fmt.Errorf("%w: %s has no field %q", ErrUnknownField, d.plan.BuilderName, name)
		}
		return d
	}
	d.slots[name] = option.Some(v)
	return d
}

// Build assembles a record. It does not consume the builder: calling it
// again without intervening Set calls yields an equal record.
// The first required field still absent, in declaration order, fails with
// an *option.MissingFieldError.
func (d *Dynamic) Build() (Record, error) {
	if d.err != nil {
		return nil, d.err
	}

	out := make(Record, 0, len(d.plan.Assembly))
	for _, step := range d.plan.Assembly {
		v, ok := d.slots[step.Name].Get()
		if !step.Optional && !ok {
			return nil, option.Missing(step.Name)
		}
		out = append(out, FieldValue{Name: step.Name, Value: v, Present: ok})
	}
	return out, nil
}
