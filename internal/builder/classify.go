// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package builder

import (
	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

// DefaultWrapper is the optional wrapper name recognized when none is configured.
const DefaultWrapper = "Option"

// Optionality is the classification of a field type.
type Optionality struct {
	// Optional is set when the type is an instance of the optional wrapper.
	Optional bool
	// Type is the inner type for optional fields and the original type otherwise.
	Type typeref.TypeRef
}

// Required classifies t as a required field type.
func Required(t typeref.TypeRef) Optionality {
	return Optionality{Type: t}
}

// Optional classifies a field whose wrapper holds inner.
func Optional(inner typeref.TypeRef) Optionality {
	return Optionality{Optional: true, Type: inner}
}

func (o Optionality) String() string {
	if o.Optional {
		return "Optional(" + o.Type.String() + ")"
	}
	return "Required(" + o.Type.String() + ")"
}

// Classify reports whether t is the optional wrapper applied to exactly one
// type argument. The match is on the base name text only: aliases, other
// paths to the same type and wrappers of any other arity are Required.
func Classify(t typeref.TypeRef, wrapper string) Optionality {
	if t.Name == wrapper && t.Arity() == 1 {
		return Optional(t.Args[0])
	}
	return Required(t)
}
