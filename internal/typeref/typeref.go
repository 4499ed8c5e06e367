// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typeref models type references as data.
//
// A TypeRef is either a plain name ("i32", "time.Time", "[]string") or a
// name with bracketed type arguments ("Option<i32>", "option.Option[int]").
// Nothing here resolves types semantically; references are compared by the
// text of their base name only.
package typeref

import (
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// TypeRef is a structural reference to a type.
type TypeRef struct {
	// Name is the base name. For references that could not be decomposed
	// it holds the whole type text verbatim.
	Name string
	// Args are the type arguments, empty for plain references.
	Args []TypeRef
}

// Plain returns a reference without type arguments.
func Plain(name string) TypeRef {
	return TypeRef{Name: name}
}

// Generic returns a reference to name instantiated with args.
func Generic(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// IsGeneric reports whether the reference carries type arguments.
func (t TypeRef) IsGeneric() bool {
	return len(t.Args) > 0
}

// Arity returns the number of type arguments.
func (t TypeRef) Arity() int {
	return len(t.Args)
}

// IsZero reports whether t is the empty reference.
func (t TypeRef) IsZero() bool {
	return t.Name == "" && len(t.Args) == 0
}

// Equal reports whether t and o are structurally identical.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Name != o.Name || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// String renders the reference with angle brackets.
func (t TypeRef) String() string {
	return t.Format(Angle)
}

// Brackets is the pair of delimiters used around type arguments.
type Brackets struct {
	Open  string
	Close string
}

var (
	// Angle renders Name<A, B>.
	Angle = Brackets{Open: "<", Close: ">"}
	// Square renders Name[A, B].
	Square = Brackets{Open: "[", Close: "]"}
)

// Format renders the reference using the given argument delimiters.
func (t TypeRef) Format(b Brackets) string {
	if len(t.Args) == 0 {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString(b.Open)
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Format(b))
	}
	sb.WriteString(b.Close)
	return sb.String()
}

// Parse decomposes type text into a TypeRef.
// Both Name<A> and Name[A] argument syntax are accepted, nested to any depth.
// Text that does not have that shape, such as "[]string", "*User" or
// "map[string]int", is returned verbatim as a plain reference.
func Parse(text string) TypeRef {
	text = strings.TrimSpace(text)

	open := strings.IndexAny(text, "<[")
	if open <= 0 || !isName(text[:open]) {
		return Plain(text)
	}

	closing := matchingClose(text, open)
	if closing != len(text)-1 {
		return Plain(text)
	}

	parts := splitArgs(text[open+1 : closing])
	if len(parts) == 0 {
		return Plain(text)
	}

	args := make([]TypeRef, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Plain(text)
		}
		args = append(args, Parse(p))
	}

	return Generic(text[:open], args...)
}

func isName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' && r != ':' {
			return false
		}
	}
	return s != ""
}

// matchingClose returns the index of the delimiter closing the one at open,
// or -1 when the text is unbalanced.
func matchingClose(s string, open int) int {
	var stack []byte
	for i := open; i < len(s); i++ {
		switch c := s[i]; c {
		case '<', '[', '(':
			stack = append(stack, c)
		case '>', ']', ')':
			if isArrow(s, i) {
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1] != opener(c) {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i
			}
		}
	}
	return -1
}

// isArrow reports whether the '>' at i is part of a "->" return arrow.
func isArrow(s string, i int) bool {
	return s[i] == '>' && i > 0 && s[i-1] == '-'
}

func opener(c byte) byte {
	switch c {
	case '>':
		return '<'
	case ']':
		return '['
	default:
		return '('
	}
}

// splitArgs splits on commas that are not nested inside delimiters.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[', '(':
			depth++
		case '>', ']', ')':
			if !isArrow(s, i) {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// MarshalYAML renders the reference as its angle-bracket text.
func (t TypeRef) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML parses a reference from its text.
func (t *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	*t = Parse(text)
	return nil
}
