// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typeref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want TypeRef
	}{
		{name: "plain", text: "i32", want: Plain("i32")},
		{name: "qualified plain", text: "time.Time", want: Plain("time.Time")},
		{name: "angle generic", text: "Option<i32>", want: Generic("Option", Plain("i32"))},
		{name: "square generic", text: "option.Option[int]", want: Generic("option.Option", Plain("int"))},
		{name: "surrounding space", text: "  Option< String >  ", want: Generic("Option", Plain("String"))},
		{
			name: "nested",
			text: "Option<Vec<u8>>",
			want: Generic("Option", Generic("Vec", Plain("u8"))),
		},
		{
			name: "two arguments",
			text: "HashMap<String, Vec<i32>>",
			want: Generic("HashMap", Plain("String"), Generic("Vec", Plain("i32"))),
		},
		{
			name: "path segments",
			text: "std::option::Option<T>",
			want: Generic("std::option::Option", Plain("T")),
		},
		{
			name: "closure with return arrow",
			text: "Option<Box<dyn Fn(i32) -> i32>>",
			want: Generic("Option", Generic("Box", Plain("dyn Fn(i32) -> i32"))),
		},
		{
			name: "function pointer with return arrow",
			text: "Option<fn() -> u8>",
			want: Generic("Option", Plain("fn() -> u8")),
		},
		{
			name: "return arrow next to a comma",
			text: "Result<fn(u8) -> u8, String>",
			want: Generic("Result", Plain("fn(u8) -> u8"), Plain("String")),
		},
		{name: "go slice", text: "[]string", want: Plain("[]string")},
		{name: "go pointer", text: "*User", want: Plain("*User")},
		{name: "go map", text: "map[string]int", want: Plain("map[string]int")},
		{name: "empty arguments", text: "Option<>", want: Plain("Option<>")},
		{name: "unbalanced", text: "Option<i32", want: Plain("Option<i32")},
		{name: "mismatched delimiters", text: "Option<i32]", want: Plain("Option<i32]")},
		{name: "empty argument in list", text: "Pair<A,>", want: Plain("Pair<A,>")},
		{
			name: "slice argument",
			text: "option.Option[[]string]",
			want: Generic("option.Option", Plain("[]string")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			assert.True(t, tt.want.Equal(got), "Parse(%q) = %#v, want %#v", tt.text, got, tt.want)
		})
	}
}

func TestTypeRef_Format(t *testing.T) {
	ref := Generic("Option", Generic("HashMap", Plain("String"), Plain("i32")))

	assert.Equal(t, "Option<HashMap<String, i32>>", ref.String())
	assert.Equal(t, "Option[HashMap[String, i32]]", ref.Format(Square))
	assert.Equal(t, "[]string", Plain("[]string").Format(Square))
}

func TestTypeRef_Predicates(t *testing.T) {
	plain := Plain("i32")
	generic := Generic("Option", plain)

	assert.False(t, plain.IsGeneric())
	assert.Equal(t, 0, plain.Arity())
	assert.True(t, generic.IsGeneric())
	assert.Equal(t, 1, generic.Arity())
	assert.True(t, TypeRef{}.IsZero())
	assert.False(t, plain.IsZero())
	assert.False(t, generic.Equal(Generic("Option", Plain("i64"))))
	assert.False(t, generic.Equal(plain))
}

func TestParse_RoundTrip(t *testing.T) {
	for _, text := range []string{"i32", "Option<i32>", "Result<Vec<u8>, String>", "[]int"} {
		assert.Equal(t, text, Parse(text).String())
	}
}

func TestTypeRef_YAML(t *testing.T) {
	type holder struct {
		Type TypeRef `yaml:"type"`
	}

	data, err := yaml.Marshal(holder{Type: Generic("Option", Plain("i32"))})
	require.NoError(t, err)
	assert.Equal(t, "type: Option<i32>\n", string(data))

	var decoded holder
	require.NoError(t, yaml.Unmarshal([]byte("type: option.Option[int]\n"), &decoded))
	assert.True(t, Generic("option.Option", Plain("int")).Equal(decoded.Type))
}
