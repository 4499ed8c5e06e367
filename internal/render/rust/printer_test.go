// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaulhaber/proc-macro-workshop/internal/builder"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
)

func commandPlan(t *testing.T, opts ...builder.SynthOption) *builder.Plan {
	t.Helper()
	s, err := schema.Extract(schema.Definition{
		Name:       "Command",
		Visibility: schema.Public,
		Fields: []schema.DefinitionField{
			{Name: "executable", Type: "String"},
			{Name: "args", Type: "Vec<String>"},
			{Visibility: schema.Public, Name: "current_dir", Type: "Option<String>"},
		},
	})
	require.NoError(t, err)
	p, err := builder.Synthesize(s, opts...)
	require.NoError(t, err)
	return p
}

func TestRender_Command(t *testing.T) {
	out, err := (&Printer{}).Render([]*builder.Plan{commandPlan(t)}, render.Options{Source: "command.yaml"})
	require.NoError(t, err)

	result := string(out)

	assert.Contains(t, result, "// Code generated by buildergen from command.yaml. DO NOT EDIT.")
	assert.Contains(t, result, "pub struct CommandBuilder {")
	assert.Contains(t, result, "    executable: Option<String>,")
	assert.Contains(t, result, "    args: Option<Vec<String>>,")
	assert.Contains(t, result, "    pub current_dir: Option<String>,")

	assert.Contains(t, result, "impl Command {")
	assert.Contains(t, result, "pub fn builder() -> CommandBuilder {")
	assert.Contains(t, result, "executable: None,")
	assert.Contains(t, result, "current_dir: ::std::default::Default::default(),")

	assert.Contains(t, result, "pub fn build(&self) -> ::std::result::Result<Command,")
	assert.Contains(t, result, "executable: match &self.executable {")
	assert.Contains(t, result, "Some(v) => v.clone(),")
	assert.Contains(t, result, `None => return ::std::result::Result::Err("missing required field: executable".into()),`)
	assert.Contains(t, result, "current_dir: self.current_dir.clone(),")

	assert.Contains(t, result, "fn executable(&mut self, arg: String) -> &mut Self {")
	assert.Contains(t, result, "fn args(&mut self, arg: Vec<String>) -> &mut Self {")
	assert.Contains(t, result, "pub fn current_dir(&mut self, arg: String) -> &mut Self {")
	assert.Contains(t, result, "self.current_dir = Some(arg);")
	assert.NotContains(t, result, "struct Command {")
}

func TestRender_EmitTypeAndImports(t *testing.T) {
	out, err := (&Printer{}).Render([]*builder.Plan{commandPlan(t)}, render.Options{
		EmitType: true,
		Imports:  []string{"std::collections::HashMap"},
	})
	require.NoError(t, err)

	result := string(out)

	assert.Contains(t, result, "use std::collections::HashMap;")
	assert.Contains(t, result, "#[derive(Debug, Clone, PartialEq)]")
	assert.Contains(t, result, "pub struct Command {")
	assert.Contains(t, result, "    executable: String,")
	assert.Contains(t, result, "    pub current_dir: Option<String>,")
}

func TestRender_CustomWrapper(t *testing.T) {
	s, err := schema.Extract(schema.Definition{
		Name:   "Probe",
		Fields: []schema.DefinitionField{{Name: "id", Type: "u64"}, {Name: "note", Type: "Maybe<String>"}},
	})
	require.NoError(t, err)
	p, err := builder.Synthesize(s, builder.WithWrapper("Maybe"))
	require.NoError(t, err)

	out, err := (&Printer{}).Render([]*builder.Plan{p}, render.Options{})
	require.NoError(t, err)

	result := string(out)

	assert.Contains(t, result, "struct ProbeBuilder {")
	assert.NotContains(t, result, "pub struct ProbeBuilder")
	assert.Contains(t, result, "id: Maybe<u64>,")
	assert.Contains(t, result, "id: Maybe::None,")
	assert.Contains(t, result, "Maybe::Some(v) => v.clone(),")
	assert.Contains(t, result, "self.note = Maybe::Some(arg);")
}

func TestPrinter_Metadata(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "rust", p.Name())
	assert.Equal(t, ".rs", p.FileExtension())
	assert.Equal(t, "Option", p.DefaultWrapper())
}
