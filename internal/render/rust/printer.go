// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust renders builder plans as Rust source, in the shape of a
// Builder derive expansion.
package rust

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/rfaulhaber/proc-macro-workshop/internal/builder"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
)

//go:embed rust.rs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(sprig.TxtFuncMap()).Funcs(template.FuncMap{
	"vis": func(v schema.Visibility) string {
		if v == schema.Private {
			return ""
		}
		return string(v) + " "
	},
}).ParseFS(tmplFS, "rust.rs.tmpl"))

// Printer renders Rust builders.
type Printer struct{}

// Name returns the printer identifier.
func (p *Printer) Name() string {
	return "rust"
}

// FileExtension returns the file extension for Rust source files.
func (p *Printer) FileExtension() string {
	return ".rs"
}

// DefaultWrapper returns Option.
func (p *Printer) DefaultWrapper() string {
	return builder.DefaultWrapper
}

type fileData struct {
	Source   string
	Imports  []string
	EmitType bool
	Plans    []planData
}

type planData struct {
	*builder.Plan
	Some   string
	None   string
	Fields []fieldData
}

type fieldData struct {
	Visibility schema.Visibility
	Name       string
	RecordType string
	Storage    string
	Param      string
	Optional   bool
	Absent     bool
}

// Render converts plans to Rust source.
func (p *Printer) Render(plans []*builder.Plan, opts render.Options) ([]byte, error) {
	data := fileData{
		Source:   opts.Source,
		Imports:  opts.Imports,
		EmitType: opts.EmitType,
	}
	if data.Source == "" {
		data.Source = "a builder plan"
	}

	for _, plan := range plans {
		pd := planData{Plan: plan, Some: "Some", None: "None"}
		if plan.Wrapper != builder.DefaultWrapper {
			pd.Some = plan.Wrapper + "::Some"
			pd.None = plan.Wrapper + "::None"
		}
		for i, storage := range plan.Storage {
			fd := fieldData{
				Visibility: storage.Visibility,
				Name:       storage.Name,
				Storage:    storage.Type.String(),
				Param:      plan.Setters[i].Param.String(),
				Optional:   plan.Assembly[i].Optional,
				Absent:     storage.Init == builder.InitAbsent,
			}
			if fd.Optional {
				fd.RecordType = fd.Storage
			} else {
				fd.RecordType = fd.Param
			}
			pd.Fields = append(pd.Fields, fd)
		}
		data.Plans = append(data.Plans, pd)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "rust.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
