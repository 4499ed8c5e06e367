// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gosrc renders builder plans as Go source.
package gosrc

import (
	"bytes"
	"embed"
	"fmt"
	"slices"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/tools/imports"

	"github.com/rfaulhaber/proc-macro-workshop/internal/builder"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/typeref"
)

const (
	// RuntimeImport provides the default wrapper and the missing-field error.
	RuntimeImport = "github.com/rfaulhaber/proc-macro-workshop/pkg/option"
	// DefaultWrapper is the wrapper type exported by RuntimeImport.
	DefaultWrapper = "option.Option"
	// DefaultPackage is used when no package name is given.
	DefaultPackage = "builders"
)

//go:embed gosrc.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(sprig.TxtFuncMap()).ParseFS(tmplFS, "gosrc.go.tmpl"))

// Printer renders Go builders backed by the option runtime package.
//
// The optional wrapper must be package-qualified (pkg.Type). Generated code
// calls pkg.Some(v) and pkg.None[T]() to fill storage and reads it back with
// a Get() (T, bool) method, so a replacement wrapper package has to provide
// all three. Missing required fields are always reported through the
// runtime package's option.Missing.
type Printer struct{}

// Name returns the printer identifier.
func (p *Printer) Name() string {
	return "go"
}

// FileExtension returns the file extension for Go source files.
func (p *Printer) FileExtension() string {
	return ".go"
}

// DefaultWrapper returns option.Option.
func (p *Printer) DefaultWrapper() string {
	return DefaultWrapper
}

type fileData struct {
	Source   string
	Package  string
	Imports  []string
	EmitType bool
	Plans    []planData
}

type planData struct {
	TypeName string
	Builder  string
	Factory  string
	Fields   []fieldData
}

type fieldData struct {
	Name        string
	RecordType  string
	Storage     string
	StorageType string
	Setter      string
	Param       string
	Optional    bool
	Init        string
	Some        string
}

// Render converts plans to a single gofmt'ed Go file.
func (p *Printer) Render(plans []*builder.Plan, opts render.Options) ([]byte, error) {
	data := fileData{
		Source:   opts.Source,
		Package:  opts.Package,
		Imports:  []string{RuntimeImport},
		EmitType: opts.EmitType,
	}
	if data.Package == "" {
		data.Package = DefaultPackage
	}
	if data.Source == "" {
		data.Source = "a builder plan"
	}
	for _, imp := range opts.Imports {
		if !slices.Contains(data.Imports, imp) {
			data.Imports = append(data.Imports, imp)
		}
	}

	for _, plan := range plans {
		pd, err := preparePlan(plan)
		if err != nil {
			return nil, err
		}
		data.Plans = append(data.Plans, pd)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gosrc.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := imports.Process(data.Package+"_builder.go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}

// preparePlan maps plan names to Go identifiers. Fields whose names differ
// only in case can map to the same storage field or setter, which is an error.
func preparePlan(plan *builder.Plan) (planData, error) {
	q := qualifier(plan.Wrapper)
	if q == "" {
		return planData{}, fmt.Errorf("%s: optional wrapper %q must be package-qualified (pkg.Type) for Go output",
			plan.TypeName, plan.Wrapper)
	}
	pd := planData{
		TypeName: plan.TypeName,
		Builder:  typeIdent(plan.BuilderName, plan.BuilderVisibility),
		Factory:  typeIdent("New"+exported(plan.BuilderName), plan.BuilderVisibility),
		Fields:   make([]fieldData, 0, len(plan.Storage)),
	}

	storageOwner := make(map[string]string, len(plan.Storage))
	setterOwner := make(map[string]string, len(plan.Setters))

	for i, storage := range plan.Storage {
		setter := plan.Setters[i]
		fd := fieldData{
			Name:        storage.Name,
			Storage:     unexported(storage.Name),
			StorageType: storage.Type.Format(typeref.Square),
			Setter:      setterName(setter.Name, setter.Visibility),
			Param:       setter.Param.Format(typeref.Square),
			Optional:    plan.Assembly[i].Optional,
			Some:        q + "Some",
		}
		if other, ok := storageOwner[fd.Storage]; ok {
			return planData{}, fmt.Errorf("%s: fields %q and %q both map to builder field %q",
				plan.TypeName, other, storage.Name, fd.Storage)
		}
		storageOwner[fd.Storage] = storage.Name
		if other, ok := setterOwner[fd.Setter]; ok {
			return planData{}, fmt.Errorf("%s: fields %q and %q both map to setter %q",
				plan.TypeName, other, storage.Name, fd.Setter)
		}
		setterOwner[fd.Setter] = storage.Name

		if fd.Optional {
			fd.RecordType = fd.StorageType
		} else {
			fd.RecordType = fd.Param
		}
		if storage.Init == builder.InitAbsent {
			fd.Init = q + "None[" + fd.Param + "]()"
		}
		pd.Fields = append(pd.Fields, fd)
	}
	return pd, nil
}
