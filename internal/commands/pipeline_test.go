// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaulhaber/proc-macro-workshop/internal/config"
	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render/rust"
	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
)

func TestResolveWrapper(t *testing.T) {
	p := &rust.Printer{}

	assert.Equal(t, "Maybe", resolveWrapper("Maybe", &config.Config{OptionalWrapper: "Opt"}, p))
	assert.Equal(t, "Opt", resolveWrapper("", &config.Config{OptionalWrapper: "Opt"}, p))
	assert.Equal(t, "Option", resolveWrapper("", &config.Config{}, p))
	assert.Equal(t, "Option", resolveWrapper("", nil, p))
}

func TestResolvePrinter(t *testing.T) {
	printers := testPrinters()

	p, err := resolvePrinter(printers, "rust", &config.Config{Format: "go"})
	require.NoError(t, err)
	assert.Equal(t, "rust", p.Name())

	p, err = resolvePrinter(printers, "", &config.Config{Format: "go"})
	require.NoError(t, err)
	assert.Equal(t, "go", p.Name())

	_, err = resolvePrinter(printers, "", &config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available formats: go, rust")
}

func TestLoadPlans(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "point.yaml")
	writeFile(t, file, pointRust)

	plans, err := loadPlans(file, "Option", logger.Discard())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "PointBuilder", plans[0].BuilderName)
	assert.Equal(t, []string{"x"}, plans[0].Required())

	writeFile(t, filepath.Join(dir, "unit.yaml"), "name: Marker\nkind: unit\n")
	_, err = loadPlans(filepath.Join(dir, "unit.yaml"), "Option", logger.Discard())
	assert.ErrorIs(t, err, schema.ErrUnsupportedShape)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "point_builder.go", outputName("defs/point.yaml", ".go"))
	assert.Equal(t, "order_builder.rs", outputName("order.json", ".rs"))
}

func TestPackageFromDir(t *testing.T) {
	assert.Equal(t, "models", packageFromDir("out/models"))
	assert.Equal(t, "geometryv2", packageFromDir("geometry-v2"))
	assert.Equal(t, "", packageFromDir("2d"))
}
