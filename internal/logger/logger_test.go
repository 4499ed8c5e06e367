// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf})

	l.Debug("hidden")
	l.Info("shown", "type", "Point")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "type=Point")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: DebugLevel, Output: &buf, JSON: true})

	l.Debug("plan", "fields", 2)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"plan"`)
	assert.Contains(t, out, `"fields"`)
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: WarnLevel, Output: &buf})

	ctx := WithContext(context.Background(), l)
	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Warn("careful")

	assert.Contains(t, buf.String(), "careful")
	assert.NotNil(t, FromContext(context.Background()))
}
