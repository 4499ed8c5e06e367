// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierValidator(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"Option", ""},
		{"option.Option", ""},
		{"_Maybe2", ""},
		{"", "name is required"},
		{"2Option", "must start with letter or underscore"},
		{"Option<T>", "must contain only letters, numbers, underscores"},
		{"option.", "must not end with a dot"},
		{".Option", "must start with letter or underscore"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := IdentifierValidator(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	v := requiredValidator("output directory")
	assert.NoError(t, v("out"))
	assert.EqualError(t, v(""), "output directory is required")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{{Label: "Format", Value: "go"}}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Format:")
	assert.Contains(t, out, "go")
	assert.Contains(t, out, "Done")
}

func TestPrintErrors(t *testing.T) {
	var buf bytes.Buffer
	PrintErrors(&buf, []string{"a.yaml: boom"})

	assert.Contains(t, buf.String(), "Errors:")
	assert.Contains(t, buf.String(), "a.yaml: boom")
}

func TestFormatOptions(t *testing.T) {
	opts := formatOptions([]string{"go", "rust"})
	assert.Len(t, opts, 2)
	assert.Equal(t, "rust", opts[1].Value)
}
