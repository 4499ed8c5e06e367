// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfaulhaber/proc-macro-workshop/internal/config"
	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		config      string // empty means no buildergen.yaml
		env         map[string]string
		wantErr     error
		wantWrapper string
		wantFormat  string
		wantFile    bool
	}{
		{
			name:       "defaults without config file",
			wantFormat: "go",
		},
		{
			name:        "config file",
			config:      "version: 1\noptional_wrapper: Option\nformat: rust\n",
			wantWrapper: "Option",
			wantFormat:  "rust",
			wantFile:    true,
		},
		{
			name:        "environment overrides file",
			config:      "version: 1\noptional_wrapper: Option\n",
			env:         map[string]string{config.EnvOptionalWrapper: "Maybe"},
			wantWrapper: "Maybe",
			wantFile:    true,
		},
		{
			name:    "unsupported version",
			config:  "version: 7\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			config:  "version: [\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				writeConfig(t, dir, tt.config)
			}

			ctx, err := Load(context.Background(), Options{
				Dir:       dir,
				Getenv:    func(k string) string { return tt.env[k] },
				LogOutput: &bytes.Buffer{},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sess := From(ctx)
			require.NotNil(t, sess)
			assert.Equal(t, dir, sess.Dir)
			assert.Equal(t, tt.wantFile, sess.FromFile)
			assert.Equal(t, tt.wantWrapper, sess.Config.OptionalWrapper)
			assert.Equal(t, tt.wantFormat, sess.Config.Format)
			assert.NotNil(t, logger.FromContext(ctx))
		})
	}
}

func TestLoad_TraceEnablesDebugLogging(t *testing.T) {
	var buf bytes.Buffer

	ctx, err := Load(context.Background(), Options{Dir: t.TempDir(), LogOutput: &buf, Trace: true})
	require.NoError(t, err)

	sess := From(ctx)
	require.NotNil(t, sess)
	assert.True(t, sess.Config.Trace)
	assert.Contains(t, buf.String(), "configuration loaded")
}

func TestLoad_StoresConfiguredLogger(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 1\nlog_format: json\n")

	var buf bytes.Buffer
	ctx, err := Load(context.Background(), Options{Dir: dir, LogOutput: &buf})
	require.NoError(t, err)

	logger.FromContext(ctx).Info("hello", "plan", "PointBuilder")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"hello"`)
	assert.Contains(t, out, `"PointBuilder"`)
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand_NotLoaded(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	assert.Nil(t, FromCommand(cmd))
	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)
}

func TestPreRunLoad_WithCommandExecution(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 1\nformat: rust\n")

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	var captured *Context

	rootCmd := &cobra.Command{
		Use:               "test",
		PersistentPreRunE: PreRunLoad(func(string) string { return "" }),
	}
	rootCmd.PersistentFlags().Bool(TraceFlag, false, "")
	rootCmd.SetErr(&bytes.Buffer{})

	subCmd := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, requireErr := RequireFromCommand(cmd)
			captured = ctx
			return requireErr
		},
	}
	rootCmd.AddCommand(subCmd)

	rootCmd.SetArgs([]string{"sub", "--trace"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	require.NotNil(t, captured)
	assert.Equal(t, "rust", captured.Config.Format)
	assert.True(t, captured.Config.Trace)
	assert.True(t, captured.FromFile)
}

func TestPreRunLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 2\n")

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	rootCmd := &cobra.Command{
		Use:               "test",
		PersistentPreRunE: PreRunLoad(nil),
		RunE:              func(*cobra.Command, []string) error { return nil },
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetArgs([]string{})

	err := rootCmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
