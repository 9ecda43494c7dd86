// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philarios/philarios/internal/codegen"
	"github.com/philarios/philarios/internal/config"
	"github.com/philarios/philarios/internal/export"
	"github.com/philarios/philarios/internal/schemas"
	"github.com/philarios/philarios/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(func(k string) string { return env[k] })

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerate_Builtin(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, nil, "generate", "--builtin", "canvas", "--output", dir)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "canvas_gen.go")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(src), "package canvas\n")
	assert.Contains(t, stdout, "Generated 1 of 1 packages")
}

func TestGenerate_PackageOverride(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, nil, "generate", "-b", "domain", "-o", dir, "-p", "model")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "domain_gen.go")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(src), "package model\n")
}

func TestGenerate_SchemaFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, nil, "generate", "--schema", "testdata/shop.yaml", "--output", dir)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "shop_gen.go")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (b *OrderBuilder[C]) PutLinesProductFunc(")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported shape",
			args:    []string{"generate", "--schema", "testdata/grid.yaml", "--output", "OUT"},
			wantErr: codegen.ErrUnsupportedShape,
		},
		{
			name:    "unknown builtin",
			args:    []string{"generate", "--builtin", "nope", "--output", "OUT"},
			wantErr: schemas.ErrUnknownSchema,
		},
		{
			name:    "missing output",
			args:    []string{"generate", "--builtin", "canvas"},
			wantMsg: "--output is required",
		},
		{
			name:    "output without source",
			args:    []string{"generate", "--output", "OUT"},
			wantMsg: "--output and --package require --builtin or --schema",
		},
		{
			name:    "both sources",
			args:    []string{"generate", "--builtin", "canvas", "--schema", "x.yaml", "--output", "OUT"},
			wantMsg: "none of the others can be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			// Project loading must not find a config for the flag-only cases.
			t.Chdir(dir)
			out := filepath.Join(dir, "out")

			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				if a == "OUT" {
					a = out
				}
				if filepath.Ext(a) == ".yaml" && a != "x.yaml" {
					a = filepath.Join(testdataDir, filepath.Base(a))
				}
				args[i] = a
			}

			_, _, err := execute(t, nil, args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "nothing is written on failure")
		})
	}
}

func TestGenerate_ConfiguredTargets(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Targets: []config.Target{
			{Builtin: "concourse", Output: "gen/concourse"},
			{Builtin: "filesystem", Output: "gen/fs", Package: "fs"},
		},
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	t.Chdir(dir)

	stdout, _, err := execute(t, nil, "generate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 2 of 2 packages")

	assert.FileExists(t, filepath.Join(dir, "gen", "concourse", "concourse_gen.go"))
	src, err := os.ReadFile(filepath.Join(dir, "gen", "fs", "filesystem_gen.go")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fs\n")
}

func TestGenerate_NotInitialized(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, nil, "generate")
	assert.ErrorIs(t, err, session.ErrNotInitialized)
}

func TestGenerate_LogsAtConfiguredLevel(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, nil, "--log-level", "info", "generate", "-b", "canvas", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote generated code")

	_, stderr, err = execute(t, map[string]string{EnvLogLevel: "debug"}, "--log-format", "json", "generate", "-b", "canvas", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"@message":"generating target"`)

	_, stderr, err = execute(t, nil, "generate", "-b", "canvas", "-o", dir)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := execute(t, nil, "init", "--builtin", "concourse", "--output", "dsl/concourse", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, []config.Target{{Builtin: "concourse", Output: "dsl/concourse"}}, cfg.Targets)

	_, _, err = execute(t, nil, "init", "--builtin", "canvas", "--output", "x", "--non-interactive")
	assert.ErrorContains(t, err, "already initialized")
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    initOptions
		wantMsg string
	}{
		{
			name:    "no source",
			opts:    initOptions{output: "out", nonInteractive: true},
			wantMsg: "requires either --builtin or --schema",
		},
		{
			name:    "unknown builtin",
			opts:    initOptions{builtin: "nope", output: "out", nonInteractive: true},
			wantMsg: "unknown builtin schema",
		},
		{
			name:    "no output",
			opts:    initOptions{builtin: "canvas", nonInteractive: true},
			wantMsg: "output is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var buf bytes.Buffer

			err := runInit(&buf, dir, &tt.opts)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.NoFileExists(t, filepath.Join(dir, config.FileName))
		})
	}
}

func TestSchemasList(t *testing.T) {
	stdout, _, err := execute(t, nil, "schemas", "list")
	require.NoError(t, err)

	for _, name := range schemas.Names() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "NAME")
}

func TestSchemasDescribe(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "text",
			args: []string{"schemas", "describe", "canvas"},
			want: []string{"canvas (package canvas)", "Shape", "union", "Circle | Square | Polyline", "struct keyed by name", "list<Style>"},
		},
		{
			name: "yaml",
			args: []string{"schemas", "describe", "canvas", "-o", "yaml"},
			want: []string{"name: canvas", "union: Shape", "enum: Color"},
		},
		{
			name: "json file",
			args: []string{"schemas", "describe", "testdata/shop.yaml", "-o", "json"},
			want: []string{`"name": "shop"`, `"struct": "Product"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, nil, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}
		})
	}
}

func TestSchemasDescribe_BadFormat(t *testing.T) {
	_, _, err := execute(t, nil, "schemas", "describe", "canvas", "-o", "xml")
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}

func TestSchemasExport(t *testing.T) {
	stdout, _, err := execute(t, nil, "schemas", "export", "concourse", "--root", "Pipeline")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"$ref": "#/$defs/Pipeline"`)
	assert.Contains(t, stdout, `"$defs"`)

	_, _, err = execute(t, nil, "schemas", "export", "concourse", "--root", "Nope")
	assert.ErrorIs(t, err, export.ErrUnknownRoot)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version:")

	stdout, _, err = execute(t, nil, "version", "--short")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)
}

// testdataDir is resolved before any test changes the working directory.
var testdataDir = func() string {
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	return dir
}()
