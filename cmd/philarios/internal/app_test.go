// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philarios/philarios/internal/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()

	err := Run(context.Background(), []string{"generate", "--builtin", "concourse", "--output", dir}, func(string) string { return "" })
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "concourse_gen.go"))
}

func TestRun_UnsupportedShapeFails(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "grid.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`name: grid
package: grid
types:
  - struct: Grid
    fields:
      - name: rows
        type: list<map<string,int>>
`), 0o600))

	err := Run(context.Background(), []string{"generate", "--schema", schemaPath, "--output", filepath.Join(dir, "out")}, func(string) string { return "" })
	assert.ErrorIs(t, err, codegen.ErrUnsupportedShape)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), []string{"frobnicate"}, nil)
	assert.Error(t, err)
}
