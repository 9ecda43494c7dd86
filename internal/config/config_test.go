// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Targets: []Target{
			{Builtin: "canvas", Output: "dsl/canvas"},
			{Schema: "shop.yaml", Output: "shop", Package: "shop"},
		},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, &cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "target without source",
			cfg:     Config{Version: 1, Targets: []Target{{Output: "out"}}},
			wantErr: "targets[0]: invalid target: one of builtin or schema is required",
		},
		{
			name:    "target with both sources",
			cfg:     Config{Version: 1, Targets: []Target{{Builtin: "canvas", Schema: "a.yaml", Output: "out"}}},
			wantErr: "mutually exclusive",
		},
		{
			name:    "target without output",
			cfg:     Config{Version: 1, Targets: []Target{{Builtin: "canvas"}}},
			wantErr: "output is required",
		},
		{
			name:    "bad package",
			cfg:     Config{Version: 1, Targets: []Target{{Builtin: "canvas", Output: "out", Package: "my-dsl"}}},
			wantErr: `package "my-dsl" is not a Go identifier`,
		},
		{
			name: "shared output",
			cfg: Config{Version: 1, Targets: []Target{
				{Builtin: "canvas", Output: "out"},
				{Builtin: "domain", Output: "out"},
			}},
			wantErr: "targets[1]: invalid target: output out already used by targets[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateReportsEveryTarget(t *testing.T) {
	cfg := Config{Version: 1, Targets: []Target{
		{Output: "a"},
		{Builtin: "canvas", Output: "b"},
		{Builtin: "canvas"},
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Contains(t, err.Error(), "targets[0]")
	assert.Contains(t, err.Error(), "targets[2]")
	assert.NotContains(t, err.Error(), "targets[1]")
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Targets: []Target{{Builtin: "concourse", Output: "dsl/concourse"}},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "builtin: concourse")
	assert.Contains(t, output, "output: dsl/concourse")
	assert.NotContains(t, output, "package:")
	assert.NotContains(t, output, "schema:")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "concourse", cfg.Targets[0].Source())
	assert.Equal(t, "schemas/inventory.yaml", cfg.Targets[1].Source())
	assert.Equal(t, "inventory", cfg.Targets[1].Package)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_UnknownField(t *testing.T) {
	_, err := Load("testdata/unknown-field.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}
