// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"point", "Point"},
		{"check_every", "CheckEvery"},
		{"checkEvery", "CheckEvery"},
		{"registry-image", "RegistryImage"},
		{"id", "ID"},
		{"source_url", "SourceURL"},
		{"s3", "S3"},
		{"TaskConfig", "TaskConfig"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"canvas", "canvas"},
		{"FileSystem", "file_system"},
		{"my-schema", "my_schema"},
		{"concourse2", "concourse2"},
		{"trailing-", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}
