// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/philarios/philarios/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Schema", Value: "canvas"},
		{Label: "Output", Value: "dsl/canvas"},
	}, "Generated")

	out := buf.String()
	assert.Contains(t, out, "Schema:")
	assert.Contains(t, out, "canvas")
	assert.Contains(t, out, "dsl/canvas")
	assert.Contains(t, out, "Generated")
}

func TestPackageValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "", wantErr: false},
		{in: "canvas", wantErr: false},
		{in: "my_dsl", wantErr: false},
		{in: "my-dsl", wantErr: true},
		{in: "1st", wantErr: true},
		{in: "func", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := PackageValidator(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSelectForms_NoChoices(t *testing.T) {
	var v string
	assert.ErrorIs(t, RunSchemaSelectForm("Schema", &v, nil), errNoChoices)
	assert.ErrorIs(t, RunRootSelectForm(&v, &schema.Schema{Name: "empty"}), errNoChoices)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "struct", kindOf(schema.Struct{Name: "A"}))
	assert.Equal(t, "union", kindOf(schema.Union{Name: "U"}))
	assert.Equal(t, "enum", kindOf(schema.Enum{Name: "E"}))
}
