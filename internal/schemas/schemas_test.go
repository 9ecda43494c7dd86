// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemas

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/philarios/philarios/internal/codegen"
	"github.com/philarios/philarios/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"canvas", "concourse", "domain", "filesystem"}, Names())
}

func TestGet(t *testing.T) {
	s, err := Get("Concourse")
	require.NoError(t, err)
	assert.Equal(t, "concourse", s.Name)

	_, err = Get("kubernetes")
	require.ErrorIs(t, err, ErrUnknownSchema)
	assert.Contains(t, err.Error(), "canvas, concourse, domain, filesystem")
}

func TestGet_ReturnsCopies(t *testing.T) {
	a, err := Get("canvas")
	require.NoError(t, err)
	a.Types = nil

	b, err := Get("canvas")
	require.NoError(t, err)
	assert.NotEmpty(t, b.Types)
}

func TestBuiltins_Generate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Get(name)
			require.NoError(t, err)
			require.NoError(t, schema.Validate(s))

			_, err = codegen.Generate(context.Background(), s)
			require.NoError(t, err)
		})
	}
}

// The checked-in DSL packages must declare exactly what the generator emits.
func TestBuiltins_CheckedInCodeIsCurrent(t *testing.T) {
	for _, name := range []string{"canvas", "concourse"} {
		t.Run(name, func(t *testing.T) {
			s, err := Get(name)
			require.NoError(t, err)

			src, err := codegen.Generate(context.Background(), s)
			require.NoError(t, err)

			path := filepath.Join("..", "..", "dsl", name, codegen.FileName(s))
			checkedIn, err := os.ReadFile(path)
			require.NoError(t, err)

			assert.Equal(t, declarations(t, src), declarations(t, checkedIn))
		})
	}
}

// declarations lists the top-level identifiers of a Go file, methods qualified
// by their receiver type.
func declarations(t *testing.T, src []byte) map[string]struct{} {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)

	out := make(map[string]struct{})
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) == 1 {
				name = receiverName(d.Recv.List[0].Type) + "." + name
			}
			out[name] = struct{}{}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					out[s.Name.Name] = struct{}{}
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out[n.Name] = struct{}{}
					}
				}
			}
		}
	}
	return out
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return "?"
	}
}
