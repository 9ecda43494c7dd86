// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philarios/philarios/internal/ctxlog"
	"github.com/philarios/philarios/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := Generate(context.Background(), testSchema())
	require.NoError(t, err)
	out := string(src)

	_, err = parser.ParseFile(token.NewFileSet(), "shapes_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	snippets := []string{
		"// Code generated by philarios from the shapes schema. DO NOT EDIT.",
		"package shapes",
		`"github.com/philarios/philarios/scaffold"`,
		"type Shape interface {\n\tisShape()\n}",
		"func (*Circle) isShape() {}",
		`ColorDarkBlue Color = "dark-blue"`,
		"return []Color{ColorRed, ColorDarkBlue}",
		"X int32 `yaml:\"x\"`",
		`return nil, scaffold.MissingField("Point", "x")`,
		"out.X = *s.X",
		"out.Tags = slices.Clone(s.Tags)",
		"scaffold.GoEach(g, s.Shapes, &out.Shapes)",
		"if s.Origin != nil {\n\t\tscaffold.Go(g, s.Origin, &out.Origin)\n\t}",
		"scaffold.GoEntries(g, s.Anchors, &out.Anchors)",
		"if err := scaffold.Register(reg, out.Name, out); err != nil {",
		"func (b *CanvasBuilder[C]) MainCircleFunc(body func(b *CircleBuilder[C])) {",
		"b.Shell().Main = scaffold.Map[*Circle, Shape](CircleSpec[C](body).Connect(b.Context()), func(v *Circle) Shape { return v })",
		"b.Shell().Origin = scaffold.Ref[*Point](name)",
		"s.Anchors = append(s.Anchors, scaffold.Pair[Color, scaffold.Scaffold[*Point]](k, scaffold.Wrap(v)))",
		"s.Palette = append(s.Palette, scaffold.Pair(k, v))",
		"s.Tags = append(s.Tags, vs...)",
		"func IncludeCanvasForEach[C, D any](b *CanvasBuilder[C], ds iter.Seq[D], spec CanvasSpec[D]) {",
		"spec(&CanvasBuilder[D]{Builder: scaffold.Split(b.Builder, d)})",
	}
	for _, s := range snippets {
		assert.Contains(t, out, s)
	}

	// Resolving a struct without aggregate fields needs no group.
	pointResolve := out[strings.Index(out, "func (s *PointShell) Resolve"):]
	pointResolve = pointResolve[:strings.Index(pointResolve, "\n}\n")]
	assert.NotContains(t, pointResolve, "NewGroup")
	assert.NotContains(t, pointResolve, "Register")

	// Shapes without fields get no func/spec/ref methods.
	assert.NotContains(t, out, "MainEmptyFunc")
}

func TestGenerate_EnumsOnly(t *testing.T) {
	s := &schema.Schema{Name: "colors", Package: "colors", Types: []schema.Type{
		schema.Enum{Name: "Color", Doc: "Color is a paint color.", Values: []string{"red"}},
	}}

	src, err := Generate(context.Background(), s)
	require.NoError(t, err)
	assert.NotContains(t, string(src), "import")
	assert.Contains(t, string(src), "// Color is a paint color.\ntype Color string")
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(&buf, "trace", "text"))

	_, err := Generate(ctx, testSchema())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "generated struct")
	assert.Contains(t, buf.String(), "method=MainCircleFunc")
}

func TestGenerate_UnsupportedShape(t *testing.T) {
	s := testSchema()
	s.Types = append(s.Types, schema.Struct{Name: "Grid", Fields: []schema.Field{
		schema.F("cells", schema.ListOf(schema.ListOf(schema.String))),
	}})

	_, err := Generate(context.Background(), s)
	require.ErrorIs(t, err, ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "Grid.cells")
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := Write(context.Background(), testSchema(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shapes_gen.go"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Code generated by philarios"))
}

func TestWrite_FailsWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	s := testSchema()
	s.Types = append(s.Types, schema.Struct{Name: "Bad", Fields: []schema.Field{
		schema.F("k", schema.MapOf(schema.RefTo("Shape"), schema.Int)),
	}})

	_, err := Write(context.Background(), s, dir)
	require.ErrorIs(t, err, ErrUnsupportedShape)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
