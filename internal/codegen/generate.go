// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen turns a schema into the Go source of its DSL: resolved value
// types, shells, builders and specs.
package codegen

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/philarios/philarios/internal/ctxlog"
	"github.com/philarios/philarios/internal/schema"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("codegen").Funcs(template.FuncMap{
	"comment": comment,
	"join":    strings.Join,
	"wrap":    wrap,
	"pair":    pair,
}).ParseFS(tmplFS, "templates/*.tmpl"))

// Generate renders the formatted Go source for s.
func Generate(ctx context.Context, s *schema.Schema) ([]byte, error) {
	log := ctxlog.FromContext(ctx).Named("codegen")

	file, err := Build(s)
	if err != nil {
		return nil, err
	}

	for i := range file.Structs {
		st := &file.Structs[i]
		for j := range st.Params {
			p := &st.Params[j]
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, p.Kind.String(), *p); err != nil {
				return nil, fmt.Errorf("failed to render %s.%s: %w", st.Name, p.Method, err)
			}
			p.Code = buf.String()
			log.Trace("rendered param", "type", st.SchemaName, "field", p.Schema, "kind", p.Kind, "method", p.Method)
		}
		log.Debug("generated struct", "type", st.SchemaName, "fields", len(st.Fields), "methods", len(st.Params))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file", file); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// FileName returns the name of the file generated for s.
func FileName(s *schema.Schema) string {
	return ToSnakeCase(s.Name) + "_gen.go"
}

// Write generates s into outDir and returns the path of the written file.
func Write(ctx context.Context, s *schema.Schema, outDir string) (string, error) {
	src, err := Generate(ctx, s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outDir, FileName(s))
	if err := os.WriteFile(path, src, 0o644); err != nil { //nolint:gosec
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Info("wrote generated code", "schema", s.Name, "path", path)
	return path, nil
}

func comment(doc, fallback string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = fallback
	}
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(l), " ")
	}
	return strings.Join(lines, "\n")
}

// wrap adapts expr to the union the param stages into.
func wrap(p Param, expr string) string {
	if p.Union == "" {
		return expr
	}
	return fmt.Sprintf("scaffold.Map[*%s, %s](%s, func(v *%s) %s { return v })", p.Target, p.Union, expr, p.Target, p.Union)
}

func pair(p Param, key, val string) string {
	if p.Node {
		return fmt.Sprintf("scaffold.Pair[%s, scaffold.Scaffold[%s]](%s, %s)", p.Key, p.Type, key, val)
	}
	return fmt.Sprintf("scaffold.Pair(%s, %s)", key, val)
}
