// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"strings"
)

// ParseType parses a type expression such as "list<Step>", "map<string,any>",
// "option<int>" or "int?". Unknown identifiers become a Ref.
func ParseType(expr string) (Type, error) {
	t, err := parseType(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("%w: type %q: %w", ErrInvalidSchema, expr, err)
	}
	return t, nil
}

func parseType(s string) (Type, error) {
	if s == "" {
		return nil, fmt.Errorf("empty type expression")
	}
	if inner, ok := strings.CutSuffix(s, "?"); ok {
		t, err := parseType(strings.TrimSpace(inner))
		if err != nil {
			return nil, err
		}
		return Option{Inner: t}, nil
	}

	name, args, generic, err := splitGeneric(s)
	if err != nil {
		return nil, err
	}
	if !generic {
		for _, p := range Primitives {
			if s == string(p) {
				return p, nil
			}
		}
		if !isIdent(s) {
			return nil, fmt.Errorf("invalid type name %q", s)
		}
		return Ref{Name: s}, nil
	}

	want := map[string]int{"list": 1, "option": 1, "map": 2}
	n, ok := want[name]
	if !ok {
		return nil, fmt.Errorf("unknown generic type %q", name)
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d type arguments, got %d", name, n, len(args))
	}

	params := make([]Type, len(args))
	for i, a := range args {
		t, err := parseType(a)
		if err != nil {
			return nil, err
		}
		params[i] = t
	}

	switch name {
	case "list":
		return List{Inner: params[0]}, nil
	case "option":
		return Option{Inner: params[0]}, nil
	default:
		return Map{Key: params[0], Value: params[1]}, nil
	}
}

// splitGeneric splits "name<a, b<c>>" into its name and top-level arguments.
func splitGeneric(s string) (name string, args []string, generic bool, err error) {
	open := strings.IndexByte(s, '<')
	if open < 0 {
		if strings.ContainsAny(s, ">,") {
			return "", nil, false, fmt.Errorf("unbalanced type expression %q", s)
		}
		return s, nil, false, nil
	}
	if !strings.HasSuffix(s, ">") {
		return "", nil, false, fmt.Errorf("unbalanced type expression %q", s)
	}

	name = strings.TrimSpace(s[:open])
	body := s[open+1 : len(s)-1]
	depth, start := 0, 0
	for i, r := range body {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", nil, false, fmt.Errorf("unbalanced type expression %q", s)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, false, fmt.Errorf("unbalanced type expression %q", s)
	}
	args = append(args, strings.TrimSpace(body[start:]))
	return name, args, true, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
