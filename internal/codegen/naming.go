// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import "strings"

// acronyms are fully uppercased in generated identifiers.
var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"tls":  "TLS",
	"ssh":  "SSH",
	"cpu":  "CPU",
	"uri":  "URI",
}

// ToPascalCase converts a snake_case, kebab-case or camelCase name to an
// exported Go identifier.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		if acronym, ok := acronyms[strings.ToLower(part)]; ok {
			sb.WriteString(acronym)
		} else {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}

// ToSnakeCase converts a name to snake_case for file names.
func ToSnakeCase(s string) string {
	var sb strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLower {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			prevLower = false
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevLower = true
		default:
			if sb.Len() > 0 && prevLower {
				sb.WriteByte('_')
			}
			prevLower = false
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}
