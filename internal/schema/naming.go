// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// Common Go acronyms that should be fully uppercased.
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
	"uri":  "URI",
	"uuid": "UUID",
}

// ToPascalCase converts a snake_case, kebab-case or camelCase string to PascalCase.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
