// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gosrc

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rfaulhaber/proc-macro-workshop/internal/schema"
)

// exported returns s with its first rune uppercased.
func exported(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// unexported lowercases the leading run of capitals, so "ID" becomes "id"
// and "URLPath" becomes "urlPath". Keywords get a trailing underscore.
func unexported(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) {
		// keep the last capital as the start of the next word
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	out := string(runes)
	if token.IsKeyword(out) {
		out += "_"
	}
	return out
}

// typeIdent applies Go's case-based visibility to a declared name.
func typeIdent(name string, vis schema.Visibility) string {
	if vis.IsPublic() {
		return exported(name)
	}
	return unexported(name)
}

// setterName names the setter for a field. Public fields get the exported
// field name; others get an unexported set-prefixed name.
func setterName(field string, vis schema.Visibility) string {
	if vis.IsPublic() || token.IsExported(field) {
		name := exported(field)
		if name == "Build" {
			return "SetBuild"
		}
		return name
	}
	return "set" + exported(field)
}

// qualifier returns the package prefix of a qualified name, including the dot.
func qualifier(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i+1]
	}
	return ""
}
