// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"strings"

	"github.com/invopop/jsonschema"
)

// applyPatterns anchors each pattern facet. A single pattern is set in
// place; several patterns must all match, so they become allOf entries.
func applyPatterns(s *jsonschema.Schema, facets []Facet) {
	switch len(facets) {
	case 0:
		return
	case 1:
		s.Pattern = normalizeXSDPattern(facets[0].Value)
		return
	}
	s.AllOf = make([]*jsonschema.Schema, 0, len(facets))
	for _, f := range facets {
		s.AllOf = append(s.AllOf, &jsonschema.Schema{Pattern: normalizeXSDPattern(f.Value)})
	}
}

// normalizeXSDPattern turns an implicitly anchored XSD pattern into an
// explicitly anchored ECMA-262 one.
func normalizeXSDPattern(pattern string) string {
	return "^(?:" + escapeXSDAnchors(pattern) + ")$"
}

// escapeXSDAnchors escapes ^ and $ outside character classes, where XSD
// treats them as literals. Characters following a backslash and the content
// of character classes are left untouched.
func escapeXSDAnchors(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	escaped, inClass := false, false
	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			inClass = r != ']'
		case r == '[':
			inClass = true
		case r == '^' || r == '$':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
