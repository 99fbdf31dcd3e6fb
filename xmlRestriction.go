// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// restriction renders a restriction of a primitive base type. The base
// mapping comes first, then enumeration, then string or numeric facets
// depending on the resolved JSON type. Restrictions of non-primitive bases
// resolve to nil.
func (gen *SchemaGenerator) restriction(r *Restriction) *jsonschema.Schema {
	if r.Base == "" {
		return nil
	}
	m, ok := gen.types[r.Base]
	if !ok {
		gen.log.Debug("skipping restriction of non-primitive base", "base", r.Base)
		return nil
	}
	s := m.schema()
	gen.tagOrigin(s, r.Base)

	applyEnumeration(s, r.Enumerations)
	switch s.Type {
	case "string":
		applyMinLength(s, r.MinLength)
		applyMaxLength(s, r.MaxLength)
		applyLength(s, r.Length)
		applyPatterns(s, r.Patterns)
	case "number", "integer":
		applyMinInclusive(s, r.MinInclusive)
		applyMaxInclusive(s, r.MaxInclusive)
		applyMinExclusive(s, r.MinExclusive)
		applyMaxExclusive(s, r.MaxExclusive)
	}
	return s
}
