// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// applyMinInclusive maps the minInclusive facet to minimum. MinInclusive
// specifies the lower bounds for numeric values (the value must be greater
// than or equal to this value).
func applyMinInclusive(s *jsonschema.Schema, f *Facet) {
	if v, ok := parseFacetFloat(f); ok {
		s.Minimum = jsonNumber(&v)
	}
}
