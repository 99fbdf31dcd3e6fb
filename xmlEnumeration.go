// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// applyEnumeration restricts s to the enumerated lexical values.
func applyEnumeration(s *jsonschema.Schema, facets []Facet) {
	if len(facets) == 0 {
		return
	}
	s.Enum = make([]any, 0, len(facets))
	for _, f := range facets {
		s.Enum = append(s.Enum, f.Value)
	}
}
