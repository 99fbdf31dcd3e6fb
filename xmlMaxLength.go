// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// applyMaxLength maps the maxLength facet. MaxLength specifies the maximum
// number of characters or list items allowed. Must be equal to or greater
// than zero.
func applyMaxLength(s *jsonschema.Schema, f *Facet) {
	if v, ok := parseFacetUint(f); ok {
		s.MaxLength = &v
	}
}
