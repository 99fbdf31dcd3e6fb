// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// simpleType resolves a simple type, named or inline, by its shape: list,
// restriction or union. It returns nil when the type cannot be expressed.
func (gen *SchemaGenerator) simpleType(st *SimpleType) *jsonschema.Schema {
	if st.Name != "" {
		if !gen.guards.simpleTypes.push(st.Name) {
			return nil
		}
		defer gen.guards.simpleTypes.pop(st.Name)
	}
	switch {
	case st.List != nil:
		return gen.list(st.List)
	case st.Restriction != nil:
		return gen.restriction(st.Restriction)
	case st.Union != nil:
		return gen.union(st.Union)
	}
	return nil
}
