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

// union renders an xs:union as anyOf over its member types, in declaration
// order.
func (gen *SchemaGenerator) union(u *Union) *jsonschema.Schema {
	members := strings.Fields(u.MemberTypes)
	if len(members) == 0 {
		return nil
	}
	anyOf := make([]*jsonschema.Schema, 0, len(members))
	for _, member := range members {
		anyOf = append(anyOf, gen.unionMember(member))
	}
	return &jsonschema.Schema{AnyOf: anyOf}
}

// unionMember never carries an origin type tag.
func (gen *SchemaGenerator) unionMember(name string) *jsonschema.Schema {
	if m, ok := gen.types[name]; ok {
		return m.schema()
	}
	return &jsonschema.Schema{Ref: gen.dialect.ref(name)}
}
