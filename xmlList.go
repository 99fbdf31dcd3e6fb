// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// list renders an xs:list as an array of its item type.
func (gen *SchemaGenerator) list(l *List) *jsonschema.Schema {
	var items *jsonschema.Schema
	switch {
	case l.ItemType != "":
		items = gen.typeSchema(l.ItemType)
	case l.SimpleType != nil:
		items = gen.simpleType(l.SimpleType)
	}
	if items == nil {
		return nil
	}
	return &jsonschema.Schema{Type: "array", Items: items}
}
