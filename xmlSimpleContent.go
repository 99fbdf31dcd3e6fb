// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// simpleContentExtension renders text content with attributes as an object
// whose #text property holds the base type.
func (gen *SchemaGenerator) simpleContentExtension(sc *SimpleContent) *jsonschema.Schema {
	if sc == nil || sc.Extension == nil || sc.Extension.Base == "" {
		return nil
	}
	def := &jsonschema.Schema{
		Type:       "object",
		Properties: newProperties(),
		Required:   []string{TextNodeName},
	}
	def.Properties.Set(TextNodeName, gen.typeSchema(sc.Extension.Base))
	gen.appendAttributes(def, sc.Extension.Attributes)
	return def
}
