// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// complexContentExtension expresses inheritance as allOf of the base type and
// an object holding the extension's own sequence and attributes.
func (gen *SchemaGenerator) complexContentExtension(cc *ComplexContent) *jsonschema.Schema {
	if cc == nil || cc.Extension == nil || cc.Extension.Base == "" {
		return nil
	}
	ext := cc.Extension
	return &jsonschema.Schema{
		AllOf: []*jsonschema.Schema{
			gen.typeSchema(ext.Base),
			gen.objectSchema(ext.Sequence, ext.Attributes),
		},
	}
}
