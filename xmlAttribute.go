// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// appendAttributes adds one prefixed property per resolvable attribute.
func (gen *SchemaGenerator) appendAttributes(def *jsonschema.Schema, attributes []*Attribute) {
	for _, attr := range attributes {
		if attr == nil || attr.Name == "" {
			continue
		}
		prop := gen.attribute(attr)
		if prop == nil {
			gen.log.Debug("skipping unresolvable attribute", "attribute", attr.Name)
			continue
		}
		name := AttributePrefix + attr.Name
		def.Properties.Set(name, prop)
		if attr.Use == "required" {
			def.Required = appendRequired(def.Required, name)
		}
	}
}

func (gen *SchemaGenerator) attribute(attr *Attribute) *jsonschema.Schema {
	if attr.Type != "" {
		return gen.typeSchema(attr.Type)
	}
	if attr.SimpleType != nil {
		return gen.simpleType(attr.SimpleType)
	}
	return nil
}
