// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// complexType resolves the content of a complex type. complexContent and
// simpleContent extensions take precedence over a plain sequence.
func (gen *SchemaGenerator) complexType(ct *ComplexType) *jsonschema.Schema {
	if s := gen.complexContentExtension(ct.ComplexContent); s != nil {
		return s
	}
	if s := gen.simpleContentExtension(ct.SimpleContent); s != nil {
		return s
	}
	return gen.objectSchema(ct.Sequence, nil)
}

// objectSchema builds an object from a sequence and a list of attributes.
func (gen *SchemaGenerator) objectSchema(seq *Sequence, attributes []*Attribute) *jsonschema.Schema {
	def := &jsonschema.Schema{
		Type:       "object",
		Properties: newProperties(),
		Required:   []string{},
	}
	gen.appendSequence(def, seq, groupState{})
	gen.appendAttributes(def, attributes)
	return def
}

// appendSequence adds the elements of seq, then the content of its group
// references, to def.
func (gen *SchemaGenerator) appendSequence(def *jsonschema.Schema, seq *Sequence, state groupState) {
	if seq == nil {
		return
	}
	forceArray := state.repeats && gen.Options.TreatUnboundedAsArray
	for _, ele := range seq.Elements {
		if ele == nil {
			continue
		}
		prop := gen.element(ele, true, forceArray)
		if prop == nil {
			continue
		}
		def.Properties.Set(ele.Name, prop)
		if !state.optional && isRequired(ele) {
			def.Required = appendRequired(def.Required, ele.Name)
		}
	}
	for _, ref := range seq.Groups {
		if ref == nil {
			continue
		}
		gen.appendGroup(def, ref, state)
	}
}
