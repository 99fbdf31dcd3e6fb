// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

// registry indexes the named top-level declarations of a schema. Complex
// types, simple types and groups live in independent namespaces.
type registry struct {
	complexTypes map[string]*ComplexType
	simpleTypes  map[string]*SimpleType
	groups       map[string]*Group
}

func newRegistry(schema *Schema) *registry {
	reg := &registry{
		complexTypes: make(map[string]*ComplexType, len(schema.ComplexTypes)),
		simpleTypes:  make(map[string]*SimpleType, len(schema.SimpleTypes)),
		groups:       make(map[string]*Group, len(schema.Groups)),
	}
	for _, ct := range schema.ComplexTypes {
		if ct != nil && ct.Name != "" {
			reg.complexTypes[ct.Name] = ct
		}
	}
	for _, st := range schema.SimpleTypes {
		if st != nil && st.Name != "" {
			reg.simpleTypes[st.Name] = st
		}
	}
	for _, g := range schema.Groups {
		if g != nil && g.Name != "" {
			reg.groups[g.Name] = g
		}
	}
	return reg
}

// groupSequence returns the sequence of a named group definition, or nil when the
// group is unknown or has no sequence.
func (r *registry) groupSequence(name string) *Sequence {
	if g := r.groups[name]; g != nil {
		return g.Sequence
	}
	return nil
}
