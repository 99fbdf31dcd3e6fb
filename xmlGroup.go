// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "github.com/invopop/jsonschema"

// appendGroup inlines the sequence of a referenced group into def. Unknown
// groups and groups already being expanded on the current path are skipped.
func (gen *SchemaGenerator) appendGroup(def *jsonschema.Schema, ref *Group, state groupState) {
	if ref.Ref == "" {
		return
	}
	seq := gen.registry.groupSequence(ref.Ref)
	if seq == nil {
		gen.log.Debug("skipping unresolvable group reference", "ref", ref.Ref)
		return
	}
	if !gen.guards.groups.push(ref.Ref) {
		gen.log.Debug("skipping recursive group reference", "ref", ref.Ref)
		return
	}
	defer gen.guards.groups.pop(ref.Ref)
	gen.appendSequence(def, seq, state.enter(ref))
}
