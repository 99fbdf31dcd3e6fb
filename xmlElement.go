// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"strconv"

	"github.com/invopop/jsonschema"
)

// element resolves an element declaration into a property schema. inSequence
// is set for sequence children, forceArray when an enclosing group repeats
// and unbounded elements are shaped as arrays. A nil result means the
// element carries nothing resolvable and is omitted from its parent.
func (gen *SchemaGenerator) element(ele *Element, inSequence, forceArray bool) *jsonschema.Schema {
	if ele.Name == "" {
		return nil
	}
	if forceArray || isArrayElement(gen.Options.ArrayPolicy, ele, inSequence) {
		prop := &jsonschema.Schema{Type: "array"}
		if n, err := strconv.ParseUint(ele.MinOccurs, 10, 64); err == nil && n > 0 {
			prop.MinItems = &n
		}
		prop.Items = gen.element(ele, false, false)
		if prop.Items == nil {
			// Unconstrained items; an empty schema marshals as true.
			prop.Items = &jsonschema.Schema{}
		}
		return prop
	}

	prop := &jsonschema.Schema{}
	if ele.SimpleType != nil {
		if def := gen.simpleType(ele.SimpleType); def != nil {
			mergeSchema(prop, def)
		} else {
			gen.log.Debug("unresolvable inline simple type", "element", ele.Name)
		}
	} else if ele.Type != "" {
		mergeSchema(prop, gen.typeSchema(ele.Type))
	}
	if ele.ComplexType != nil {
		mergeSchema(prop, gen.complexType(ele.ComplexType))
	}
	if isEmptySchema(prop) {
		return nil
	}
	return prop
}
