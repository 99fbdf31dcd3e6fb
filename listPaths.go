// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

// DeriveListPaths collects the instance paths of elements typed as xs:list,
// inline or through a chain of named simple type restrictions. Their text is
// split on whitespace by the materializer. A nil schema yields an empty set.
func DeriveListPaths(schema *Schema) PathSet {
	paths := PathSet{}
	if schema == nil {
		return paths
	}
	w := newWalker(schema, nil)
	w.visit = func(ele *Element, path string, _, _ bool) {
		inline := ele.SimpleType != nil && ele.SimpleType.List != nil
		if inline || (ele.Type != "" && w.isListType(w.registry.simpleTypes[ele.Type])) {
			paths.add(path)
		}
	}
	w.walk(schema)
	return paths
}

// isListType follows restriction bases until it meets a list, an unknown
// type, or a base already on the chain.
func (w *walker) isListType(st *SimpleType) bool {
	if st == nil {
		return false
	}
	if st.List != nil {
		return true
	}
	if st.Restriction == nil || st.Restriction.Base == "" {
		return false
	}
	base := st.Restriction.Base
	if !w.guards.simpleTypes.push(base) {
		return false
	}
	defer w.guards.simpleTypes.pop(base)
	return w.isListType(w.registry.simpleTypes[base])
}
