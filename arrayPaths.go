// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

// DeriveArrayPaths collects the instance paths Emit shapes as arrays under
// policy. A materializer forcing these paths into arrays produces data that
// matches the emitted schema. A nil schema yields an empty set.
func DeriveArrayPaths(schema *Schema, policy ArrayPolicy) PathSet {
	paths := PathSet{}
	if schema == nil {
		return paths
	}
	newWalker(schema, func(ele *Element, path string, inSequence, repeats bool) {
		if (repeats && policy.TreatUnboundedAsArray) || isArrayElement(policy, ele, inSequence) {
			paths.add(path)
		}
	}).walk(schema)
	return paths
}
