// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

// elementVisitor is called once per element occurrence reached by a walk,
// with the element's dot separated instance path. inSequence is set for
// sequence children, repeats when an enclosing group reference on the path
// is unbounded.
type elementVisitor func(ele *Element, path string, inSequence, repeats bool)

// walker traverses the instance tree a schema describes, following named
// complex types, complexContent bases and group references the same way the
// emission engine resolves them. Named complex types and groups are guarded
// against cycles on the active path.
type walker struct {
	registry *registry
	guards   *guards
	visit    elementVisitor
}

func newWalker(schema *Schema, visit elementVisitor) *walker {
	return &walker{
		registry: newRegistry(schema),
		guards:   newGuards(),
		visit:    visit,
	}
}

func (w *walker) walk(schema *Schema) {
	for _, ele := range schema.Elements {
		if ele != nil {
			w.element(ele, "", false, false)
		}
	}
}

func (w *walker) element(ele *Element, parent string, inSequence, repeats bool) {
	if ele.Name == "" {
		return
	}
	path := joinPath(parent, ele.Name)
	w.visit(ele, path, inSequence, repeats)

	ct := ele.ComplexType
	if ct == nil && ele.Type != "" {
		ct = w.registry.complexTypes[ele.Type]
	}
	if ct != nil {
		w.complexType(ct, path)
	}
}

// complexType mirrors SchemaGenerator.complexType: an extension's own
// sequence and its base type share the instance path, simpleContent has no
// child elements, anything else is a plain sequence.
func (w *walker) complexType(ct *ComplexType, path string) {
	if ct.Name != "" {
		if !w.guards.complexTypes.push(ct.Name) {
			return
		}
		defer w.guards.complexTypes.pop(ct.Name)

		// A named type is emitted once as a definition, so group expansion
		// inside it starts from an empty stack.
		groups := w.guards.groups
		w.guards.groups = nameStack{}
		defer func() { w.guards.groups = groups }()
	}
	if cc := ct.ComplexContent; cc != nil && cc.Extension != nil && cc.Extension.Base != "" {
		w.sequence(cc.Extension.Sequence, path, groupState{})
		if base := w.registry.complexTypes[cc.Extension.Base]; base != nil {
			w.complexType(base, path)
		}
		return
	}
	if sc := ct.SimpleContent; sc != nil && sc.Extension != nil && sc.Extension.Base != "" {
		return
	}
	w.sequence(ct.Sequence, path, groupState{})
}

func (w *walker) sequence(seq *Sequence, path string, state groupState) {
	if seq == nil {
		return
	}
	for _, ele := range seq.Elements {
		if ele != nil {
			w.element(ele, path, true, state.repeats)
		}
	}
	for _, ref := range seq.Groups {
		if ref == nil || ref.Ref == "" {
			continue
		}
		groupSeq := w.registry.groupSequence(ref.Ref)
		if groupSeq == nil || !w.guards.groups.push(ref.Ref) {
			continue
		}
		w.sequence(groupSeq, path, state.enter(ref))
		w.guards.groups.pop(ref.Ref)
	}
}
