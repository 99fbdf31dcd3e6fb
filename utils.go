// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"math"
	"strconv"
	"strings"
)

const (
	// AttributePrefix prefixes attribute names in emitted properties and in
	// materialized XML instances.
	AttributePrefix = "@_"
	// TextNodeName is the property holding the text of simpleContent.
	TextNodeName = "#text"

	unbounded = "unbounded"
)

// nameStack tracks the declarations currently being resolved along the
// active path. A name may be revisited on a sibling branch once popped.
type nameStack map[string]struct{}

// push reports false when name is already on the path.
func (s nameStack) push(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s nameStack) pop(name string) {
	delete(s, name)
}

// guards holds one nameStack per declaration kind.
type guards struct {
	complexTypes nameStack
	simpleTypes  nameStack
	groups       nameStack
}

func newGuards() *guards {
	return &guards{
		complexTypes: nameStack{},
		simpleTypes:  nameStack{},
		groups:       nameStack{},
	}
}

func isRequired(ele *Element) bool {
	return ele.MinOccurs != "0" && ele.Use != "optional"
}

func isUnbounded(maxOccurs string) bool {
	return maxOccurs == unbounded
}

// isArrayElement reports whether an element is shaped as an array under
// policy. Only unbounded elements nested in a sequence qualify.
func isArrayElement(policy ArrayPolicy, ele *Element, inSequence bool) bool {
	if !inSequence || !isUnbounded(ele.MaxOccurs) {
		return false
	}
	if policy.TreatUnboundedAsArray {
		return true
	}
	for _, name := range policy.ArrayElementNames {
		if name == ele.Name {
			return true
		}
	}
	return false
}

// groupState is accumulated while descending through group references.
type groupState struct {
	optional bool
	repeats  bool
}

func (s groupState) enter(ref *Group) groupState {
	return groupState{
		optional: s.optional || ref.MinOccurs == "0",
		repeats:  s.repeats || isUnbounded(ref.MaxOccurs),
	}
}

// parseFacetFloat parses a numeric facet value, reporting false for
// anything that is not a finite number.
func parseFacetFloat(f *Facet) (float64, bool) {
	if f == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseFacetUint parses a length facet value.
func parseFacetUint(f *Facet) (uint64, bool) {
	if f == nil {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(f.Value), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// joinPath appends name to a dot separated instance path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
