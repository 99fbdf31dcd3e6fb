// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "encoding/xml"

// Schema is the root of a parsed XSD document. Only the top-level
// declarations the converter understands are decoded; everything else is
// dropped by the decoder.
type Schema struct {
	XMLName      xml.Name       `xml:"schema"`
	Elements     []*Element     `xml:"element"`
	ComplexTypes []*ComplexType `xml:"complexType"`
	SimpleTypes  []*SimpleType  `xml:"simpleType"`
	Groups       []*Group       `xml:"group"`
}

// Element describes an element declaration, either top-level or nested in a
// sequence. MinOccurs and MaxOccurs keep their lexical form, an empty value
// stands for the XSD default of 1.
type Element struct {
	Name        string       `xml:"name,attr"`
	Type        string       `xml:"type,attr"`
	MinOccurs   string       `xml:"minOccurs,attr"`
	MaxOccurs   string       `xml:"maxOccurs,attr"`
	Use         string       `xml:"use,attr"`
	ComplexType *ComplexType `xml:"complexType"`
	SimpleType  *SimpleType  `xml:"simpleType"`
}

// Attribute describes an attribute declaration of a complex type extension.
type Attribute struct {
	Name       string      `xml:"name,attr"`
	Type       string      `xml:"type,attr"`
	Use        string      `xml:"use,attr"`
	SimpleType *SimpleType `xml:"simpleType"`
}

// ComplexType describes a named or anonymous complex type. In practice only
// one of Sequence, SimpleContent and ComplexContent is set.
type ComplexType struct {
	Name           string          `xml:"name,attr"`
	Sequence       *Sequence       `xml:"sequence"`
	SimpleContent  *SimpleContent  `xml:"simpleContent"`
	ComplexContent *ComplexContent `xml:"complexContent"`
}

// Sequence holds the ordered child elements and group references of a
// content model.
type Sequence struct {
	Elements []*Element `xml:"element"`
	Groups   []*Group   `xml:"group"`
}

// Group is either a named model group definition (Name and Sequence set) or
// a reference to one (Ref and occurrence bounds set).
type Group struct {
	Name      string    `xml:"name,attr"`
	Ref       string    `xml:"ref,attr"`
	MinOccurs string    `xml:"minOccurs,attr"`
	MaxOccurs string    `xml:"maxOccurs,attr"`
	Sequence  *Sequence `xml:"sequence"`
}

// SimpleContent wraps the text-only content model of a complex type.
type SimpleContent struct {
	Extension   *Extension   `xml:"extension"`
	Restriction *Restriction `xml:"restriction"`
}

// ComplexContent wraps the derived content model of a complex type.
type ComplexContent struct {
	Extension *Extension `xml:"extension"`
}

// Extension adds a sequence and attributes on top of a base type.
type Extension struct {
	Base       string       `xml:"base,attr"`
	Sequence   *Sequence    `xml:"sequence"`
	Attributes []*Attribute `xml:"attribute"`
}

// SimpleType describes a named or anonymous simple type. Exactly one of
// Restriction, Union and List is expected.
type SimpleType struct {
	Name        string       `xml:"name,attr"`
	Restriction *Restriction `xml:"restriction"`
	Union       *Union       `xml:"union"`
	List        *List        `xml:"list"`
}

// Restriction narrows a base type with facets.
type Restriction struct {
	Base         string  `xml:"base,attr"`
	Enumerations []Facet `xml:"enumeration"`
	Patterns     []Facet `xml:"pattern"`
	MinInclusive *Facet  `xml:"minInclusive"`
	MaxInclusive *Facet  `xml:"maxInclusive"`
	MinExclusive *Facet  `xml:"minExclusive"`
	MaxExclusive *Facet  `xml:"maxExclusive"`
	MinLength    *Facet  `xml:"minLength"`
	MaxLength    *Facet  `xml:"maxLength"`
	Length       *Facet  `xml:"length"`
}

// Facet carries the value attribute shared by all constraining facets.
type Facet struct {
	Value string `xml:"value,attr"`
}

// Union lists the space separated member types of a union simple type.
type Union struct {
	MemberTypes string `xml:"memberTypes,attr"`
}

// List declares a whitespace separated list of items, typed either by name
// or by an inline simple type.
type List struct {
	ItemType   string      `xml:"itemType,attr"`
	SimpleType *SimpleType `xml:"simpleType"`
}
