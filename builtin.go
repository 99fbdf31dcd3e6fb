// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"encoding/json"
	"maps"
	"math"
	"strconv"

	"github.com/invopop/jsonschema"
)

// TypeMapping is the JSON Schema rendition of an XSD primitive type.
type TypeMapping struct {
	Type             string   `yaml:"type" json:"type" validate:"required,oneof=string number integer boolean object array null"`
	Format           string   `yaml:"format,omitempty" json:"format,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
}

func bound(v float64) *float64 { return &v }

var buildInTypes = map[string]TypeMapping{
	"xs:string":             {Type: "string"},
	"xs:boolean":            {Type: "boolean"},
	"xs:decimal":            {Type: "number"},
	"xs:float":              {Type: "number"},
	"xs:double":             {Type: "number"},
	"xs:duration":           {Type: "string", Format: "duration"},
	"xs:dateTime":           {Type: "string", Format: "date-time"},
	"xs:time":               {Type: "string", Format: "time"},
	"xs:date":               {Type: "string", Format: "date"},
	"xs:gYearMonth":         {Type: "string", Format: "date"},
	"xs:gYear":              {Type: "string", Format: "date"},
	"xs:gMonthDay":          {Type: "string", Format: "date"},
	"xs:gDay":               {Type: "string", Format: "date"},
	"xs:gMonth":             {Type: "string", Format: "date"},
	"xs:hexBinary":          {Type: "string", Format: "byte"},
	"xs:base64Binary":       {Type: "string", Format: "byte"},
	"xs:anyURI":             {Type: "string", Format: "uri"},
	"xs:QName":              {Type: "string"},
	"xs:NOTATION":           {Type: "string"},
	"xs:normalizedString":   {Type: "string"},
	"xs:token":              {Type: "string"},
	"xs:language":           {Type: "string"},
	"xs:NMTOKEN":            {Type: "string"},
	"xs:Name":               {Type: "string"},
	"xs:NCName":             {Type: "string"},
	"xs:ID":                 {Type: "string"},
	"xs:IDREF":              {Type: "string"},
	"xs:IDREFS":             {Type: "string"},
	"xs:ENTITY":             {Type: "string"},
	"xs:ENTITIES":           {Type: "string"},
	"xs:integer":            {Type: "integer"},
	"xs:nonPositiveInteger": {Type: "integer", Maximum: bound(0)},
	"xs:negativeInteger":    {Type: "integer", ExclusiveMaximum: bound(0)},
	"xs:long":               {Type: "integer"},
	"xs:int":                {Type: "integer"},
	"xs:short":              {Type: "integer"},
	"xs:byte":               {Type: "integer"},
	"xs:nonNegativeInteger": {Type: "integer", Minimum: bound(0)},
	"xs:unsignedLong":       {Type: "integer"},
	"xs:unsignedInt":        {Type: "integer"},
	"xs:unsignedShort":      {Type: "integer"},
	"xs:unsignedByte":       {Type: "integer"},
	"xs:positiveInteger":    {Type: "integer", ExclusiveMinimum: bound(0)},
}

// BuildInTypes returns a copy of the built-in XSD primitive type table.
func BuildInTypes() map[string]TypeMapping {
	return maps.Clone(buildInTypes)
}

// typeTable is the primitive table of a single conversion: the built-in
// entries with the caller's overrides merged on top.
type typeTable map[string]TypeMapping

func newTypeTable(overrides map[string]TypeMapping) typeTable {
	table := maps.Clone(buildInTypes)
	maps.Copy(table, overrides)
	return typeTable(table)
}

func (t typeTable) isPrimitive(name string) bool {
	_, ok := t[name]
	return ok
}

// schema renders the full mapping, bounds included.
func (m TypeMapping) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: m.Type, Format: m.Format}
	s.Minimum = jsonNumber(m.Minimum)
	s.Maximum = jsonNumber(m.Maximum)
	s.ExclusiveMinimum = jsonNumber(m.ExclusiveMinimum)
	s.ExclusiveMaximum = jsonNumber(m.ExclusiveMaximum)
	return s
}

func jsonNumber(v *float64) json.Number {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return ""
	}
	return json.Number(strconv.FormatFloat(*v, 'f', -1, 64))
}
