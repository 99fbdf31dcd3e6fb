// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"io"
	"log/slog"
	"reflect"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// originTypeKey is the keyword carrying the source XSD type name.
const originTypeKey = "xsdOriginType"

// SchemaGenerator holds the state of a single XSD to JSON Schema
// conversion. A generator is not reused across schemas.
type SchemaGenerator struct {
	Schema  *Schema
	Options Options

	types    typeTable
	dialect  dialectConfig
	registry *registry
	guards   *guards
	log      *slog.Logger
}

// NewSchemaGenerator prepares a conversion of schema with opts.
func NewSchemaGenerator(schema *Schema, opts Options) (*SchemaGenerator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, ErrNoSchema
	}
	return &SchemaGenerator{
		Schema:   schema,
		Options:  opts,
		types:    newTypeTable(opts.TypeMappings),
		dialect:  lookupDialect(opts.SchemaDialect),
		registry: newRegistry(schema),
		guards:   newGuards(),
		log:      opts.logger(),
	}, nil
}

// Emit converts a parsed schema into a JSON Schema document.
func Emit(schema *Schema, opts Options) (*jsonschema.Schema, error) {
	gen, err := NewSchemaGenerator(schema, opts)
	if err != nil {
		return nil, err
	}
	return gen.GenJSONSchema()
}

// Convert parses XSD text from r and converts it into a JSON Schema
// document.
func Convert(r io.Reader, opts Options) (*jsonschema.Schema, error) {
	schema, err := ParseXSD(r)
	if err != nil {
		return nil, err
	}
	return Emit(schema, opts)
}

// GenJSONSchema generates the JSON Schema document: one property per
// top-level element, and one definition per named simple or complex type.
func (gen *SchemaGenerator) GenJSONSchema() (*jsonschema.Schema, error) {
	if len(gen.Schema.Elements) == 0 {
		return nil, ErrNoRootElement
	}
	doc := &jsonschema.Schema{
		Version:    gen.dialect.schemaURI,
		Type:       "object",
		Properties: newProperties(),
		Required:   []string{},
	}
	for _, ele := range gen.Schema.Elements {
		if ele == nil {
			continue
		}
		prop := gen.element(ele, false, false)
		if prop == nil {
			continue
		}
		doc.Properties.Set(ele.Name, prop)
		if isRequired(ele) {
			doc.Required = appendRequired(doc.Required, ele.Name)
		}
	}

	defs := jsonschema.Definitions{}
	for _, st := range gen.Schema.SimpleTypes {
		if st == nil || st.Name == "" {
			continue
		}
		if def := gen.simpleType(st); def != nil {
			defs[st.Name] = def
		} else {
			gen.log.Debug("skipping simple type definition", "name", st.Name)
		}
	}
	for _, ct := range gen.Schema.ComplexTypes {
		if ct == nil || ct.Name == "" {
			continue
		}
		defs[ct.Name] = gen.complexType(ct)
	}
	gen.dialect.attach(doc, defs)
	return doc, nil
}

// typeSchema renders a reference to a named type: the primitive mapping
// without bounds, or a $ref into the definitions container.
func (gen *SchemaGenerator) typeSchema(name string) *jsonschema.Schema {
	var s *jsonschema.Schema
	if m, ok := gen.types[name]; ok {
		s = &jsonschema.Schema{Type: m.Type, Format: m.Format}
	} else {
		s = &jsonschema.Schema{Ref: gen.dialect.ref(name)}
	}
	gen.tagOrigin(s, name)
	return s
}

func (gen *SchemaGenerator) tagOrigin(s *jsonschema.Schema, name string) {
	if !gen.Options.ShowOriginTypes || name == "" {
		return
	}
	if s.Extras == nil {
		s.Extras = make(map[string]any)
	}
	s.Extras[originTypeKey] = name
}

func newProperties() *orderedmap.OrderedMap[string, *jsonschema.Schema] {
	return orderedmap.New[string, *jsonschema.Schema]()
}

func appendRequired(required []string, name string) []string {
	for _, r := range required {
		if r == name {
			return required
		}
	}
	return append(required, name)
}

func isEmptySchema(s *jsonschema.Schema) bool {
	return s == nil || reflect.DeepEqual(*s, jsonschema.Schema{})
}

// mergeSchema copies every keyword set on src over dst, the later writer
// winning on collisions.
func mergeSchema(dst, src *jsonschema.Schema) {
	if src == nil {
		return
	}
	if src.Type != "" {
		dst.Type = src.Type
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Ref != "" {
		dst.Ref = src.Ref
	}
	if src.Properties != nil {
		dst.Properties = src.Properties
	}
	if src.Required != nil {
		dst.Required = src.Required
	}
	if src.Items != nil {
		dst.Items = src.Items
	}
	if src.Enum != nil {
		dst.Enum = src.Enum
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.Minimum != "" {
		dst.Minimum = src.Minimum
	}
	if src.Maximum != "" {
		dst.Maximum = src.Maximum
	}
	if src.ExclusiveMinimum != "" {
		dst.ExclusiveMinimum = src.ExclusiveMinimum
	}
	if src.ExclusiveMaximum != "" {
		dst.ExclusiveMaximum = src.ExclusiveMaximum
	}
	if src.MinLength != nil {
		dst.MinLength = src.MinLength
	}
	if src.MaxLength != nil {
		dst.MaxLength = src.MaxLength
	}
	if src.MinItems != nil {
		dst.MinItems = src.MinItems
	}
	if src.AllOf != nil {
		dst.AllOf = src.AllOf
	}
	if src.AnyOf != nil {
		dst.AnyOf = src.AnyOf
	}
	for k, v := range src.Extras {
		if dst.Extras == nil {
			dst.Extras = make(map[string]any, len(src.Extras))
		}
		dst.Extras[k] = v
	}
}
