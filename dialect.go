// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"maps"

	"github.com/invopop/jsonschema"
)

// Dialect selects the JSON Schema draft of the output.
type Dialect string

const (
	// DialectDraft07 emits draft-07 documents with a definitions container.
	DialectDraft07 Dialect = "draft-07"
	// Dialect202012 emits 2020-12 documents with a $defs container.
	Dialect202012 Dialect = "2020-12"
)

type dialectConfig struct {
	schemaURI      string
	definitionsKey string
	definitionsRef string
}

var dialects = map[Dialect]dialectConfig{
	Dialect202012: {
		schemaURI:      "https://json-schema.org/draft/2020-12/schema",
		definitionsKey: "$defs",
		definitionsRef: "#/$defs/",
	},
	DialectDraft07: {
		schemaURI:      "http://json-schema.org/draft-07/schema#",
		definitionsKey: "definitions",
		definitionsRef: "#/definitions/",
	},
}

func lookupDialect(d Dialect) dialectConfig {
	if cfg, ok := dialects[d]; ok {
		return cfg
	}
	return dialects[Dialect202012]
}

// ref builds a reference to a named definition.
func (d dialectConfig) ref(name string) string {
	return d.definitionsRef + name
}

// attach stores defs in the container the dialect prescribes. invopop only
// knows $defs, so draft-07 documents carry theirs as an extra keyword.
func (d dialectConfig) attach(doc *jsonschema.Schema, defs jsonschema.Definitions) {
	if d.definitionsKey == "$defs" {
		doc.Definitions = defs
		return
	}
	if doc.Extras == nil {
		doc.Extras = make(map[string]any)
	}
	doc.Extras[d.definitionsKey] = defs
}

// DefinitionsOf returns the named definitions of a document produced by
// Emit, whichever dialect container holds them.
func DefinitionsOf(doc *jsonschema.Schema) jsonschema.Definitions {
	if doc == nil {
		return nil
	}
	defs := jsonschema.Definitions{}
	maps.Copy(defs, doc.Definitions)
	if extra, ok := doc.Extras[dialects[DialectDraft07].definitionsKey].(jsonschema.Definitions); ok {
		maps.Copy(defs, extra)
	}
	return defs
}
