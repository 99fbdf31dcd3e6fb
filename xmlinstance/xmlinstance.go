// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package xmlinstance materializes XML instance documents into generic maps
// shaped like the JSON Schema xsdjson emits: attributes become "@_" keys,
// text beside attributes or children becomes "#text", and element paths
// derived from the XSD are forced into arrays or split into token lists.
package xmlinstance

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Arthur-Sk/xsdjson"
	"github.com/antchfx/xmlquery"
)

// Options configures how an instance is shaped.
type Options struct {
	// ArrayPaths are element paths always materialized as arrays.
	ArrayPaths xsdjson.PathSet
	// ArrayNames are element names always materialized as arrays,
	// wherever they occur.
	ArrayNames []string
	// ListPaths are element paths whose text is split on whitespace.
	ListPaths xsdjson.PathSet
	// ParseValues converts numeric and boolean text and attribute values.
	ParseValues bool
}

// OptionsFromSchema derives array and list paths from schema. Values are
// parsed so numbers and booleans line up with the emitted schema types.
func OptionsFromSchema(schema *xsdjson.Schema, policy xsdjson.ArrayPolicy) Options {
	return Options{
		ArrayPaths:  xsdjson.DeriveArrayPaths(schema, policy),
		ListPaths:   xsdjson.DeriveListPaths(schema),
		ParseValues: true,
	}
}

type materializer struct {
	opts       Options
	arrayNames map[string]bool
}

// Parse reads an XML document from r and materializes it. The result holds
// one key, the root element name.
func Parse(r io.Reader, opts Options) (map[string]any, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse XML instance: %w", err)
	}
	m := &materializer{opts: opts, arrayNames: make(map[string]bool, len(opts.ArrayNames))}
	for _, name := range opts.ArrayNames {
		m.arrayNames[name] = true
	}
	return m.children(doc, ""), nil
}

// children groups the element children of node by name, in document order,
// and collapses single occurrences unless the path is forced to an array.
func (m *materializer) children(node *xmlquery.Node, path string) map[string]any {
	var names []string
	grouped := make(map[string][]any)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		childPath := joinPath(path, child.Data)
		if _, seen := grouped[child.Data]; !seen {
			names = append(names, child.Data)
		}
		grouped[child.Data] = append(grouped[child.Data], m.element(child, childPath))
	}
	out := make(map[string]any, len(names))
	for _, name := range names {
		values := grouped[name]
		if len(values) == 1 && !m.forceArray(name, joinPath(path, name)) {
			out[name] = values[0]
			continue
		}
		out[name] = values
	}
	return out
}

func (m *materializer) forceArray(name, path string) bool {
	return m.arrayNames[name] || m.opts.ArrayPaths.Has(path)
}

func (m *materializer) element(node *xmlquery.Node, path string) any {
	out := m.children(node, path)
	for _, attr := range node.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		out[xsdjson.AttributePrefix+attr.Name.Local] = m.scalar(attr.Value)
	}
	text := strings.TrimSpace(textOf(node))
	if len(out) == 0 {
		return m.text(text, path)
	}
	if text != "" {
		out[xsdjson.TextNodeName] = m.text(text, path)
	}
	return out
}

func (m *materializer) text(text, path string) any {
	if !m.opts.ListPaths.Has(path) {
		return m.scalar(text)
	}
	fields := strings.Fields(text)
	tokens := make([]any, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, m.scalar(f))
	}
	return tokens
}

var numberPattern = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func (m *materializer) scalar(s string) any {
	if !m.opts.ParseValues {
		return s
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if !numberPattern.MatchString(s) {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// textOf concatenates the direct text and CDATA children of node.
func textOf(node *xmlquery.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
