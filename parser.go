// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// ParseXSD decodes XSD text into the schema model. Tags are matched by local
// name, so any namespace prefix is accepted.
func ParseXSD(r io.Reader) (*Schema, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var schema Schema
	if err := decoder.Decode(&schema); err != nil {
		var unexpected xml.UnmarshalError
		if errors.As(err, &unexpected) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrNoSchema, err)
		}
		return nil, fmt.Errorf("decode XSD: %w", err)
	}
	return &schema, nil
}

// ParseXSDFile decodes the XSD file at path.
func ParseXSDFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	schema, err := ParseXSD(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}
