// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import "errors"

var (
	// ErrNoSchema is returned when the input has no root schema node.
	ErrNoSchema = errors.New("invalid XSD: root schema element not found")
	// ErrNoRootElement is returned when the schema declares no top-level
	// element to convert.
	ErrNoRootElement = errors.New("no root element nothing to process")
	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("invalid convert options")
)
