// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is shared by all conversions; validator instances are safe for
// concurrent use and cache struct metadata.
var validate = validator.New()

// ArrayPolicy decides which unbounded sequence elements are shaped as
// arrays. It is shared by Emit and DeriveArrayPaths so both agree.
type ArrayPolicy struct {
	// ArrayElementNames lists element names treated as arrays when
	// TreatUnboundedAsArray is off. Names still need maxOccurs="unbounded".
	ArrayElementNames []string `yaml:"arrayElementNames,omitempty" json:"arrayElementNames,omitempty" validate:"dive,required"`
	// TreatUnboundedAsArray shapes every unbounded sequence element, and
	// every element under an unbounded group, as an array.
	TreatUnboundedAsArray bool `yaml:"treatUnboundedAsArray" json:"treatUnboundedAsArray"`
}

// Options configures a conversion. The zero value converts to 2020-12 with
// the built-in type table.
type Options struct {
	ArrayPolicy `yaml:",inline"`

	// ShowOriginTypes annotates emitted nodes with the XSD type name under
	// xsdOriginType.
	ShowOriginTypes bool `yaml:"showOriginTypes" json:"showOriginTypes"`
	// TypeMappings is merged over the built-in primitive table.
	TypeMappings map[string]TypeMapping `yaml:"typeMappings,omitempty" json:"typeMappings,omitempty" validate:"dive,keys,required,endkeys"`
	// SchemaDialect selects the output dialect, 2020-12 when empty.
	SchemaDialect Dialect `yaml:"schemaDialect,omitempty" json:"schemaDialect,omitempty" validate:"omitempty,oneof=draft-07 2020-12"`

	// Logger receives debug diagnostics about skipped constructs.
	Logger *slog.Logger `yaml:"-" json:"-" validate:"-"`
}

// Validate checks the options with their validate tags.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// LoadOptions reads Options from a YAML file and validates them.
func LoadOptions(path string) (Options, error) {
	var opts Options
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err = yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}
	return opts, opts.Validate()
}
