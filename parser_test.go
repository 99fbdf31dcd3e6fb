// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXSD(t *testing.T) {
	schema, err := ParseXSDFile("testdata/order.xsd")
	require.NoError(t, err)

	require.Len(t, schema.Elements, 1)
	assert.Equal(t, "Order", schema.Elements[0].Name)
	assert.Equal(t, "OrderType", schema.Elements[0].Type)
	assert.Len(t, schema.ComplexTypes, 5)
	assert.Len(t, schema.SimpleTypes, 3)
	require.Len(t, schema.Groups, 1)
	assert.Equal(t, "Shipping", schema.Groups[0].Name)

	reg := newRegistry(schema)
	order := reg.complexTypes["OrderType"]
	require.NotNil(t, order)
	require.Len(t, order.Sequence.Groups, 1)
	assert.Equal(t, "0", order.Sequence.Groups[0].MinOccurs)
	assert.Equal(t, "unbounded", order.Sequence.Groups[0].MaxOccurs)

	line := reg.complexTypes["LineType"]
	require.NotNil(t, line.ComplexContent)
	assert.Equal(t, "ItemType", line.ComplexContent.Extension.Base)
	require.Len(t, line.ComplexContent.Extension.Attributes, 1)
	assert.Equal(t, "required", line.ComplexContent.Extension.Attributes[0].Use)

	sku := reg.simpleTypes["SkuType"]
	require.NotNil(t, sku.Restriction)
	assert.Equal(t, "12", sku.Restriction.MaxLength.Value)
	assert.Equal(t, "xs:token", reg.simpleTypes["TagTokens"].List.ItemType)
	assert.NotNil(t, reg.groupSequence("Shipping"))
	assert.Nil(t, reg.groupSequence("Missing"))
}

func TestParseXSDCharset(t *testing.T) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="Stra`)
	doc.WriteByte(0xdf)
	doc.WriteString(`e" type="xs:string"/></xs:schema>`)

	schema, err := ParseXSD(&doc)
	require.NoError(t, err)
	require.Len(t, schema.Elements, 1)
	assert.Equal(t, "Straße", schema.Elements[0].Name)
}

func TestParseXSDErrors(t *testing.T) {
	_, err := ParseXSD(strings.NewReader(`<definitions/>`))
	assert.ErrorIs(t, err, ErrNoSchema)

	_, err = ParseXSD(strings.NewReader(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSchema)

	_, err = ParseXSDFile(filepath.Join(t.TempDir(), "missing.xsd"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistryLastWins(t *testing.T) {
	schema := parseXSDString(t, xsd(`
<xs:element name="a" type="T"/>
<xs:simpleType name="T"><xs:restriction base="xs:string"/></xs:simpleType>
<xs:simpleType name="T"><xs:restriction base="xs:int"/></xs:simpleType>
<xs:simpleType><xs:restriction base="xs:int"/></xs:simpleType>`))
	reg := newRegistry(schema)
	assert.Len(t, reg.simpleTypes, 1)
	assert.Equal(t, "xs:int", reg.simpleTypes["T"].Restriction.Base)
}
