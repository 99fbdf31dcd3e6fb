// Copyright 2020 - 2024 The xgen Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.
//
// Package xsdjson written in pure Go providing a set of functions that allow
// you to convert XSD (XML schema files) into JSON Schema documents. This
// library needs Go version 1.25 or later.

package xsdjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveListPathsOrder(t *testing.T) {
	schema, err := ParseXSDFile("testdata/order.xsd")
	require.NoError(t, err)
	assert.Equal(t, []string{"Order.Tags"}, DeriveListPaths(schema).Paths())
}

func TestDeriveListPaths(t *testing.T) {
	schema := parseXSDString(t, xsd(`
<xs:element name="Root">
  <xs:complexType>
    <xs:sequence>
      <xs:element name="direct" type="Tokens"/>
      <xs:element name="derived" type="ShortTokens"/>
      <xs:element name="deeper" type="FewTokens"/>
      <xs:element name="inline">
        <xs:simpleType>
          <xs:list itemType="xs:int"/>
        </xs:simpleType>
      </xs:element>
      <xs:element name="plain" type="Plain"/>
      <xs:element name="cyclic" type="Ping"/>
      <xs:element name="builtin" type="xs:NMTOKENS"/>
      <xs:group ref="Extra"/>
    </xs:sequence>
  </xs:complexType>
</xs:element>
<xs:element name="Top" type="Tokens"/>
<xs:complexType name="Base">
  <xs:sequence>
    <xs:element name="inherited" type="Tokens"/>
  </xs:sequence>
</xs:complexType>
<xs:complexType name="Child">
  <xs:complexContent>
    <xs:extension base="Base"/>
  </xs:complexContent>
</xs:complexType>
<xs:group name="Extra">
  <xs:sequence>
    <xs:element name="grouped" type="Tokens"/>
    <xs:element name="nested" type="Child"/>
  </xs:sequence>
</xs:group>
<xs:simpleType name="Tokens">
  <xs:list itemType="xs:token"/>
</xs:simpleType>
<xs:simpleType name="ShortTokens">
  <xs:restriction base="Tokens"/>
</xs:simpleType>
<xs:simpleType name="FewTokens">
  <xs:restriction base="ShortTokens"/>
</xs:simpleType>
<xs:simpleType name="Plain">
  <xs:restriction base="xs:string"/>
</xs:simpleType>
<xs:simpleType name="Ping">
  <xs:restriction base="Pong"/>
</xs:simpleType>
<xs:simpleType name="Pong">
  <xs:restriction base="Ping"/>
</xs:simpleType>`))

	assert.Equal(t, []string{
		"Root.deeper",
		"Root.derived",
		"Root.direct",
		"Root.grouped",
		"Root.inline",
		"Root.nested.inherited",
		"Top",
	}, DeriveListPaths(schema).Paths())
}

func TestDeriveListPathsGroupThroughNamedType(t *testing.T) {
	schema := parseXSDString(t, xsd(groupThroughNamedTypeXSD))
	assert.Equal(t, []string{"r.e.item", "r.item"}, DeriveListPaths(schema).Paths())
}

func TestDeriveListPathsNil(t *testing.T) {
	assert.Zero(t, DeriveListPaths(nil).Len())
}
