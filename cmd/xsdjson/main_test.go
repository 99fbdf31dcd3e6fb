package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Arthur-Sk/xsdjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func runToFile(t *testing.T, cfg config) string {
	t.Helper()
	cfg.output = filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, run(cfg, slog.New(slog.DiscardHandler)))
	data, err := os.ReadFile(cfg.output)
	require.NoError(t, err)
	return string(data)
}

func TestRunSchema(t *testing.T) {
	out := runToFile(t, config{
		input:       "../../testdata/order.xsd",
		optionsFile: "../../testdata/options.yaml",
		dialect:     "2020-12",
		originTypes: true,
	})
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", gjson.Get(out, "$schema").String())
	assert.Equal(t, "array", gjson.Get(out, "$defs.OrderType.properties.Line.type").String())
	assert.Equal(t, "OrderType", gjson.Get(out, "properties.Order.xsdOriginType").String())
}

func TestRunPaths(t *testing.T) {
	out := runToFile(t, config{input: "../../testdata/order.xsd", paths: true, arrayNames: "Line, ,Tracking"})
	assert.JSONEq(t, `["Order.Line","Order.Tracking"]`, gjson.Get(out, "arrayPaths").Raw)
	assert.JSONEq(t, `["Order.Tags"]`, gjson.Get(out, "listPaths").Raw)
}

func TestRunInstance(t *testing.T) {
	out := runToFile(t, config{
		input:          "../../testdata/order.xsd",
		instance:       "../../testdata/order.xml",
		unboundedArray: true,
	})
	assert.JSONEq(t, `["red","green","blue"]`, gjson.Get(out, "Order.Tags").Raw)
	assert.Equal(t, "EUR", gjson.Get(out, `Order.Line.0.Price.\@_currency`).String())
	assert.Equal(t, 9.5, gjson.Get(out, `Order.Line.0.Price.\#text`).Float())
}

func TestRunErrors(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	assert.ErrorIs(t, run(config{input: "../../testdata/order.xsd", dialect: "draft-04"}, logger), xsdjson.ErrInvalidOptions)
	assert.ErrorIs(t, run(config{input: "missing.xsd"}, logger), os.ErrNotExist)
	assert.Error(t, run(config{input: "../../testdata/order.xsd", optionsFile: "missing.yaml"}, logger))
}

func TestLoadOptionsFlagsOverride(t *testing.T) {
	opts, err := loadOptions(config{
		optionsFile:    "../../testdata/options.yaml",
		dialect:        "2020-12",
		arrayNames:     "a,b",
		unboundedArray: true,
	})
	require.NoError(t, err)
	assert.Equal(t, xsdjson.Dialect202012, opts.SchemaDialect)
	assert.Equal(t, []string{"entry", "a", "b"}, opts.ArrayElementNames)
	assert.True(t, opts.TreatUnboundedAsArray)
	assert.True(t, opts.ShowOriginTypes)
}

type failingCloser struct {
	bytes.Buffer
	writeErr, closeErr error
	closed             bool
}

func (f *failingCloser) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.Buffer.Write(p)
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose(t *testing.T) {
	errClose := errors.New("close failed")
	errWrite := errors.New("write failed")

	w := &failingCloser{closeErr: errClose}
	assert.ErrorIs(t, writeAndClose(w, []byte("{}")), errClose)
	assert.True(t, w.closed)
	assert.Equal(t, "{}", w.String())

	w = &failingCloser{writeErr: errWrite, closeErr: errClose}
	assert.ErrorIs(t, writeAndClose(w, []byte("{}")), errWrite)
	assert.True(t, w.closed)

	w = &failingCloser{}
	assert.NoError(t, writeAndClose(w, []byte("{}")))
}
