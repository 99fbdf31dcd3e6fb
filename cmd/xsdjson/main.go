// Command xsdjson converts an XSD file into a JSON Schema document, prints
// the array and list paths derived from it, or materializes an XML instance
// with those paths.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Arthur-Sk/xsdjson"
	"github.com/Arthur-Sk/xsdjson/xmlinstance"
)

type config struct {
	input          string
	output         string
	optionsFile    string
	dialect        string
	arrayNames     string
	unboundedArray bool
	originTypes    bool
	paths          bool
	instance       string
	verbose        bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "i", "", "Input XSD file path")
	flag.StringVar(&cfg.output, "o", "", "Output file path (default stdout)")
	flag.StringVar(&cfg.optionsFile, "c", "", "YAML options file")
	flag.StringVar(&cfg.dialect, "dialect", "", "JSON Schema dialect: draft-07 or 2020-12")
	flag.StringVar(&cfg.arrayNames, "array-names", "", "Comma separated element names treated as arrays")
	flag.BoolVar(&cfg.unboundedArray, "unbounded-array", false, "Treat every unbounded sequence element as an array")
	flag.BoolVar(&cfg.originTypes, "origin-types", false, "Annotate nodes with xsdOriginType")
	flag.BoolVar(&cfg.paths, "paths", false, "Print derived array and list paths instead of the schema")
	flag.StringVar(&cfg.instance, "xml", "", "Materialize this XML instance with the derived paths")
	flag.BoolVar(&cfg.verbose, "v", false, "Log debug diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.input == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("xsdjson failed", "input", cfg.input, "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}
	opts.Logger = logger
	if err = opts.Validate(); err != nil {
		return err
	}

	schema, err := xsdjson.ParseXSDFile(cfg.input)
	if err != nil {
		return err
	}

	var result any
	switch {
	case cfg.instance != "":
		result, err = materialize(schema, opts.ArrayPolicy, cfg.instance)
	case cfg.paths:
		result = map[string][]string{
			"arrayPaths": xsdjson.DeriveArrayPaths(schema, opts.ArrayPolicy).Paths(),
			"listPaths":  xsdjson.DeriveListPaths(schema).Paths(),
		}
	default:
		result, err = xsdjson.Emit(schema, opts)
	}
	if err != nil {
		return err
	}
	return write(cfg.output, result)
}

// loadOptions reads the options file, then lets flags override it.
func loadOptions(cfg config) (xsdjson.Options, error) {
	var opts xsdjson.Options
	if cfg.optionsFile != "" {
		var err error
		if opts, err = xsdjson.LoadOptions(cfg.optionsFile); err != nil {
			return opts, err
		}
	}
	if cfg.dialect != "" {
		opts.SchemaDialect = xsdjson.Dialect(cfg.dialect)
	}
	if cfg.arrayNames != "" {
		for _, name := range strings.Split(cfg.arrayNames, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.ArrayElementNames = append(opts.ArrayElementNames, name)
			}
		}
	}
	if cfg.unboundedArray {
		opts.TreatUnboundedAsArray = true
	}
	if cfg.originTypes {
		opts.ShowOriginTypes = true
	}
	return opts, nil
}

func materialize(schema *xsdjson.Schema, policy xsdjson.ArrayPolicy, path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return xmlinstance.Parse(f, xmlinstance.OptionsFromSchema(schema, policy))
}

func write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(f, data)
}

func writeAndClose(w io.WriteCloser, data []byte) error {
	_, err := w.Write(data)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
