package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datetimecheck/pkg/logger"
	"github.com/dmitrymomot/datetimecheck/pkg/validator"
)

var errNoValues = errors.New("no values to check")

// batchFile is the mapping form of a batch file. A bare sequence is accepted too.
type batchFile struct {
	Field  string      `yaml:"field"`
	Values []yaml.Node `yaml:"values"`
}

func runCheck(ctx context.Context, log *slog.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	field := fs.String("field", "value", "field name reported with violations")
	file := fs.String("f", "", "YAML or JSON file with values to check")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	values := make([]any, 0, fs.NArg())
	for _, a := range fs.Args() {
		values = append(values, a)
	}

	if *file != "" {
		fileField, fileValues, err := readBatchFile(*file)
		if err != nil {
			fmt.Fprintf(stderr, "datetimecheck: %v\n", err)
			return exitUsage
		}
		if fileField != "" && !flagSet(fs, "field") {
			*field = fileField
		}
		values = append(values, fileValues...)
	}

	if len(values) == 0 {
		fmt.Fprintf(stderr, "datetimecheck: %v\n", errNoValues)
		return exitUsage
	}

	code := exitOK
	for i, v := range values {
		verrs, err := validator.ValidateDateTime(*field, v)
		switch {
		case err != nil:
			log.WarnContext(ctx, "value skipped", logger.Field(*field), slog.Int("index", i), logger.Error(err))
			fmt.Fprintf(stdout, "%d\t%v\terror: %v\n", i, v, err)
			code = exitInvalid
		case verrs.IsEmpty():
			fmt.Fprintf(stdout, "%d\t%v\tok\n", i, v)
		default:
			log.DebugContext(ctx, "value rejected",
				logger.Field(*field),
				logger.Value(verrs[0].Value),
				logger.ViolationCodes(verrs.Codes()),
			)
			fmt.Fprintf(stdout, "%d\t%v\tinvalid: %s\n", i, v, joinCodes(verrs))
			code = exitInvalid
		}
	}
	return code
}

// readBatchFile returns scalars as their source text so YAML typing (numbers,
// timestamps, booleans) never changes what gets validated. Nulls become nil.
func readBatchFile(path string) (string, []any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return "", nil, fmt.Errorf("parse %s: %w", path, errNoValues)
	}

	var (
		field string
		nodes []yaml.Node
	)
	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&nodes); err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case yaml.MappingNode:
		var bf batchFile
		if err := root.Decode(&bf); err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", path, err)
		}
		field, nodes = bf.Field, bf.Values
	default:
		return "", nil, fmt.Errorf("parse %s: expected a list or a mapping with values", path)
	}

	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, err := nodeValue(&n)
		if err != nil {
			return "", nil, fmt.Errorf("parse %s: line %d: %w", path, n.Line, err)
		}
		values = append(values, v)
	}
	return field, values, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	}
	// Collections keep their decoded shape and are rejected by the validator.
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func joinCodes(verrs validator.ValidationErrors) string {
	codes := make([]string, 0, len(verrs))
	for _, c := range verrs.Codes() {
		codes = append(codes, c.String())
	}
	return strings.Join(codes, ",")
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
