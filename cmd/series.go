package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// parseFlows parses a comma separated cash flow series. Amounts are
// parsed as decimals so values written the way money is written
// survive the trip to float64 unchanged.
func parseFlows(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	flows := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		d, err := decimal.NewFromString(part)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", part, err)
		}
		flows = append(flows, d.InexactFloat64())
	}
	return flows, nil
}

// parseReturns parses a comma separated series of fractional returns,
// 0.02 meaning +2%.
func parseReturns(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	returns := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid return %q: %w", part, err)
		}
		returns = append(returns, v)
	}
	return returns, nil
}

// loadSeries reads a series of numbers from a json file. The path
// selects an array anywhere in the document, "$" being the document
// itself. Elements are json numbers, or numeric strings as some data
// exports write them.
func loadSeries(file, path string) ([]float64, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("invalid json in %q: %w", file, err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q on %q: %w", path, file, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single answer: keep the inner array when there is
	// exactly one match.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		if inner, ok := jlist[0].([]any); ok {
			jval = inner
		}
	}

	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s in %q is not an array", path, file)
	}

	series := make([]float64, 0, len(jlist))
	for i, jv := range jlist {
		switch v := jv.(type) {
		case float64:
			series = append(series, v)
		case string:
			val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("element %d of %s in %q is an invalid number %q: %w", i, path, file, v, err)
			}
			series = append(series, val)
		default:
			return nil, fmt.Errorf("element %d of %s in %q is neither a number nor a string", i, path, file)
		}
	}
	return series, nil
}

// seriesFlags is the flag set shared by the commands that accept a
// series inline or from a json file.
type seriesFlags struct {
	name   string
	inline string
	file   string
	path   string
}

func (s *seriesFlags) setFlags(f *flag.FlagSet, name, usage string) {
	s.name = name
	f.StringVar(&s.inline, name, "", usage)
	f.StringVar(&s.file, "file", "", "Json file to read the series from, instead of -"+name+".")
	f.StringVar(&s.path, "path", "$", "Jsonpath of the series array inside -file.")
}

// series returns the series from the inline flag or from the file,
// whichever was given.
func (s *seriesFlags) series(parse func(string) ([]float64, error)) ([]float64, error) {
	switch {
	case s.inline != "" && s.file != "":
		return nil, fmt.Errorf("-%s and -file are exclusive", s.name)
	case s.inline != "":
		return parse(s.inline)
	case s.file != "":
		return loadSeries(s.file, s.path)
	default:
		return nil, fmt.Errorf("missing series: set -%s or -file", s.name)
	}
}
