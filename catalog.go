package tradelog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

/*
	Instrument catalogs are JSON documents published by brokers, e.g.:

	{
	    "exchange": "CME",
	    "instruments": [
	        {"symbol": "ES", "name": "E-mini S&P 500", "tickSize": 0.25},
	        {"symbol": "NQ", "name": "E-mini Nasdaq-100", "tickSize": 0.25}
	    ]
	}

	Only symbol/name pairs are of interest here; anything else in the
	document is ignored.
*/

// LoadCatalog extracts a prefix table from a broker instrument catalog.
func LoadCatalog(r io.Reader) (PrefixTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse instrument catalog: %w", err)
	}

	jval, err := jsonpath.Get("$.instruments[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("no instruments in catalog: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected catalog shape: %T", jval)
	}

	table := make(PrefixTable, len(jlist))
	for i, jinst := range jlist {
		symbol, err := catalogString(jinst, "$.symbol")
		if err != nil {
			return nil, fmt.Errorf("instrument %d: %w", i, err)
		}
		name, err := catalogString(jinst, "$.name")
		if err != nil {
			return nil, fmt.Errorf("instrument %d (%s): %w", i, symbol, err)
		}
		table[symbol] = name
	}
	return table, nil
}

func catalogString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("missing %q", path)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}
