package tradelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrefixTable maps symbol prefixes to instrument names. Lookups are
// case-insensitive and prefer the longest known prefix, so "MESM4" resolves
// through "MES" before "ES".
type PrefixTable map[string]string

// DefaultPrefixes returns the built-in futures prefix table.
func DefaultPrefixes() PrefixTable {
	return PrefixTable{
		"ES":  "E-mini S&P 500",
		"MES": "Micro E-mini S&P 500",
		"NQ":  "E-mini Nasdaq-100",
		"MNQ": "Micro E-mini Nasdaq-100",
		"YM":  "E-mini Dow",
		"MYM": "Micro E-mini Dow",
		"RTY": "E-mini Russell 2000",
		"M2K": "Micro E-mini Russell 2000",
		"CL":  "Crude Oil",
		"MCL": "Micro Crude Oil",
		"NG":  "Natural Gas",
		"GC":  "Gold",
		"MGC": "Micro Gold",
		"SI":  "Silver",
		"HG":  "Copper",
		"ZB":  "30-Year T-Bond",
		"ZN":  "10-Year T-Note",
		"ZF":  "5-Year T-Note",
		"6E":  "Euro FX",
		"6J":  "Japanese Yen",
		"6B":  "British Pound",
		"ZC":  "Corn",
		"ZS":  "Soybeans",
		"ZW":  "Wheat",
	}
}

// Merge folds other into the table, overriding existing prefixes.
func (p PrefixTable) Merge(other PrefixTable) {
	for prefix, name := range other {
		p[strings.ToUpper(strings.TrimSpace(prefix))] = name
	}
}

// Instrument infers the instrument name for a symbol: longest known prefix
// wins; an unmapped symbol falls back to "<PREFIX> Futures" built from its
// leading letters; an empty symbol is "Unknown".
func (p PrefixTable) Instrument(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "Unknown"
	}
	best := ""
	for prefix := range p {
		if strings.HasPrefix(symbol, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best != "" {
		return p[best]
	}
	return alphaPrefix(symbol) + " Futures"
}

// alphaPrefix returns the leading run of letters of an uppercased symbol,
// or the symbol itself when it starts with a digit (e.g. "6E").
func alphaPrefix(symbol string) string {
	for i, r := range symbol {
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if i == 0 {
			return symbol
		}
		return symbol[:i]
	}
	return symbol
}

// LoadPrefixOverrides reads a YAML mapping of symbol prefixes to instrument
// names, e.g.:
//
//	ES: E-mini S&P 500
//	FDAX: DAX Futures
func LoadPrefixOverrides(r io.Reader) (PrefixTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read prefix overrides: %w", err)
	}
	var table PrefixTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("cannot parse prefix overrides: %w", err)
	}
	return table, nil
}
