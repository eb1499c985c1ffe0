// Package caseio reads and writes test case batches in the formats the
// command line tool speaks. Plain text listings are read-only inputs,
// C arrays are write-only outputs, and JSON, CSV, TOML, and YAML batches
// round-trip.
package caseio

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies a test case serialization format.
type Format int

const (
	// FormatText is a whitespace-separated listing of inputs, one
	// "num precision [radix [base]]" per line. Blank lines and lines
	// starting with "#" are skipped. Text listings carry no expected
	// results, so they can be read but not written.
	FormatText Format = iota

	// FormatJSON is a pretty-printed JSON array of case objects.
	FormatJSON

	// FormatCSV is a comma-separated table with a fixed header row.
	FormatCSV

	// FormatTOML is a TOML document with one [[test_cases]] block per case.
	FormatTOML

	// FormatYAML is a YAML list of case mappings.
	FormatYAML

	// FormatC is a C source fragment declaring a test_cases array.
	// C fragments can be written but not read back.
	FormatC
)

var (
	// ErrUnknownFormat occurs when a format name or value is not recognized.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrReadOnly occurs when writing a format that can only be read.
	ErrReadOnly = errors.New("format is read-only")

	// ErrWriteOnly occurs when reading a format that can only be written.
	ErrWriteOnly = errors.New("format is write-only")
)

// ParseFormat converts a format name to a [Format].
// The match is case-insensitive, and "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "c":
		return FormatC, nil
	}
	return FormatText, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// DetectFormat infers the format of a file from its extension.
// Unrecognized extensions fall back to [FormatText].
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".c":
		return FormatC
	}
	return FormatText
}

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatC:
		return "c"
	}
	return "unknown"
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatTOML:
		return ".toml"
	case FormatYAML:
		return ".yaml"
	case FormatC:
		return ".c"
	}
	return ""
}
