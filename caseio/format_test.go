package caseio

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"text", FormatText},
		{"txt", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"csv", FormatCSV},
		{"toml", FormatTOML},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"c", FormatC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.name, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseFormatUnknown(t *testing.T) {
	for _, name := range []string{"", "xml", "jsonl"} {
		_, err := ParseFormat(name)
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) = %v, expected %v", name, err, ErrUnknownFormat)
		}
	}
}

func TestFormatString(t *testing.T) {
	formats := []Format{FormatText, FormatJSON, FormatCSV, FormatTOML, FormatYAML, FormatC}
	for _, f := range formats {
		parsed, err := ParseFormat(f.String())
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", f.String(), err)
			continue
		}
		if parsed != f {
			t.Errorf("ParseFormat(%q) = %v, expected %v", f.String(), parsed, f)
		}
	}
	if got := Format(99).String(); got != "unknown" {
		t.Errorf("Format(99).String() = %q, expected %q", got, "unknown")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"test_cases.json", FormatJSON},
		{"TEST_CASES.JSON", FormatJSON},
		{"out/test_cases.csv", FormatCSV},
		{"test_cases.toml", FormatTOML},
		{"test_cases.yaml", FormatYAML},
		{"test_cases.yml", FormatYAML},
		{"test_cases.c", FormatC},
		{"test_cases.txt", FormatText},
		{"test_cases", FormatText},
		{"test_cases.dat", FormatText},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.expected {
			t.Errorf("DetectFormat(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func TestFormatExt(t *testing.T) {
	formats := []Format{FormatJSON, FormatCSV, FormatTOML, FormatYAML, FormatC}
	for _, f := range formats {
		if got := DetectFormat("test_cases" + f.Ext()); got != f {
			t.Errorf("DetectFormat of the %v extension = %v, expected %v", f, got, f)
		}
	}
	if got := Format(99).Ext(); got != "" {
		t.Errorf("Format(99).Ext() = %q, expected empty", got)
	}
}
