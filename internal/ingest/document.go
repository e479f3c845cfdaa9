// Package ingest discovers pending branch documents and extracts the text
// previews every downstream heuristic runs on.
package ingest

import (
	"path/filepath"
	"strings"
)

// Format tells the preview and extraction layers how to open a document.
type Format int

const (
	FormatUnknown Format = iota
	// FormatXLS is the legacy binary workbook format some branches still send.
	FormatXLS
	FormatXLSX
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatXLS:
		return "xls"
	case FormatXLSX:
		return "xlsx"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Spreadsheet reports whether the format is one of the workbook variants.
func (f Format) Spreadsheet() bool {
	return f == FormatXLS || f == FormatXLSX
}

// DetectFormat classifies a path by extension, case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return FormatXLS
	case ".xlsx":
		return FormatXLSX
	case ".pdf":
		return FormatPDF
	default:
		return FormatUnknown
	}
}

// Document is a single file discovered under the intake root. It is never
// mutated after the scan; processing outcomes are reflected by moving the
// file, not by touching the struct.
type Document struct {
	Path   string
	Format Format
	// AgencyHint is the agency folder the file was found under. It is the
	// weakest agency signal and only used when the content offers nothing.
	AgencyHint string
	Preview    string
}

// Name returns the bare filename.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}
