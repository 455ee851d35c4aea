package csvfixture

import (
	"path/filepath"
	"strings"
)

// FileKind is the base format of a fixture file, compression aside
type FileKind int

const (
	// FileKindCSV represents a delimited text fixture, comma by default
	FileKindCSV FileKind = iota
	// FileKindTSV represents a delimited text fixture, tab by default
	FileKindTSV
	// FileKindXLSX represents an Excel workbook, first sheet only
	FileKindXLSX
	// FileKindParquet represents a Parquet file
	FileKindParquet
	// FileKindUnsupported represents an unsupported extension
	FileKindUnsupported
)

// File extensions
const (
	extCSV     = ".csv"
	extTSV     = ".tsv"
	extXLSX    = ".xlsx"
	extParquet = ".parquet"
	extGZ      = ".gz"
	extBZ2     = ".bz2"
	extXZ      = ".xz"
	extZSTD    = ".zst"
)

// Delimiters
const (
	csvDelimiter = ','
	tsvDelimiter = '\t'
)

// String returns the format name
func (k FileKind) String() string {
	switch k {
	case FileKindCSV:
		return "csv"
	case FileKindTSV:
		return "tsv"
	case FileKindXLSX:
		return "xlsx"
	case FileKindParquet:
		return "parquet"
	default:
		return "unsupported"
	}
}

// isDelimited reports whether rows are split by a delimiter
func (k FileKind) isDelimited() bool {
	return k == FileKindCSV || k == FileKindTSV
}

// defaultDelimiter is used when a caller passes delimiter 0
func (k FileKind) defaultDelimiter() rune {
	if k == FileKindTSV {
		return tsvDelimiter
	}
	return csvDelimiter
}

// fixtureFile describes a fixture path before it is opened
type fixtureFile struct {
	path        string
	kind        FileKind
	compression CompressionType
}

// newFixtureFile detects kind and compression from the path's extensions
func newFixtureFile(path string) *fixtureFile {
	return &fixtureFile{
		path:        path,
		kind:        detectFileKind(path),
		compression: detectCompressionType(path),
	}
}

// isCompressed returns true if file is compressed
func (f *fixtureFile) isCompressed() bool {
	return f.compression != CompressionNone
}

// detectFileKind detects the base format, considering compressed files
func detectFileKind(path string) FileKind {
	ext := strings.ToLower(filepath.Ext(removeCompressionExtension(path)))
	switch ext {
	case extCSV:
		return FileKindCSV
	case extTSV:
		return FileKindTSV
	case extXLSX:
		return FileKindXLSX
	case extParquet:
		return FileKindParquet
	default:
		return FileKindUnsupported
	}
}

// isSupportedFixture checks if the file has a supported extension
func isSupportedFixture(path string) bool {
	return detectFileKind(path) != FileKindUnsupported
}
