package csvfixture

// CompressionType represents the compression wrapped around a fixture file
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionGZ:
		return "gz"
	case CompressionBZ2:
		return "bz2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return extGZ
	case CompressionBZ2:
		return extBZ2
	case CompressionXZ:
		return extXZ
	case CompressionZSTD:
		return extZSTD
	default:
		return ""
	}
}

// WriteOptions configures how WriteFixture lays out a fixture file.
//
// Example:
//
//	opts := NewWriteOptions().
//		WithDelimiter('\t').
//		WithCompression(CompressionZSTD)
type WriteOptions struct {
	// Delimiter separates cells, comma by default
	Delimiter rune
	// Compression wraps the written file
	Compression CompressionType
}

// NewWriteOptions creates default options (comma, no compression).
func NewWriteOptions() WriteOptions {
	return WriteOptions{
		Delimiter:   csvDelimiter,
		Compression: CompressionNone,
	}
}

// WithDelimiter sets the cell delimiter.
func (o WriteOptions) WithDelimiter(delimiter rune) WriteOptions {
	o.Delimiter = delimiter
	return o
}

// WithCompression sets the compression of the written file.
//
// Options:
//   - CompressionNone: No compression (default)
//   - CompressionGZ: Gzip compression (.gz)
//   - CompressionXZ: XZ compression (.xz)
//   - CompressionZSTD: Zstandard compression (.zst)
//
// Bzip2 can be read but not written.
func (o WriteOptions) WithCompression(compression CompressionType) WriteOptions {
	o.Compression = compression
	return o
}
