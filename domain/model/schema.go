package model

import (
	"fmt"
	"strings"
)

// DataType is a time-series column data type
type DataType int

const (
	// DataTypeAbsent is decoded from the null literal
	DataTypeAbsent DataType = iota
	// DataTypeBoolean represents BOOLEAN
	DataTypeBoolean
	// DataTypeInt32 represents INT32
	DataTypeInt32
	// DataTypeInt64 represents INT64
	DataTypeInt64
	// DataTypeFloat represents FLOAT
	DataTypeFloat
	// DataTypeDouble represents DOUBLE
	DataTypeDouble
	// DataTypeVector represents VECTOR
	DataTypeVector
	// DataTypeText represents TEXT
	DataTypeText
	// DataTypeString represents STRING
	DataTypeString
	// DataTypeTimestamp represents TIMESTAMP
	DataTypeTimestamp
	// DataTypeBlob represents BLOB
	DataTypeBlob
	// DataTypeDate represents DATE
	DataTypeDate
)

var dataTypeTokens = []struct {
	token    string
	dataType DataType
}{
	{"boolean", DataTypeBoolean},
	{"int", DataTypeInt32},
	{"long", DataTypeInt64},
	{"float", DataTypeFloat},
	{"double", DataTypeDouble},
	{"vector", DataTypeVector},
	{"text", DataTypeText},
	{"string", DataTypeString},
	{"time", DataTypeTimestamp},
	{"blob", DataTypeBlob},
	{"date", DataTypeDate},
	{NullLiteral, DataTypeAbsent},
}

// String returns the server-side type name
func (d DataType) String() string {
	switch d {
	case DataTypeAbsent:
		return "NULL"
	case DataTypeBoolean:
		return "BOOLEAN"
	case DataTypeInt32:
		return "INT32"
	case DataTypeInt64:
		return "INT64"
	case DataTypeFloat:
		return "FLOAT"
	case DataTypeDouble:
		return "DOUBLE"
	case DataTypeVector:
		return "VECTOR"
	case DataTypeText:
		return "TEXT"
	case DataTypeString:
		return "STRING"
	case DataTypeTimestamp:
		return "TIMESTAMP"
	case DataTypeBlob:
		return "BLOB"
	case DataTypeDate:
		return "DATE"
	default:
		return "UNKNOWN"
	}
}

// ParseDataType maps a case-insensitive token to a DataType.
func ParseDataType(token string) (DataType, error) {
	lower := strings.ToLower(token)
	expected := make([]string, 0, len(dataTypeTokens))
	for _, dt := range dataTypeTokens {
		if dt.token == lower {
			return dt.dataType, nil
		}
		expected = append(expected, dt.token)
	}
	return DataTypeAbsent, &VocabularyError{Vocabulary: "data type", Token: token, Expected: expected}
}

// Encoding is a time-series column encoding
type Encoding string

// Encodings accepted by ParseEncoding
const (
	EncodingPlain      Encoding = "PLAIN"
	EncodingDictionary Encoding = "DICTIONARY"
	EncodingRLE        Encoding = "RLE"
	EncodingDiff       Encoding = "DIFF"
	EncodingTS2Diff    Encoding = "TS_2DIFF"
	EncodingBitmap     Encoding = "BITMAP"
	EncodingGorillaV1  Encoding = "GORILLA_V1"
	EncodingRegular    Encoding = "REGULAR"
	EncodingGorilla    Encoding = "GORILLA"
	EncodingZigzag     Encoding = "ZIGZAG"
	EncodingFreq       Encoding = "FREQ"
	EncodingChimp      Encoding = "CHIMP"
	EncodingSprintz    Encoding = "SPRINTZ"
	EncodingRLBE       Encoding = "RLBE"
)

var encodings = []Encoding{
	EncodingPlain, EncodingDictionary, EncodingRLE, EncodingDiff, EncodingTS2Diff,
	EncodingBitmap, EncodingGorillaV1, EncodingRegular, EncodingGorilla, EncodingZigzag,
	EncodingFreq, EncodingChimp, EncodingSprintz, EncodingRLBE,
}

// String returns the encoding name
func (e Encoding) String() string {
	return string(e)
}

// ParseEncoding upper-cases token and matches it against the encoding names.
func ParseEncoding(token string) (Encoding, error) {
	return parseNamed("encoding", token, encodings)
}

// Compression is a time-series column compressor
type Compression string

// Compressions accepted by ParseCompression
const (
	CompressionUncompressed Compression = "UNCOMPRESSED"
	CompressionSnappy       Compression = "SNAPPY"
	CompressionGzip         Compression = "GZIP"
	CompressionLZ4          Compression = "LZ4"
	CompressionZstd         Compression = "ZSTD"
	CompressionLZMA2        Compression = "LZMA2"
)

var compressions = []Compression{
	CompressionUncompressed, CompressionSnappy, CompressionGzip,
	CompressionLZ4, CompressionZstd, CompressionLZMA2,
}

// String returns the compressor name
func (c Compression) String() string {
	return string(c)
}

// ParseCompression maps a case-insensitive token to a Compression.
func ParseCompression(token string) (Compression, error) {
	return parseNamed("compression", token, compressions)
}

func parseNamed[T ~string](vocabulary, token string, names []T) (T, error) {
	upper := strings.ToUpper(token)
	expected := make([]string, 0, len(names))
	for _, name := range names {
		if string(name) == upper {
			return name, nil
		}
		expected = append(expected, string(name))
	}
	var zero T
	return zero, &VocabularyError{Vocabulary: vocabulary, Token: token, Expected: expected}
}

// typeStructureColumns is the fixed width of a type structure row
const typeStructureColumns = 5

// TypeStructure is one row of a schema-structure fixture
type TypeStructure struct {
	DataType    DataType
	Encoding    Encoding
	Compression Compression
	Alias       string
	Extra       string
}

// ParseTypeStructure decodes the fixed five-column row
// "data type, encoding, compression, alias, extra".
func ParseTypeStructure(row []string) (TypeStructure, error) {
	if len(row) < typeStructureColumns {
		return TypeStructure{}, fmt.Errorf("%w: type structure row needs %d columns, got %d",
			ErrMissingColumn, typeStructureColumns, len(row))
	}

	dataType, err := ParseDataType(row[0])
	if err != nil {
		return TypeStructure{}, err
	}
	encoding, err := ParseEncoding(row[1])
	if err != nil {
		return TypeStructure{}, err
	}
	compression, err := ParseCompression(row[2])
	if err != nil {
		return TypeStructure{}, err
	}

	return TypeStructure{
		DataType:    dataType,
		Encoding:    encoding,
		Compression: compression,
		Alias:       row[3],
		Extra:       row[4],
	}, nil
}
