package model

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDataType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected DataType
	}{
		{token: "boolean", expected: DataTypeBoolean},
		{token: "INT", expected: DataTypeInt32},
		{token: "Long", expected: DataTypeInt64},
		{token: "Float", expected: DataTypeFloat},
		{token: "FLOAT", expected: DataTypeFloat},
		{token: "double", expected: DataTypeDouble},
		{token: "vector", expected: DataTypeVector},
		{token: "text", expected: DataTypeText},
		{token: "string", expected: DataTypeString},
		{token: "time", expected: DataTypeTimestamp},
		{token: "blob", expected: DataTypeBlob},
		{token: "date", expected: DataTypeDate},
		{token: "null", expected: DataTypeAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDataType(tt.token)
			if err != nil {
				t.Fatalf("ParseDataType(%q) error = %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDataType(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}

	t.Run("Unrecognized token", func(t *testing.T) {
		t.Parallel()

		_, err := ParseDataType("bogus")
		if !errors.Is(err, ErrUnrecognizedToken) {
			t.Fatalf("expected ErrUnrecognizedToken, got %v", err)
		}
		var vocabErr *VocabularyError
		if !errors.As(err, &vocabErr) {
			t.Fatalf("expected *VocabularyError, got %T", err)
		}
		if vocabErr.Token != "bogus" || vocabErr.Vocabulary != "data type" {
			t.Errorf("unexpected error fields: %+v", vocabErr)
		}
		if !strings.Contains(err.Error(), `unrecognized data type "bogus"`) {
			t.Errorf("error message should name the token, got %q", err.Error())
		}
	})

	t.Run("Canonical names are not tokens", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseDataType("INT32"); err == nil {
			t.Error("INT32 is not part of the token vocabulary")
		}
	})
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"plain", "PLAIN", "Dictionary", "rle", "diff", "ts_2diff",
		"bitmap", "gorilla_v1", "regular", "gorilla", "zigzag", "freq", "chimp", "sprintz", "rlbe"} {
		t.Run(token, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEncoding(token)
			if err != nil {
				t.Fatalf("ParseEncoding(%q) error = %v", token, err)
			}
			if got.String() != strings.ToUpper(token) {
				t.Errorf("ParseEncoding(%q) = %v", token, got)
			}
		})
	}

	t.Run("Unrecognized token", func(t *testing.T) {
		t.Parallel()

		_, err := ParseEncoding("huffman")
		if !errors.Is(err, ErrUnrecognizedToken) {
			t.Fatalf("expected ErrUnrecognizedToken, got %v", err)
		}
		if !strings.Contains(err.Error(), "encoding") {
			t.Errorf("error should name the vocabulary, got %q", err.Error())
		}
	})
}

func TestParseCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected Compression
	}{
		{token: "uncompressed", expected: CompressionUncompressed},
		{token: "Snappy", expected: CompressionSnappy},
		{token: "GZIP", expected: CompressionGzip},
		{token: "lz4", expected: CompressionLZ4},
		{token: "zstd", expected: CompressionZstd},
		{token: "lzma2", expected: CompressionLZMA2},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCompression(tt.token)
			if err != nil {
				t.Fatalf("ParseCompression(%q) error = %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCompression(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}

	if _, err := ParseCompression("brotli"); !errors.Is(err, ErrUnrecognizedToken) {
		t.Errorf("expected ErrUnrecognizedToken for brotli, got %v", err)
	}
}

func TestParseTypeStructure(t *testing.T) {
	t.Parallel()

	t.Run("Valid row", func(t *testing.T) {
		t.Parallel()

		got, err := ParseTypeStructure([]string{"boolean", "PLAIN", "SNAPPY", "alias1", "extra1"})
		if err != nil {
			t.Fatal(err)
		}
		expected := TypeStructure{
			DataType:    DataTypeBoolean,
			Encoding:    EncodingPlain,
			Compression: CompressionSnappy,
			Alias:       "alias1",
			Extra:       "extra1",
		}
		if got != expected {
			t.Errorf("got %+v, want %+v", got, expected)
		}
	})

	t.Run("Unknown data type", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTypeStructure([]string{"bogus", "PLAIN", "SNAPPY", "a", "b"})
		if !errors.Is(err, ErrUnrecognizedToken) || !strings.Contains(err.Error(), "bogus") {
			t.Errorf("expected unrecognized data type naming bogus, got %v", err)
		}
	})

	t.Run("Unknown compression", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTypeStructure([]string{"int", "RLE", "brotli", "a", "b"})
		if !errors.Is(err, ErrUnrecognizedToken) || !strings.Contains(err.Error(), "compression") {
			t.Errorf("expected unrecognized compression, got %v", err)
		}
	})

	t.Run("Short row", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTypeStructure([]string{"int", "RLE", "SNAPPY"})
		if !errors.Is(err, ErrMissingColumn) {
			t.Errorf("expected ErrMissingColumn, got %v", err)
		}
	})
}
