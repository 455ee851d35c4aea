package csvfixture

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// decompress wraps an opened fixture with the decoder for its compression.
// It takes ownership of file: release closes the decoder and then the file,
// and on error the file is already closed.
func decompress(file io.ReadCloser, compression CompressionType) (io.Reader, func() error, error) {
	switch compression {
	case CompressionNone:
		return file, file.Close, nil

	case CompressionGZ:
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, closeAfter(file, fmt.Errorf("failed to read gzip header: %w", err))
		}
		return gzReader, releaseInOrder(gzReader.Close, file), nil

	case CompressionBZ2:
		return bzip2.NewReader(file), file.Close, nil

	case CompressionXZ:
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return nil, nil, closeAfter(file, fmt.Errorf("failed to read xz header: %w", err))
		}
		return xzReader, file.Close, nil

	case CompressionZSTD:
		// one fixture is decoded front to back, no decoder goroutines needed
		decoder, err := zstd.NewReader(file, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, closeAfter(file, fmt.Errorf("failed to create zstd decoder: %w", err))
		}
		return decoder, releaseInOrder(func() error {
			decoder.Close()
			return nil
		}, file), nil

	default:
		return nil, nil, closeAfter(file, fmt.Errorf("unsupported compression type for reading: %v", compression))
	}
}

// compress wraps a created fixture file with the encoder for its
// compression. It takes ownership of file: finish flushes the encoder and
// then closes the file, and on error the file is already closed.
func compress(file io.WriteCloser, compression CompressionType) (io.Writer, func() error, error) {
	switch compression {
	case CompressionNone:
		return file, file.Close, nil

	case CompressionGZ:
		gzWriter := gzip.NewWriter(file)
		return gzWriter, releaseInOrder(gzWriter.Close, file), nil

	case CompressionBZ2:
		return nil, nil, closeAfter(file, errors.New("bzip2 compression is not supported for writing"))

	case CompressionXZ:
		xzWriter, err := xz.NewWriter(file)
		if err != nil {
			return nil, nil, closeAfter(file, fmt.Errorf("failed to create xz writer: %w", err))
		}
		return xzWriter, releaseInOrder(xzWriter.Close, file), nil

	case CompressionZSTD:
		encoder, err := zstd.NewWriter(file, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, nil, closeAfter(file, fmt.Errorf("failed to create zstd encoder: %w", err))
		}
		return encoder, releaseInOrder(encoder.Close, file), nil

	default:
		return nil, nil, closeAfter(file, fmt.Errorf("unsupported compression type for writing: %v", compression))
	}
}

// releaseInOrder closes the codec first and the file second, reporting the
// first failure.
func releaseInOrder(codecClose func() error, file io.Closer) func() error {
	return func() error {
		err := codecClose()
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return err
	}
}

// closeAfter closes file and returns err unchanged
func closeAfter(file io.Closer, err error) error {
	_ = file.Close() // Ignore close error during error handling
	return err
}

// detectCompressionType detects the compression type from a file path
func detectCompressionType(path string) CompressionType {
	path = strings.ToLower(path)

	switch {
	case strings.HasSuffix(path, extGZ):
		return CompressionGZ
	case strings.HasSuffix(path, extBZ2):
		return CompressionBZ2
	case strings.HasSuffix(path, extXZ):
		return CompressionXZ
	case strings.HasSuffix(path, extZSTD):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// removeCompressionExtension strips a trailing compression extension
func removeCompressionExtension(path string) string {
	ext := detectCompressionType(path).Extension()
	return path[:len(path)-len(ext)]
}
