package csvfixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Loader resolves fixture paths against a fixture root and decodes them.
// Configure it once with the chaining methods; afterwards it holds no
// mutable state and can be shared by parallel tests.
//
// The typical usage pattern is:
//
//	loader := csvfixture.NewLoader("testdata")
//	tuples, err := loader.Load("timeseries/insert.csv", ',')
//	if err != nil {
//		t.Fatal(err)
//	}
//	cases, err := tuples.Collect()
type Loader struct {
	// root is the directory relative paths are resolved against
	root string
	// fsys replaces the OS filesystem when set, e.g. an embed.FS
	fsys fs.FS
	// logger receives debug events for every load
	logger zerolog.Logger
}

// NewLoader creates a loader rooted at root. An empty root means the
// current working directory.
func NewLoader(root string) *Loader {
	return &Loader{
		root:   root,
		logger: log.Logger,
	}
}

// WithFS resolves fixture paths inside fsys instead of the OS filesystem.
// Paths must then be valid fs.FS paths, relative to root inside fsys.
//
// Example with embedded filesystem:
//
//	//go:embed testdata
//	var fixtures embed.FS
//
//	loader := csvfixture.NewLoader("testdata").WithFS(fixtures)
//
// Returns the loader for method chaining.
func (l *Loader) WithFS(fsys fs.FS) *Loader {
	l.fsys = fsys
	return l
}

// WithLogger replaces the default global zerolog logger.
// Returns the loader for method chaining.
func (l *Loader) WithLogger(logger zerolog.Logger) *Loader {
	l.logger = logger
	return l
}

// Root returns the fixture root
func (l *Loader) Root() string {
	return l.root
}

// Load decodes a fixture in the escape-aware dialect with the given
// delimiter (0 selects tab for .tsv and comma otherwise). The header row
// and rows whose first cell starts with "#" are skipped; every other cell is
// decoded with the sigil grammar. The returned iterator must be closed.
func (l *Loader) Load(path string, delimiter rune) (*Tuples, error) {
	source, err := l.open("load", path, delimiter, dialectFixture)
	if err != nil {
		return nil, err
	}
	return newTuples(source, decodeSigils), nil
}

// LoadTableFormat decodes a fixture in the RFC 4180 dialect. With asSQL
// every cell stays raw text, which is what statement fixtures need; without
// it cells are decoded like Load with a comma delimiter. The returned
// iterator must be closed.
func (l *Loader) LoadTableFormat(path string, asSQL bool) (*Tuples, error) {
	source, err := l.open("load table format", path, csvDelimiter, dialectTable)
	if err != nil {
		return nil, err
	}
	if asSQL {
		return newTuples(source, keepText), nil
	}
	return newTuples(source, decodeSigils), nil
}

// open resolves path, unwraps compression and positions a row source on
// the first record.
func (l *Loader) open(operation, fixturePath string, delimiter rune, d dialect) (*rowSource, error) {
	errCtx := newErrorContext(operation, fixturePath)
	if strings.TrimSpace(fixturePath) == "" {
		return nil, errCtx.Error(fmt.Errorf("%w: path cannot be empty", ErrFixtureNotFound))
	}

	fixture := newFixtureFile(fixturePath)
	if fixture.kind == FileKindUnsupported {
		return nil, errCtx.Error(ErrUnsupportedFormat)
	}

	file, resolved, err := l.openFile(fixturePath)
	if err != nil {
		return nil, errCtx.Error(err)
	}
	l.logger.Debug().
		Str("operation", operation).
		Str("path", resolved).
		Str("kind", fixture.kind.String()).
		Str("compression", fixture.compression.String()).
		Msg("opening fixture")

	reader, release, err := decompress(file, fixture.compression)
	if err != nil {
		return nil, errCtx.Error(err)
	}

	if fixture.kind.isDelimited() {
		if delimiter == 0 {
			delimiter = fixture.kind.defaultDelimiter()
		}
		source := &rowSource{operation: operation, path: fixturePath, closer: release}
		if d == dialectTable {
			source.reader = newTableFormatReader(reader)
		} else {
			source.reader = newDelimitedReader(reader, delimiter)
		}
		return source, nil
	}

	// Binary formats are materialized up front and the handle released
	// here; the source itself stays open until its caller closes it.
	var rows [][]string
	if fixture.kind == FileKindXLSX {
		rows, err = readXLSXRows(reader)
	} else {
		rows, err = readParquetRows(context.Background(), reader)
	}
	if releaseErr := release(); err == nil {
		err = releaseErr
	}
	if err != nil {
		return nil, errCtx.Error(err)
	}
	return &rowSource{
		operation: operation,
		path:      fixturePath,
		reader:    &sliceReader{rows: rows},
		closer:    func() error { return nil },
	}, nil
}

// openFile opens a fixture either from fsys or from the OS filesystem
func (l *Loader) openFile(fixturePath string) (io.ReadCloser, string, error) {
	var (
		file     io.ReadCloser
		resolved string
		err      error
	)
	if l.fsys != nil {
		resolved = path.Join(filepath.ToSlash(l.root), filepath.ToSlash(fixturePath))
		if !fs.ValidPath(resolved) {
			return nil, resolved, fmt.Errorf("%w: invalid fs path %s", ErrFixtureNotFound, resolved)
		}
		file, err = l.fsys.Open(resolved)
	} else {
		resolved = l.resolveOS(fixturePath)
		file, err = os.Open(resolved) //nolint:gosec // Fixture paths are chosen by the test author
	}

	switch {
	case err == nil:
		return file, resolved, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, resolved, fmt.Errorf("%w: %s: %w", ErrFixtureNotFound, resolved, err)
	case errors.Is(err, fs.ErrPermission):
		return nil, resolved, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, resolved, err)
	default:
		return nil, resolved, fmt.Errorf("failed to open fixture %s: %w", resolved, err)
	}
}

// resolveOS joins a relative path to the root; absolute paths are kept
func (l *Loader) resolveOS(fixturePath string) string {
	if filepath.IsAbs(fixturePath) || l.root == "" {
		return fixturePath
	}
	return filepath.Join(l.root, fixturePath)
}
