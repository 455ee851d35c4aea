package csvfixture

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadDir loads every supported fixture below dir concurrently and returns
// the collected tuples keyed by fixture path (dir joined with the path
// inside it, slash separated). Delimiter 0 picks the default per file kind.
// The first failure cancels the remaining loads.
func (l *Loader) LoadDir(ctx context.Context, dir string, delimiter rune) (map[string][]Tuple, error) {
	paths, err := l.collectFixtures(dir)
	if err != nil {
		return nil, newErrorContext("load dir", dir).Error(err)
	}

	var (
		mu     sync.Mutex
		result = make(map[string][]Tuple, len(paths))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, fixturePath := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tuples, err := l.Load(fixturePath, delimiter)
			if err != nil {
				return err
			}
			collected, err := tuples.Collect()
			if err != nil {
				return err
			}
			l.logger.Debug().Str("path", fixturePath).Int("tuples", len(collected)).Msg("loaded fixture")

			mu.Lock()
			defer mu.Unlock()
			result[fixturePath] = collected
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// collectFixtures walks dir and returns supported fixture paths in lexical order
func (l *Loader) collectFixtures(dir string) ([]string, error) {
	fsys, base := l.fsys, path.Join(filepath.ToSlash(l.root), filepath.ToSlash(dir))
	if fsys == nil {
		fsys, base = os.DirFS(l.resolveOS(dir)), "."
	}
	if base == "" {
		base = "."
	}

	var paths []string
	err := fs.WalkDir(fsys, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedFixture(p) {
			return nil
		}

		rel := p
		if l.fsys != nil {
			rel, err = filepath.Rel(base, p)
			if err != nil {
				return fmt.Errorf("failed to get relative path for %s: %w", p, err)
			}
		}
		paths = append(paths, path.Join(filepath.ToSlash(dir), filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}
