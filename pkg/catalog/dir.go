package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadDir reads every catalog file directly under dir concurrently and keys
// the result by file stem, the set name the file carries. Files with other
// extensions are skipped; two catalogs sharing a stem conflict. The first
// failure cancels the remaining reads.
func LoadDir(ctx context.Context, dir string) (map[string][]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir: %w", err)
	}

	var mu sync.Mutex
	out := make(map[string][]Record)

	g, ctx := errgroup.WithContext(ctx)
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if _, err := formatForPath(name); err != nil {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			recs, err := ReadFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}

			stem := strings.TrimSuffix(name, filepath.Ext(name))
			mu.Lock()
			defer mu.Unlock()
			if _, exists := out[stem]; exists {
				return fmt.Errorf("catalog %q appears more than once in %s", stem, dir)
			}
			out[stem] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
