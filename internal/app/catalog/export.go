package catalog

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ahrav/enumkit/internal/infra/blob/core"
	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/enum"
)

// Export writes every registered set through store as pretty-printed JSON
// under <prefix>/<set>.json, one upload per set, concurrently. It returns
// the keys written, ordered by set name; the first failure cancels the rest.
func (s *Service) Export(ctx context.Context, store core.Store, prefix string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_service.export",
		trace.WithAttributes(
			attribute.String("driver", string(store.Driver())),
			attribute.String("prefix", prefix),
		))
	defer span.End()

	views := enum.Sets()

	keys := make([]string, len(views))
	g, gctx := errgroup.WithContext(ctx)
	for i, view := range views {
		g.Go(func() error {
			recs := catalog.Snapshot(view)

			var buf bytes.Buffer
			if err := catalog.EncodeJSON(&buf, recs); err != nil {
				return fmt.Errorf("encoding set %q: %w", view.Name(), err)
			}

			key := path.Join(prefix, view.Name()+".json")
			if err := store.Put(gctx, key, buf.Bytes(), "application/json"); err != nil {
				return fmt.Errorf("exporting set %q: %w", view.Name(), err)
			}

			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return nil, err
	}

	sort.Strings(keys)
	s.metrics.IncExportedSets(ctx, len(keys))
	s.log.Info(ctx, "exported catalogs", "sets", len(keys), "driver", store.Driver(), "prefix", prefix)

	span.SetAttributes(attribute.Int("exported_sets", len(keys)))
	return keys, nil
}
