// Package catalog binds the reference-data endpoints: set listings, entry
// views, parse resolution, and catalog export.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ahrav/enumkit/internal/api/errs"
	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/internal/infra/blob"
	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/enum"
	"github.com/ahrav/enumkit/pkg/web"
)

// Config contains the dependencies needed by the catalog handlers.
type Config struct {
	Log     *logger.Logger
	Catalog *appcatalog.Service
}

// Routes binds all the catalog endpoints.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	app.HandlerFunc(http.MethodGet, version, "/sets", listSets(cfg))
	app.HandlerFunc(http.MethodGet, version, "/sets/{name}", getSet(cfg))
	app.HandlerFunc(http.MethodGet, version, "/sets/{name}/entries", listEntries(cfg))
	app.HandlerFunc(http.MethodGet, version, "/sets/{name}/default", getDefault(cfg))
	app.HandlerFunc(http.MethodGet, version, "/sets/{name}/parse", parseEntry(cfg))
	app.HandlerFunc(http.MethodPost, version, "/export", export(cfg))
}

func listSets(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		infos := cfg.Catalog.Sets(ctx)

		resp := setsResponse{Sets: make([]setInfo, len(infos))}
		for i, info := range infos {
			resp.Sets[i] = toSetInfo(info)
		}
		return resp
	}
}

func getSet(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		info, err := cfg.Catalog.Set(ctx, web.Param(r, "name"))
		if err != nil {
			return errs.New(errs.NotFound, err)
		}
		return setResponse{toSetInfo(info)}
	}
}

func listEntries(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		view, err := appcatalog.ParseView(r.URL.Query().Get("view"))
		if err != nil {
			return errs.New(errs.InvalidArgument, err)
		}

		recs, err := cfg.Catalog.Entries(ctx, web.Param(r, "name"), view)
		if err != nil {
			return errs.New(errs.NotFound, err)
		}
		return entriesResponse{Entries: recs}
	}
}

func getDefault(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		name := web.Param(r, "name")

		rec, ok, err := cfg.Catalog.DefaultEntry(ctx, name)
		if err != nil {
			return errs.New(errs.NotFound, err)
		}
		if !ok {
			return errs.Newf(errs.NotFound, "set %q has no default entry", name)
		}
		return entryResponse{rec}
	}
}

func parseEntry(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		name := web.Param(r, "name")
		input := r.URL.Query().Get("input")

		mode, err := parseMatch(r.URL.Query().Get("match"))
		if err != nil {
			return errs.New(errs.InvalidArgument, err)
		}

		rec, hit, err := cfg.Catalog.ParseEntry(ctx, name, input, mode)
		if err != nil {
			return errs.New(errs.NotFound, err)
		}
		if !hit {
			return errs.Newf(errs.NotFound, "set %q: no entry matches %q", name, input)
		}
		return entryResponse{rec}
	}
}

func export(cfg Config) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		var req exportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return errs.New(errs.InvalidArgument, err)
		}

		if err := errs.Check(req); err != nil {
			return errs.New(errs.InvalidArgument, err)
		}

		store, err := blob.Open(ctx, req.storeConfig())
		if err != nil {
			return errs.New(errs.InvalidArgument, err)
		}

		keys, err := cfg.Catalog.Export(ctx, store, req.Prefix)
		if err != nil {
			return errs.New(errs.Internal, err)
		}
		return exportResponse{Driver: string(store.Driver()), Keys: keys}
	}
}

// parseMatch maps the wire form of a text-match mode onto enum.TextMatch;
// blank means case-insensitive, the forgiving default for query parameters.
func parseMatch(s string) (enum.TextMatch, error) {
	switch s {
	case "", "fold":
		return enum.MatchFold, nil
	case "exact":
		return enum.MatchExact, nil
	}
	return 0, fmt.Errorf("unknown match mode %q", s)
}
