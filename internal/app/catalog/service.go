// Package catalog provides the application service the API and CLI consume:
// directory queries, member parsing, and blob export of the registered sets.
package catalog

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/enum"
)

// View selects which ordering of a set's entries a query returns.
type View string

const (
	// ViewRegistration returns entries in registration order.
	ViewRegistration View = "registration"
	// ViewSorted returns all entries ordered by sort index.
	ViewSorted View = "sorted"
	// ViewVisible returns the visible entries ordered by sort index.
	ViewVisible View = "visible"
)

// ParseView maps the wire form of a view onto View; blank means sorted.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewRegistration, ViewSorted, ViewVisible:
		return View(s), nil
	case "":
		return ViewSorted, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// ErrSetNotFound indicates a query named a set the directory does not hold.
var ErrSetNotFound = fmt.Errorf("set not found")

// SetInfo summarizes one registered set.
type SetInfo struct {
	Name    string
	Len     int
	Default *catalog.Record
}

// Metrics is the recording surface the service reports through.
type Metrics interface {
	IncLookup(ctx context.Context, set string)
	IncParseMiss(ctx context.Context, set string)
	IncExportedSets(ctx context.Context, count int)
}

// Service answers directory queries for the API and CLI layers.
type Service struct {
	log     *logger.Logger
	tracer  trace.Tracer
	metrics Metrics
}

// NewService creates a catalog service.
func NewService(log *logger.Logger, tracer trace.Tracer, metrics Metrics) *Service {
	return &Service{
		log:     log.With("component", "catalog_service"),
		tracer:  tracer,
		metrics: metrics,
	}
}

// Sets returns a summary of every registered set, ordered by name.
func (s *Service) Sets(ctx context.Context) []SetInfo {
	ctx, span := s.tracer.Start(ctx, "catalog_service.sets")
	defer span.End()

	views := enum.Sets()
	out := make([]SetInfo, 0, len(views))
	for _, v := range views {
		out = append(out, infoOf(v))
	}

	span.SetAttributes(attribute.Int("set_count", len(out)))
	return out
}

// Set returns the summary of one set by name.
func (s *Service) Set(ctx context.Context, name string) (SetInfo, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_service.set",
		trace.WithAttributes(attribute.String("set", name)))
	defer span.End()

	view, ok := enum.Lookup(name)
	if !ok {
		span.SetStatus(codes.Error, "set not found")
		return SetInfo{}, fmt.Errorf("set %q: %w", name, ErrSetNotFound)
	}

	s.metrics.IncLookup(ctx, name)
	return infoOf(view), nil
}

// Entries returns one set's entries as wire records, in the requested view.
func (s *Service) Entries(ctx context.Context, name string, view View) ([]catalog.Record, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_service.entries",
		trace.WithAttributes(
			attribute.String("set", name),
			attribute.String("view", string(view)),
		))
	defer span.End()

	sv, ok := enum.Lookup(name)
	if !ok {
		span.SetStatus(codes.Error, "set not found")
		return nil, fmt.Errorf("set %q: %w", name, ErrSetNotFound)
	}

	var ids []enum.Identity
	switch view {
	case ViewRegistration:
		ids = sv.Identities()
	case ViewVisible:
		ids = sv.VisibleIdentities()
	default:
		ids = sv.SortedIdentities()
	}

	recs := make([]catalog.Record, len(ids))
	for i, id := range ids {
		recs[i] = catalog.RecordOf(id)
	}

	s.metrics.IncLookup(ctx, name)
	span.SetAttributes(attribute.Int("entry_count", len(recs)))
	return recs, nil
}

// DefaultEntry returns the set's default member as a wire record; the bool
// reports whether a default has been designated.
func (s *Service) DefaultEntry(ctx context.Context, name string) (catalog.Record, bool, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_service.default_entry",
		trace.WithAttributes(attribute.String("set", name)))
	defer span.End()

	sv, ok := enum.Lookup(name)
	if !ok {
		span.SetStatus(codes.Error, "set not found")
		return catalog.Record{}, false, fmt.Errorf("set %q: %w", name, ErrSetNotFound)
	}

	s.metrics.IncLookup(ctx, name)

	id, has := sv.DefaultIdentity()
	if !has {
		return catalog.Record{}, false, nil
	}
	return catalog.RecordOf(id), true, nil
}

// ParseEntry resolves input against the named set using the combined
// OID / value / text strategy; the bool reports a hit.
func (s *Service) ParseEntry(ctx context.Context, name, input string, mode enum.TextMatch) (catalog.Record, bool, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_service.parse_entry",
		trace.WithAttributes(attribute.String("set", name)))
	defer span.End()

	sv, ok := enum.Lookup(name)
	if !ok {
		span.SetStatus(codes.Error, "set not found")
		return catalog.Record{}, false, fmt.Errorf("set %q: %w", name, ErrSetNotFound)
	}

	id, hit := sv.ParseIdentity(input, mode)
	if !hit {
		s.metrics.IncParseMiss(ctx, name)
		span.SetAttributes(attribute.Bool("hit", false))
		return catalog.Record{}, false, nil
	}

	span.SetAttributes(attribute.Bool("hit", true))
	return catalog.RecordOf(id), true, nil
}

// Drift compares deployed catalog files against the registered sets and
// returns the changes per set name. Files for unregistered sets drift in
// their entirety.
func (s *Service) Drift(ctx context.Context, deployed map[string][]catalog.Record) map[string][]catalog.Change {
	ctx, span := s.tracer.Start(ctx, "catalog_service.drift")
	defer span.End()

	out := make(map[string][]catalog.Change)
	for name, have := range deployed {
		var want []catalog.Record
		if sv, ok := enum.Lookup(name); ok {
			want = catalog.Snapshot(sv)
		}
		if changes := catalog.Diff(have, want); len(changes) > 0 {
			out[name] = changes
		}
	}

	if len(out) > 0 {
		s.log.Warn(ctx, "catalog drift detected", "sets", len(out))
	}
	span.SetAttributes(attribute.Int("drifted_sets", len(out)))
	return out
}

func infoOf(v enum.SetView) SetInfo {
	info := SetInfo{Name: v.Name(), Len: v.Len()}
	if id, ok := v.DefaultIdentity(); ok {
		rec := catalog.RecordOf(id)
		info.Default = &rec
	}
	return info
}
