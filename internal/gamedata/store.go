package gamedata

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/spellbook/internal/telemetry"
)

// maxParallelLoads bounds how many definition files are parsed at once.
const maxParallelLoads = 4

// Store holds loaded definitions and resolves them by identity.
// Definitions are read-only after construction. A store whose source failed
// to load still answers lookups, with ErrDataUnavailable for anything it
// cannot resolve.
type Store struct {
	defs    []AbilityDefinition
	index   map[string]int
	loadErr error

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewStore creates a store from decoded definitions. When identities repeat,
// the first definition wins and later ones are dropped.
func NewStore(defs []AbilityDefinition) *Store {
	s := &Store{
		defs:     make([]AbilityDefinition, 0, len(defs)),
		index:    make(map[string]int, len(defs)),
		reported: make(map[string]struct{}),
	}
	for i := range defs {
		if _, dup := s.index[defs[i].Identity]; dup {
			slog.Warn("dropping duplicate definition", "identity", defs[i].Identity, "position", i)
			continue
		}
		s.index[defs[i].Identity] = len(s.defs)
		s.defs = append(s.defs, defs[i])
	}
	return s
}

// Open loads every named file from fsys and merges them in the order given,
// which is also the precedence order for duplicate identities. Files are
// parsed concurrently. Open never fails outright: an unreadable file is
// recorded and surfaces through Err and through Lookup.
func Open(ctx context.Context, fsys fs.FS, names ...string) *Store {
	tracer := telemetry.Tracer("gamedata")
	ctx, span := tracer.Start(ctx, "gamedata.load")
	defer span.End()

	results := make([][]AbilityDefinition, len(names))
	fileErrs := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				fileErrs[i] = errors.Join(ErrDataUnavailable, err)
				return nil
			}
			results[i], fileErrs[i] = LoadFile(fsys, name)
			return nil
		})
	}
	_ = g.Wait()

	var merged []AbilityDefinition
	for _, defs := range results {
		merged = append(merged, defs...)
	}

	s := NewStore(merged)
	s.loadErr = errors.Join(fileErrs...)

	span.SetAttributes(
		attribute.Int("gamedata.files", len(names)),
		attribute.Int("gamedata.definitions", len(s.defs)),
		attribute.Bool("gamedata.failed", s.loadErr != nil),
	)

	if s.loadErr != nil {
		slog.Error("definition data unavailable", "files", names, "err", s.loadErr)
	} else {
		slog.Info("loaded definitions", "files", len(names), "definitions", len(s.defs))
	}
	return s
}

// Err returns the load failure, if any source could not be read.
func (s *Store) Err() error {
	return s.loadErr
}

// Lookup returns the definition with the given identity.
// A miss fails with ErrDataUnavailable if any source failed to load
// (the record may have been in it), and ErrDefinitionNotFound otherwise.
// Both are wrapped in a LookupError naming the identity.
func (s *Store) Lookup(identity string) (*AbilityDefinition, error) {
	if i, ok := s.index[identity]; ok {
		return &s.defs[i], nil
	}

	lerr := &LookupError{Identity: identity, Err: ErrDefinitionNotFound}
	if s.loadErr != nil {
		lerr.Err = s.loadErr
	}
	s.report(lerr)
	return nil, lerr
}

// report logs a lookup failure once per identity.
func (s *Store) report(err *LookupError) {
	s.mu.Lock()
	_, seen := s.reported[err.Identity]
	s.reported[err.Identity] = struct{}{}
	s.mu.Unlock()

	if seen {
		return
	}
	slog.Error("cannot bind ability definition", "identity", err.Identity, "err", err.Err)
}

// All returns all definitions in source order.
func (s *Store) All() []AbilityDefinition {
	return s.defs
}

// Count returns the number of definitions in the store.
func (s *Store) Count() int {
	return len(s.defs)
}
