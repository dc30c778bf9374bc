// Package tiepath defines options, results and sentinel errors for the
// tie-aware heading search.
package tiepath

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tiepath/frontier"
	"github.com/katalvlaran/tiepath/statespace"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run or Solve.
	ErrNilGrid = errors.New("tiepath: grid is nil")

	// ErrNoPath indicates the frontier was exhausted without reaching the goal.
	// It is the only failure callers are expected to handle.
	ErrNoPath = errors.New("tiepath: no path from start to goal")

	// ErrNilSearch indicates a nil *Search was passed to the enumerator.
	ErrNilSearch = errors.New("tiepath: search is nil")

	// ErrBadFrontier indicates an unknown frontier kind.
	ErrBadFrontier = errors.New("tiepath: unknown frontier kind")

	// ErrBadStorage indicates an unknown storage kind.
	ErrBadStorage = errors.New("tiepath: unknown storage kind")
)

// Storage selects how per-state records are held.
type Storage int

const (
	// StorageDense keeps one record per state in a flat slice indexed by the
	// dense state encoding. Fast, O(W×H×4) memory up front.
	StorageDense Storage = iota
	// StorageSparse keeps records in a map keyed by the bit-packed state key.
	// Memory grows with the states actually reached.
	StorageSparse
)

func (s Storage) String() string {
	switch s {
	case StorageDense:
		return "dense"
	case StorageSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// ParseStorage maps "dense" or "sparse" to a Storage.
func ParseStorage(name string) (Storage, error) {
	switch name {
	case "dense":
		return StorageDense, nil
	case "sparse":
		return StorageSparse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStorage, name)
}

// ParseFrontier maps "bucket" or "heap" to a frontier.Kind.
func ParseFrontier(name string) (frontier.Kind, error) {
	switch name {
	case "bucket":
		return frontier.KindBucket, nil
	case "heap":
		return frontier.KindHeap, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFrontier, name)
}

// Options configures a search.
//
// Frontier     – queue implementation (bucket queue by default).
// Storage      – per-state record layout (dense by default).
// ReverseStart – offer the one-time reverse edge out of the start state.
// OnSettle     – if non-nil, invoked each time a state is settled, in
// settlement order.
// Logger       – debug events; discarded by default.
type Options struct {
	Frontier     frontier.Kind
	Storage      Storage
	ReverseStart bool
	OnSettle     func(st statespace.State, cost int64)
	Logger       *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithFrontier selects the frontier implementation.
// Panics with ErrBadFrontier for an unknown kind.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		if kind != frontier.KindBucket && kind != frontier.KindHeap {
			panic(ErrBadFrontier.Error())
		}
		o.Frontier = kind
	}
}

// WithStorage selects the record layout.
// Panics with ErrBadStorage for an unknown kind.
func WithStorage(s Storage) Option {
	return func(o *Options) {
		if s != StorageDense && s != StorageSparse {
			panic(ErrBadStorage.Error())
		}
		o.Storage = s
	}
}

// WithReverseStart toggles the start-only reverse edge.
func WithReverseStart(enabled bool) Option {
	return func(o *Options) {
		o.ReverseStart = enabled
	}
}

// WithOnSettle installs a hook called for every settled state.
func WithOnSettle(fn func(st statespace.State, cost int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithLogger routes debug events to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults: bucket frontier, dense storage,
// reverse start enabled, no hook, discarding logger.
func DefaultOptions() Options {
	return Options{
		Frontier:     frontier.KindBucket,
		Storage:      StorageDense,
		ReverseStart: true,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// Stats counts what a search did.
type Stats struct {
	Pushed    int // frontier pushes
	Popped    int // frontier pops
	Settled   int // states settled (first pop)
	Ties      int // pops that matched a settled cost and extended its mask
	Discarded int // pops above a settled cost
	GoalHits  int // goal states settled at the minimal cost
}

// Result is the outcome of Solve.
type Result struct {
	MinCost int64 // minimal cost from the start state to any goal state
	Tiles   int   // distinct cells on any minimal-cost path, start and goal included
	Stats   Stats
}
