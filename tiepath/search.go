// Package tiepath implements a Dijkstra search over (position, heading)
// states that keeps every tie, then enumerates the cells of all optimal paths.
//
// Notes on implementation choices:
//
//   - Entries carry the heading of the state they came from; a record's mask
//     collects those headings for every pop at the record's settled cost.
//   - Goal states are settled and tie-collected like any other state but are
//     never expanded.
//   - The loop stops once the lowest pending cost exceeds the first goal
//     cost, so every tie at the optimal cost has been seen.
package tiepath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tiepath/frontier"
	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/statespace"
)

// Search is the outcome of the expansion phase: the minimal goal cost, the
// goal states that achieve it, and the predecessor graph. It is owned by a
// single caller and must not be shared between goroutines.
type Search struct {
	MinCost int64              // minimal cost to any goal state
	Goals   []statespace.State // goal states settled at MinCost
	Stats   Stats

	space   *statespace.Space
	records Records
	logger  *slog.Logger
	tiles   []grid.Point // cached once the reverse walk has run
	walked  bool
}

// Space returns the state space the search ran over.
func (s *Search) Space() *statespace.Space { return s.space }

// Records returns the predecessor graph. After the reverse walk has run the
// masks of walked states are cleared.
func (s *Search) Records() Records { return s.records }

// Record is Records().Lookup(st).
func (s *Search) Record(st statespace.State) (Record, bool) { return s.records.Lookup(st) }

// Run expands the state space of g from its start state in nondecreasing
// cost order until every tie at the minimal goal cost has been captured.
//
// Returns:
//
//   - *Search with MinCost, Goals and the predecessor graph.
//   - ErrNilGrid if g is nil.
//   - statespace.ErrStateSpaceOverflow if g is too large for the encoding in use.
//   - ErrNoPath if no goal state is reachable.
//
// Complexity:
//
//   - Time:  O(S) with the bucket frontier, O(S log S) with the heap, S = W×H×4.
//   - Space: O(S) for dense records; O(reached states) for sparse ones.
func Run(g *grid.Grid, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sp, err := statespace.New(g, statespace.WithReverseStart(cfg.ReverseStart))
	if err != nil {
		return nil, err
	}

	var recs Records
	switch cfg.Storage {
	case StorageSparse:
		if err = sp.ValidatePacked(); err != nil {
			return nil, err
		}
		recs = newSparseRecords(g.Size())
	default:
		recs = newDenseRecords(sp)
	}

	r := &runner{
		space:   sp,
		options: cfg,
		records: recs,
		pq:      frontier.New(cfg.Frontier, statespace.MaxEdgeCost),
		buf:     make([]statespace.Transition, 0, 4),
	}
	r.init()
	r.process()

	if !r.found {
		cfg.Logger.Debug("search exhausted without reaching goal",
			slog.Int("popped", r.stats.Popped),
			slog.Int("settled", r.stats.Settled))
		return nil, fmt.Errorf("%w: goal %v unreachable from %v", ErrNoPath, g.Goal(), sp.Start())
	}
	cfg.Logger.Debug("search complete",
		slog.Int64("min_cost", r.best),
		slog.Int("goal_states", len(r.goals)),
		slog.Int("settled", r.stats.Settled),
		slog.Int("ties", r.stats.Ties))

	return &Search{
		MinCost: r.best,
		Goals:   r.goals,
		Stats:   r.stats,
		space:   sp,
		records: recs,
		logger:  cfg.Logger,
	}, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	space   *statespace.Space
	options Options
	records Records
	pq      frontier.Frontier
	buf     []statespace.Transition // reused successor buffer
	best    int64                   // first (minimal) goal cost
	found   bool
	goals   []statespace.State
	stats   Stats
}

// init pushes the start state at cost 0 with no incoming heading.
func (r *runner) init() {
	start := r.space.Start()
	r.options.Logger.Debug("search start",
		slog.String("start", start.String()),
		slog.String("frontier", r.options.Frontier.String()),
		slog.String("storage", r.options.Storage.String()))
	r.push(frontier.Entry{Cost: 0, State: r.space.Encode(start), From: frontier.NoHeading})
}

func (r *runner) push(e frontier.Entry) {
	r.pq.Push(e)
	r.stats.Pushed++
}

// process is the core loop. Each popped entry either settles its state,
// extends the mask of a state settled at the same cost, or is discarded.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The lowest pending cost exceeds the minimal goal cost.
func (r *runner) process() {
	for {
		// 1) Stop rule: nothing cheaper than or equal to the goal cost remains.
		cost, ok := r.pq.PeekCost()
		if !ok || (r.found && cost > r.best) {
			if r.found {
				r.options.Logger.Debug("stop threshold reached", slog.Int64("min_cost", r.best))
			}
			return
		}
		e, _ := r.pq.Pop()
		r.stats.Popped++

		st := r.space.Decode(e.State)
		rec := r.records.at(st)

		// 2) A later pop of a settled state: tie or stale.
		if rec.Set {
			if rec.Cost == e.Cost {
				rec.Mask = addFrom(rec.Mask, e.From)
				r.stats.Ties++
			} else {
				r.stats.Discarded++
			}
			continue
		}

		// 3) First pop: settle.
		rec.Set = true
		rec.Cost = e.Cost
		rec.Mask = addFrom(rec.Mask, e.From)
		r.stats.Settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(st, e.Cost)
		}

		// 4) Goal states are terminal.
		if r.space.IsGoal(st) {
			if !r.found {
				r.found = true
				r.best = e.Cost
				r.options.Logger.Debug("goal reached", slog.String("state", st.String()), slog.Int64("cost", e.Cost))
			}
			r.goals = append(r.goals, st)
			r.stats.GoalHits++
			continue
		}

		// 5) Expand.
		r.buf = r.space.Successors(st, r.buf[:0])
		for _, tr := range r.buf {
			r.push(frontier.Entry{
				Cost:  e.Cost + tr.Cost,
				State: r.space.Encode(tr.To),
				From:  int8(st.Facing),
			})
		}
	}
}

func addFrom(m Mask, from int8) Mask {
	if from == frontier.NoHeading {
		return m
	}
	return m.Add(grid.Heading(from))
}
