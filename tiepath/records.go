package tiepath

import (
	"strings"

	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/statespace"
)

// Mask is the set of predecessor headings whose edge into a state lies on an
// optimal path. Bit h is set for heading h.
type Mask uint8

// Add returns m with h included.
func (m Mask) Add(h grid.Heading) Mask { return m | 1<<uint(h) }

// Has reports whether h is in m.
func (m Mask) Has(h grid.Heading) bool { return m&(1<<uint(h)) != 0 }

// Len returns the number of headings in m.
func (m Mask) Len() int {
	n := 0
	for _, h := range grid.Headings {
		if m.Has(h) {
			n++
		}
	}
	return n
}

// Headings lists the members of m in cyclic order.
func (m Mask) Headings() []grid.Heading {
	out := make([]grid.Heading, 0, grid.NumHeadings)
	for _, h := range grid.Headings {
		if m.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, h := range m.Headings() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(h.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Record is the per-state entry of the predecessor graph. Cost is write-once:
// set on the first pop, after which only Mask grows (ties).
type Record struct {
	Cost int64
	Mask Mask
	Set  bool
}

// Records is the predecessor graph of one search.
type Records interface {
	// Lookup returns the record of st; ok is false if st was never settled.
	Lookup(st statespace.State) (rec Record, ok bool)

	// at returns the mutable record of st, allocating it if needed.
	at(st statespace.State) *Record
}

// denseRecords indexes a flat slice by the dense state encoding.
type denseRecords struct {
	space *statespace.Space
	recs  []Record
}

func newDenseRecords(sp *statespace.Space) *denseRecords {
	return &denseRecords{space: sp, recs: make([]Record, sp.Len())}
}

func (d *denseRecords) Lookup(st statespace.State) (Record, bool) {
	if !d.space.Grid().InBounds(st.Pos) {
		return Record{}, false
	}
	r := d.recs[d.space.Encode(st)]
	return r, r.Set
}

func (d *denseRecords) at(st statespace.State) *Record {
	return &d.recs[d.space.Encode(st)]
}

// sparseRecords keys a map by the bit-packed state key.
type sparseRecords struct {
	recs map[statespace.Key]*Record
}

func newSparseRecords(hint int) *sparseRecords {
	return &sparseRecords{recs: make(map[statespace.Key]*Record, hint)}
}

func (s *sparseRecords) Lookup(st statespace.State) (Record, bool) {
	if r, ok := s.recs[statespace.PackKey(st)]; ok {
		return *r, r.Set
	}
	return Record{}, false
}

func (s *sparseRecords) at(st statespace.State) *Record {
	k := statespace.PackKey(st)
	r, ok := s.recs[k]
	if !ok {
		r = &Record{}
		s.recs[k] = r
	}
	return r
}
