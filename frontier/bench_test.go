package frontier_test

import (
	"testing"

	"github.com/katalvlaran/tiepath/frontier"
)

// benchmarkFrontier simulates a maze search: every pop pushes one straight
// step and two turns.
func benchmarkFrontier(b *testing.B, kind frontier.Kind) {
	const pops = 100_000
	for i := 0; i < b.N; i++ {
		f := frontier.New(kind, 2001)
		f.Push(frontier.Entry{Cost: 0})
		for n := 0; n < pops; n++ {
			e, ok := f.Pop()
			if !ok {
				b.Fatal("frontier drained early")
			}
			f.Push(frontier.Entry{Cost: e.Cost + 1, State: n})
			if n%3 == 0 {
				f.Push(frontier.Entry{Cost: e.Cost + 1001, State: n})
				f.Push(frontier.Entry{Cost: e.Cost + 1001, State: n})
			}
		}
	}
}

func BenchmarkBucket(b *testing.B) { benchmarkFrontier(b, frontier.KindBucket) }

func BenchmarkHeap(b *testing.B) { benchmarkFrontier(b, frontier.KindHeap) }
