package smaa

import (
	"cmp"
	"slices"
	"sync"

	"github.com/gogpu/smaa/pixbuf"
)

// SampleKind identifies which line search produced a Sample.
type SampleKind uint8

const (
	// SampleHorizontal is a left/right search along a north edge.
	SampleHorizontal SampleKind = iota

	// SampleVertical is an up/down search along a west edge.
	SampleVertical

	// SampleDiagonalUp is a diagonal running from bottom-left to top-right.
	SampleDiagonalUp

	// SampleDiagonalDown is a diagonal running from top-left to bottom-right.
	SampleDiagonalDown
)

// String returns a string representation of the sample kind.
func (k SampleKind) String() string {
	switch k {
	case SampleHorizontal:
		return "Horizontal"
	case SampleVertical:
		return "Vertical"
	case SampleDiagonalUp:
		return "DiagonalUp"
	case SampleDiagonalDown:
		return "DiagonalDown"
	default:
		return "Unknown"
	}
}

// Sample is one resolved line search of the weight phase.
type Sample struct {
	X, Y int
	Kind SampleKind

	// Distance holds the distances to both line ends in pixels.
	Distance pixbuf.Vec2

	// Weights is the coverage the area table returned for the line.
	Weights pixbuf.Vec2
}

// Collector receives search samples during the weight phase.
type Collector interface {
	Collect(Sample)
}

// SampleLog is a Collector that keeps every sample in memory.
//
// Thread safety: SampleLog is safe for concurrent use.
type SampleLog struct {
	mu      sync.Mutex
	samples []Sample
}

// Collect appends s to the log.
func (l *SampleLog) Collect(s Sample) {
	l.mu.Lock()
	l.samples = append(l.samples, s)
	l.mu.Unlock()
}

// Samples returns a copy of the collected samples ordered by row, column
// and kind, independent of the order the workers produced them in.
func (l *SampleLog) Samples() []Sample {
	l.mu.Lock()
	out := slices.Clone(l.samples)
	l.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Sample) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out
}

// Len returns the number of collected samples.
func (l *SampleLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.samples)
}

// Reset discards all samples.
func (l *SampleLog) Reset() {
	l.mu.Lock()
	l.samples = l.samples[:0]
	l.mu.Unlock()
}
