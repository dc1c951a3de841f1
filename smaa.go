package smaa

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gogpu/smaa/internal/parallel"
	"github.com/gogpu/smaa/pixbuf"
	"github.com/gogpu/smaa/tables"
)

// Construction errors.
var (
	// ErrMissingTable is returned by New when a lookup table is nil.
	ErrMissingTable = errors.New("smaa: missing lookup table")

	// ErrInvalidOption is returned by New when an option value is out of
	// range.
	ErrInvalidOption = errors.New("smaa: invalid option")

	// ErrSizeMismatch is the panic value (wrapped) when Blend receives a
	// color and a weight buffer of different sizes.
	ErrSizeMismatch = errors.New("smaa: buffer size mismatch")
)

// Antialiaser runs the SMAA pipeline with a fixed configuration and a fixed
// pair of lookup tables.
//
// Thread safety: an Antialiaser is safe for concurrent use. Concurrent calls
// share the worker goroutines.
type Antialiaser struct {
	area   *tables.Area
	search *tables.Search
	opts   options

	// workers is nil when every phase runs on the calling goroutine.
	workers *parallel.WorkerPool

	edgePool   *pixbuf.Pool[pixbuf.Vec2]
	weightPool *pixbuf.Pool[pixbuf.Vec4]
}

// New creates an Antialiaser that uses the given area and search tables.
// Without options it uses PresetHigh, 8-bit colors and GOMAXPROCS workers.
func New(area *tables.Area, search *tables.Search, opts ...Option) (*Antialiaser, error) {
	if area == nil {
		return nil, fmt.Errorf("%w: area", ErrMissingTable)
	}
	if search == nil {
		return nil, fmt.Errorf("%w: search", ErrMissingTable)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	a := &Antialiaser{
		area:   area,
		search: search,
		opts:   o,
	}

	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > 1 {
		a.workers = parallel.NewWorkerPool(workers)
	}

	if o.poolSize > 0 {
		a.edgePool = pixbuf.NewPool[pixbuf.Vec2](o.poolSize)
		a.weightPool = pixbuf.NewPool[pixbuf.Vec4](o.poolSize)
	}

	Logger().Debug("smaa: antialiaser created",
		"preset", o.preset,
		"threshold", o.threshold,
		"search_steps", o.searchSteps,
		"diagonal_steps", o.diagonalSteps,
		"workers", workers)

	return a, nil
}

// Close stops the worker goroutines. An Antialiaser keeps working after
// Close, running every phase on the calling goroutine.
func (a *Antialiaser) Close() {
	if a.workers != nil {
		a.workers.Close()
	}
}

// Apply antialiases colors and returns the result with every channel
// truncated to an integer. The output has the same size as the input.
func (a *Antialiaser) Apply(colors *pixbuf.Buffer[pixbuf.Vec4]) *pixbuf.Buffer[pixbuf.IVec4] {
	return pixbuf.Map(a.ApplyFloat(colors), pixbuf.Vec4.Int)
}

// ApplyFloat antialiases colors and returns the unrounded result.
func (a *Antialiaser) ApplyFloat(colors *pixbuf.Buffer[pixbuf.Vec4]) *pixbuf.Buffer[pixbuf.Vec4] {
	w, h := colors.Bounds()

	edges := a.getEdges(w, h)
	a.detect(colors, edges)

	weights := a.getWeights(w, h)
	a.computeWeights(edges, weights)
	a.putEdges(edges)

	out := pixbuf.New(w, h, colors.Default())
	a.blend(colors, weights, out)
	a.putWeights(weights)

	return out
}

// Edges runs edge detection alone. Channel 0 of each pixel flags an edge
// with its left neighbor, channel 1 an edge with its top neighbor.
func (a *Antialiaser) Edges(colors *pixbuf.Buffer[pixbuf.Vec4]) *pixbuf.Buffer[pixbuf.Vec2] {
	edges := pixbuf.New(colors.Width(), colors.Height(), pixbuf.Vec2{})
	a.detect(colors, edges)
	return edges
}

// Weights runs the blending weight phase alone on an edge buffer produced
// by Edges.
func (a *Antialiaser) Weights(edges *pixbuf.Buffer[pixbuf.Vec2]) *pixbuf.Buffer[pixbuf.Vec4] {
	weights := pixbuf.New(edges.Width(), edges.Height(), pixbuf.Vec4{})
	a.computeWeights(edges, weights)
	return weights
}

// Blend runs neighborhood blending alone. It panics if colors and weights
// differ in size.
func (a *Antialiaser) Blend(colors, weights *pixbuf.Buffer[pixbuf.Vec4]) *pixbuf.Buffer[pixbuf.Vec4] {
	if !pixbuf.SameSize(colors, weights) {
		panic(fmt.Errorf("%w: colors %dx%d, weights %dx%d", ErrSizeMismatch,
			colors.Width(), colors.Height(), weights.Width(), weights.Height()))
	}
	out := pixbuf.New(colors.Width(), colors.Height(), colors.Default())
	a.blend(colors, weights, out)
	return out
}

// =============================================================================
// Phases
// =============================================================================

func (a *Antialiaser) detect(colors *pixbuf.Buffer[pixbuf.Vec4], edges *pixbuf.Buffer[pixbuf.Vec2]) {
	start := time.Now()
	threshold := a.opts.threshold * a.opts.maxColor

	var count atomic.Int64
	parallel.Rows(a.workers, colors.Height(), func(y0, y1 int) {
		count.Add(int64(detectEdges(edges, colors, threshold, y0, y1)))
	})

	logPhase("edges", start, count.Load())
}

func (a *Antialiaser) computeWeights(edges *pixbuf.Buffer[pixbuf.Vec2], weights *pixbuf.Buffer[pixbuf.Vec4]) {
	start := time.Now()
	p := &weightPass{
		edges:       edges,
		areaTable:   a.area,
		searchTable: a.search,
		searchSteps: float32(a.opts.searchSteps),
		diagSteps:   float32(a.opts.diagonalSteps),
		subsample: pixbuf.Vec4{
			float32(a.opts.subsample[0]),
			float32(a.opts.subsample[1]),
			float32(a.opts.subsample[2]),
			float32(a.opts.subsample[3]),
		},
		collector: a.opts.collector,
	}

	var count atomic.Int64
	parallel.Rows(a.workers, edges.Height(), func(y0, y1 int) {
		count.Add(int64(p.computeWeights(weights, y0, y1)))
	})

	logPhase("weights", start, count.Load())
}

func (a *Antialiaser) blend(colors, weights, out *pixbuf.Buffer[pixbuf.Vec4]) {
	start := time.Now()

	var count atomic.Int64
	parallel.Rows(a.workers, colors.Height(), func(y0, y1 int) {
		count.Add(int64(blendRows(out, colors, weights, y0, y1)))
	})

	logPhase("blend", start, count.Load())
}

// =============================================================================
// Intermediate buffers
// =============================================================================

func (a *Antialiaser) getEdges(w, h int) *pixbuf.Buffer[pixbuf.Vec2] {
	if a.edgePool == nil {
		return pixbuf.New(w, h, pixbuf.Vec2{})
	}
	return a.edgePool.Get(w, h, pixbuf.Vec2{})
}

func (a *Antialiaser) putEdges(b *pixbuf.Buffer[pixbuf.Vec2]) {
	if a.edgePool != nil {
		a.edgePool.Put(b)
	}
}

func (a *Antialiaser) getWeights(w, h int) *pixbuf.Buffer[pixbuf.Vec4] {
	if a.weightPool == nil {
		return pixbuf.New(w, h, pixbuf.Vec4{})
	}
	return a.weightPool.Get(w, h, pixbuf.Vec4{})
}

func (a *Antialiaser) putWeights(b *pixbuf.Buffer[pixbuf.Vec4]) {
	if a.weightPool != nil {
		a.weightPool.Put(b)
	}
}
