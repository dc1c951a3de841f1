package smaa

import (
	"fmt"
	"strings"

	"github.com/gogpu/smaa/tables"
)

// Preset is a named bundle of detection threshold and search limits.
type Preset uint8

const (
	// PresetLow uses a high threshold and short searches, no diagonals.
	PresetLow Preset = iota

	// PresetMedium uses the standard threshold and no diagonals.
	PresetMedium

	// PresetHigh is the default: standard threshold, 16 orthogonal and 8
	// diagonal search steps.
	PresetHigh

	// PresetUltra uses a low threshold and the longest searches.
	PresetUltra
)

// presetParams holds the values a preset stands for.
type presetParams struct {
	threshold     float32
	searchSteps   int
	diagonalSteps int // 0 disables diagonal detection
}

var presets = [...]presetParams{
	PresetLow:    {threshold: 0.15, searchSteps: 4},
	PresetMedium: {threshold: 0.1, searchSteps: 8},
	PresetHigh:   {threshold: 0.1, searchSteps: 16, diagonalSteps: 8},
	PresetUltra:  {threshold: 0.05, searchSteps: 32, diagonalSteps: 16},
}

// String returns the lowercase preset name.
func (p Preset) String() string {
	switch p {
	case PresetLow:
		return "low"
	case PresetMedium:
		return "medium"
	case PresetHigh:
		return "high"
	case PresetUltra:
		return "ultra"
	default:
		return fmt.Sprintf("Preset(%d)", uint8(p))
	}
}

// ParsePreset returns the preset with the given name (case-insensitive).
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(name) {
	case "low":
		return PresetLow, nil
	case "medium":
		return PresetMedium, nil
	case "high":
		return PresetHigh, nil
	case "ultra":
		return PresetUltra, nil
	}
	return 0, fmt.Errorf("%w: unknown preset %q", ErrInvalidOption, name)
}

// Search limits accepted by WithSearchSteps.
const (
	MaxSearchSteps         = 112
	MaxSearchStepsDiagonal = tables.AreaMaxDistanceDiag
)

// Option configures an Antialiaser during creation.
//
// Options are applied in order, so a preset should come before the options
// that refine it:
//
//	aa, err := smaa.New(area, search,
//	    smaa.WithPreset(smaa.PresetUltra),
//	    smaa.WithThreshold(0.08),
//	)
type Option func(*options)

// options holds the configuration of an Antialiaser.
type options struct {
	preset        Preset
	threshold     float32
	maxColor      float32
	searchSteps   int
	diagonalSteps int
	subsample     [4]int
	workers       int
	poolSize      int
	collector     Collector
	err           error
}

// defaultOptions returns the PresetHigh configuration for 8-bit colors.
func defaultOptions() options {
	o := options{
		maxColor: 255,
		workers:  0, // GOMAXPROCS
	}
	o.applyPreset(PresetHigh)
	return o
}

func (o *options) applyPreset(p Preset) {
	params := presets[p]
	o.preset = p
	o.threshold = params.threshold
	o.searchSteps = params.searchSteps
	o.diagonalSteps = params.diagonalSteps
}

// fail records the first invalid option.
func (o *options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidOption}, args...)...)
	}
}

// WithPreset selects the threshold and search limits of a preset.
func WithPreset(p Preset) Option {
	return func(o *options) {
		if int(p) >= len(presets) {
			o.fail("unknown preset %d", p)
			return
		}
		o.applyPreset(p)
	}
}

// WithThreshold sets the edge detection threshold as a fraction of the
// maximum color value. Lower values detect more edges. It must be in
// (0, 1].
func WithThreshold(t float32) Option {
	return func(o *options) {
		if !(t > 0 && t <= 1) {
			o.fail("threshold %v not in (0, 1]", t)
			return
		}
		o.threshold = t
	}
}

// WithMaxColor sets the value of a fully saturated channel. The default is
// 255 for 8-bit inputs; use 1 for normalized colors.
func WithMaxColor(v float32) Option {
	return func(o *options) {
		if !(v > 0) {
			o.fail("max color %v must be positive", v)
			return
		}
		o.maxColor = v
	}
}

// WithSearchSteps sets the orthogonal and diagonal search limits in pixels.
// A diagonal limit of 0 disables diagonal detection.
func WithSearchSteps(steps, diagonalSteps int) Option {
	return func(o *options) {
		if steps < 1 || steps > MaxSearchSteps {
			o.fail("search steps %d not in [1, %d]", steps, MaxSearchSteps)
			return
		}
		if diagonalSteps < 0 || diagonalSteps > MaxSearchStepsDiagonal {
			o.fail("diagonal search steps %d not in [0, %d]", diagonalSteps, MaxSearchStepsDiagonal)
			return
		}
		o.searchSteps = steps
		o.diagonalSteps = diagonalSteps
	}
}

// WithSubsampleIndices selects the area table sub-tables used for the
// vertical, horizontal and the two diagonal lookups. Single-sample inputs
// use the default of all zeros. Each index must be in [0, 4].
func WithSubsampleIndices(vertical, horizontal, diag1, diag2 int) Option {
	return func(o *options) {
		idx := [4]int{vertical, horizontal, diag1, diag2}
		for _, i := range idx {
			if i < 0 || i > 4 {
				o.fail("subsample index %d not in [0, 4]", i)
				return
			}
		}
		o.subsample = idx
	}
}

// WithWorkers sets the number of goroutines each phase is split across.
// 0 means GOMAXPROCS; 1 runs everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.fail("workers %d must not be negative", n)
			return
		}
		o.workers = n
	}
}

// WithPool keeps up to n intermediate buffers of each size for reuse across
// Apply calls. 0 disables pooling, which is the default.
func WithPool(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.fail("pool size %d must not be negative", n)
			return
		}
		o.poolSize = n
	}
}

// WithCollector records search samples of the weight phase into c. With
// more than one worker, c is called from several goroutines.
func WithCollector(c Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}
