package smaa

import (
	"fmt"
	"strings"

	"github.com/gogpu/smaa/pixbuf"
)

// Step names a pipeline phase after which Run stops.
type Step uint8

const (
	// StepEdges stops after edge detection.
	StepEdges Step = iota

	// StepWeights stops after the blending weight phase.
	StepWeights

	// StepBlend runs the whole pipeline.
	StepBlend
)

// String returns the lowercase step name.
func (s Step) String() string {
	switch s {
	case StepEdges:
		return "edges"
	case StepWeights:
		return "weights"
	case StepBlend:
		return "blend"
	default:
		return fmt.Sprintf("Step(%d)", uint8(s))
	}
}

// ParseStep returns the step with the given name (case-insensitive).
func ParseStep(name string) (Step, error) {
	switch strings.ToLower(name) {
	case "edges":
		return StepEdges, nil
	case "weights":
		return StepWeights, nil
	case "blend":
		return StepBlend, nil
	}
	return 0, fmt.Errorf("%w: unknown step %q", ErrInvalidOption, name)
}

// weightScale brightens weights so that typical coverages are visible.
const weightScale = 120.0 / 255.0

// Run executes the pipeline up to and including until and returns a color
// image of that phase's output, in the same color range as colors.
//
// Edges are drawn red for west edges and green for north edges. Weights are
// drawn red for north lines and green for west lines; pixels without weights
// are transparent. StepBlend returns the antialiased image.
func (a *Antialiaser) Run(colors *pixbuf.Buffer[pixbuf.Vec4], until Step) *pixbuf.Buffer[pixbuf.Vec4] {
	maxColor := a.opts.maxColor

	edges := a.Edges(colors)
	if until == StepEdges {
		return pixbuf.Map(edges, func(e pixbuf.Vec2) pixbuf.Vec4 {
			return pixbuf.Vec4{e[0], e[1], 0, 1}.Scale(maxColor)
		})
	}

	weights := a.Weights(edges)
	if until == StepWeights {
		out := weights.Clone()
		out.Apply(func(w pixbuf.Vec4) pixbuf.Vec4 {
			var alpha float32
			if w != (pixbuf.Vec4{}) {
				alpha = maxColor
			}
			return pixbuf.Vec4{
				(w[0] + w[1]) * weightScale * maxColor,
				(w[2] + w[3]) * weightScale * maxColor,
				0,
				alpha,
			}
		})
		return out
	}

	return a.Blend(colors, weights)
}
