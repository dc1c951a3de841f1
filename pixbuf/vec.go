package pixbuf

import "math"

// Vec1 is a single-channel pixel.
type Vec1 [1]float32

// Vec2 is a two-channel pixel, used for edge flags and area table texels.
type Vec2 [2]float32

// Vec3 is a three-channel pixel, typically the RGB part of a color.
type Vec3 [3]float32

// Vec4 is a four-channel pixel: RGBA colors and blending weights.
type Vec4 [4]float32

// IVec4 is a four-channel integer pixel produced at the end of a pipeline.
type IVec4 [4]int32

// round32 rounds half away from zero, like C's round().
func round32(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Abs32 returns the absolute value of v.
func Abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// step returns 1 when x >= edge and 0 otherwise (HLSL step).
func step(edge, x float32) float32 {
	if x >= edge {
		return 1
	}
	return 0
}

// Lerp32 interpolates between from and to as (to-from)*t + from.
func Lerp32(from, to, t float32) float32 {
	return (to-from)*t + from
}

// =============================================================================
// Vec1
// =============================================================================

// Lerp interpolates from v towards to by t.
func (v Vec1) Lerp(to Vec1, t float32) Vec1 {
	return Vec1{Lerp32(v[0], to[0], t)}
}

// Len returns the channel depth.
func (Vec1) Len() int { return 1 }

// Elem returns channel i.
func (v Vec1) Elem(i int) float64 { return float64(v[i]) }

// WithElem returns a copy of v with channel i set to x.
func (v Vec1) WithElem(i int, x float64) Vec1 {
	v[i] = float32(x)
	return v
}

// =============================================================================
// Vec2
// =============================================================================

// Splat2 returns a Vec2 with every channel set to s.
func Splat2(s float32) Vec2 { return Vec2{s, s} }

// Lerp interpolates from v towards to by t.
func (v Vec2) Lerp(to Vec2, t float32) Vec2 {
	return Vec2{Lerp32(v[0], to[0], t), Lerp32(v[1], to[1], t)}
}

// Len returns the channel depth.
func (Vec2) Len() int { return 2 }

// Elem returns channel i.
func (v Vec2) Elem(i int) float64 { return float64(v[i]) }

// WithElem returns a copy of v with channel i set to x.
func (v Vec2) WithElem(i int, x float64) Vec2 {
	v[i] = float32(x)
	return v
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v[0] * w[0], v[1] * w[1]} }

// Div divides element-wise.
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{v[0] / w[0], v[1] / w[1]} }

// Scale multiplies every channel by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// AddScalar adds s to every channel.
func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v[0] + s, v[1] + s} }

func (v Vec2) Abs() Vec2   { return Vec2{Abs32(v[0]), Abs32(v[1])} }
func (v Vec2) Round() Vec2 { return Vec2{round32(v[0]), round32(v[1])} }
func (v Vec2) Sqrt() Vec2  { return Vec2{sqrt32(v[0]), sqrt32(v[1])} }

func (v Vec2) Min(w Vec2) Vec2 { return Vec2{min(v[0], w[0]), min(v[1], w[1])} }
func (v Vec2) Max(w Vec2) Vec2 { return Vec2{max(v[0], w[0]), max(v[1], w[1])} }

// Clamp limits every channel to [lo, hi].
func (v Vec2) Clamp(lo, hi float32) Vec2 {
	return Vec2{clamp32(v[0], lo, hi), clamp32(v[1], lo, hi)}
}

// Sum adds the channels in index order.
func (v Vec2) Sum() float32 { return v[0] + v[1] }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 {
	var total float32
	total += v[0] * w[0]
	total += v[1] * w[1]
	return total
}

// MaxElem returns the largest channel.
func (v Vec2) MaxElem() float32 { return max(v[0], v[1]) }

// Normalize divides v by the sum of its channels.
func (v Vec2) Normalize() Vec2 {
	s := v.Sum()
	return Vec2{v[0] / s, v[1] / s}
}

// YX swaps the two channels.
func (v Vec2) YX() Vec2 { return Vec2{v[1], v[0]} }

// Step2 returns, per channel, 1 when x >= edge and 0 otherwise.
func Step2(edge, x Vec2) Vec2 {
	return Vec2{step(edge[0], x[0]), step(edge[1], x[1])}
}

// =============================================================================
// Vec3
// =============================================================================

// Lerp interpolates from v towards to by t.
func (v Vec3) Lerp(to Vec3, t float32) Vec3 {
	return Vec3{Lerp32(v[0], to[0], t), Lerp32(v[1], to[1], t), Lerp32(v[2], to[2], t)}
}

// Len returns the channel depth.
func (Vec3) Len() int { return 3 }

// Elem returns channel i.
func (v Vec3) Elem(i int) float64 { return float64(v[i]) }

// WithElem returns a copy of v with channel i set to x.
func (v Vec3) WithElem(i int, x float64) Vec3 {
	v[i] = float32(x)
	return v
}

func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }
func (v Vec3) Abs() Vec3       { return Vec3{Abs32(v[0]), Abs32(v[1]), Abs32(v[2])} }

// MaxElem returns the largest channel.
func (v Vec3) MaxElem() float32 { return max(max(v[0], v[1]), v[2]) }

// =============================================================================
// Vec4
// =============================================================================

// Splat4 returns a Vec4 with every channel set to s.
func Splat4(s float32) Vec4 { return Vec4{s, s, s, s} }

// Lerp interpolates from v towards to by t.
func (v Vec4) Lerp(to Vec4, t float32) Vec4 {
	return Vec4{
		Lerp32(v[0], to[0], t),
		Lerp32(v[1], to[1], t),
		Lerp32(v[2], to[2], t),
		Lerp32(v[3], to[3], t),
	}
}

// Len returns the channel depth.
func (Vec4) Len() int { return 4 }

// Elem returns channel i.
func (v Vec4) Elem(i int) float64 { return float64(v[i]) }

// WithElem returns a copy of v with channel i set to x.
func (v Vec4) WithElem(i int, x float64) Vec4 {
	v[i] = float32(x)
	return v
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Scale multiplies every channel by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4) Abs() Vec4 {
	return Vec4{Abs32(v[0]), Abs32(v[1]), Abs32(v[2]), Abs32(v[3])}
}

func (v Vec4) Round() Vec4 {
	return Vec4{round32(v[0]), round32(v[1]), round32(v[2]), round32(v[3])}
}

func (v Vec4) Max(w Vec4) Vec4 {
	return Vec4{max(v[0], w[0]), max(v[1], w[1]), max(v[2], w[2]), max(v[3], w[3])}
}

func (v Vec4) Min(w Vec4) Vec4 {
	return Vec4{min(v[0], w[0]), min(v[1], w[1]), min(v[2], w[2]), min(v[3], w[3])}
}

// Clamp limits every channel to [lo, hi].
func (v Vec4) Clamp(lo, hi float32) Vec4 {
	return Vec4{clamp32(v[0], lo, hi), clamp32(v[1], lo, hi), clamp32(v[2], lo, hi), clamp32(v[3], lo, hi)}
}

// Sum adds the channels in index order.
func (v Vec4) Sum() float32 { return v[0] + v[1] + v[2] + v[3] }

// XY returns channels 0 and 1.
func (v Vec4) XY() Vec2 { return Vec2{v[0], v[1]} }

// ZW returns channels 2 and 3.
func (v Vec4) ZW() Vec2 { return Vec2{v[2], v[3]} }

// XZ returns channels 0 and 2.
func (v Vec4) XZ() Vec2 { return Vec2{v[0], v[2]} }

// YW returns channels 1 and 3.
func (v Vec4) YW() Vec2 { return Vec2{v[1], v[3]} }

// RGB returns the first three channels.
func (v Vec4) RGB() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Swizzle2 extracts channels i and j into a Vec2.
func (v Vec4) Swizzle2(i, j int) Vec2 { return Vec2{v[i], v[j]} }

// Swizzle4 reorders channels: Swizzle4(1, 0, 3, 2) swaps both pairs.
func (v Vec4) Swizzle4(i, j, k, l int) Vec4 { return Vec4{v[i], v[j], v[k], v[l]} }

// Int truncates every channel toward zero, matching a C float to int cast.
func (v Vec4) Int() IVec4 {
	return IVec4{int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])}
}

// =============================================================================
// IVec4
// =============================================================================

// Lerp interpolates in floating point and truncates the result.
func (v IVec4) Lerp(to IVec4, t float32) IVec4 {
	return v.Float().Lerp(to.Float(), t).Int()
}

// Len returns the channel depth.
func (IVec4) Len() int { return 4 }

// Elem returns channel i.
func (v IVec4) Elem(i int) float64 { return float64(v[i]) }

// WithElem returns a copy of v with channel i set to the truncated x.
func (v IVec4) WithElem(i int, x float64) IVec4 {
	v[i] = int32(x)
	return v
}

// Float converts every channel to float32.
func (v IVec4) Float() Vec4 {
	return Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}
