// Package wobble holds the distortion applied to the captured screen: the
// Kage fragment shader and a CPU mirror of its arithmetic.
//
// Texture coordinates use a bottom-left origin: (0, 0) is the bottom-left
// corner of the screen and (1, 1) the top-right one.
package wobble

import (
	_ "embed"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/iburimskiy/wobble-overlay/internal/config"
)

//go:embed wobble_shader.go
var shaderSource []byte

// Shader returns the Kage source of the wobble fragment shader.
func Shader() []byte {
	return shaderSource
}

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (p Vec2) Add(q Vec2) Vec2 {
	return Vec2{p.X + q.X, p.Y + q.Y}
}

func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

func (p Vec2) Scale(s float64) Vec2 {
	return Vec2{p.X * s, p.Y * s}
}

func (p Vec2) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Base is the time-animated sinusoidal part of the offset.
func Base(v Vec2, t float64) Vec2 {
	return Vec2{
		X: math.Sin(v.Y*config.WobbleFrequency+t) * config.WobbleAmplitude,
		Y: math.Cos(v.X*config.WobbleFrequency+t) * config.WobbleAmplitude,
	}
}

// Influence is the inverse-distance weight of the cursor. It peaks at
// 1/MouseFalloff when dist is zero.
func Influence(dist float64) float64 {
	return 1 / (dist + config.MouseFalloff)
}

// MouseTerm pushes v away from the cursor.
func MouseTerm(v, mouse Vec2) Vec2 {
	d := v.Sub(mouse)
	return d.Scale(Influence(d.Len()) * config.MouseStrength)
}

// Offset is the total displacement added to v before sampling.
func Offset(v, mouse Vec2, t float64) Vec2 {
	return Base(v, t).Add(MouseTerm(v, mouse))
}

// SampleCoord returns the unclamped coordinate the shader samples for v.
func SampleCoord(v, mouse Vec2, t float64) Vec2 {
	return v.Add(Offset(v, mouse, t))
}

// ClampToEdge clamps a texture coordinate to the centres of the edge texels
// of a w×h texture, which is what the shader does before reading.
func ClampToEdge(p Vec2, w, h int) Vec2 {
	hx := 0.5 / float64(w)
	hy := 0.5 / float64(h)
	return Vec2{
		X: Clamp(p.X, hx, 1-hx),
		Y: Clamp(p.Y, hy, 1-hy),
	}
}

// TexCoord maps the centre of image pixel (px, py), y pointing down, to a
// texture coordinate.
func TexCoord(px, py, w, h int) Vec2 {
	return Vec2{
		X: (float64(px) + 0.5) / float64(w),
		Y: 1 - (float64(py)+0.5)/float64(h),
	}
}

// Uniforms builds the uniform map for one draw call.
func Uniforms(t float64, mouse Vec2) map[string]any {
	return map[string]any{
		"Time":      float32(t),
		"MousePos":  []float32{float32(mouse.X), float32(mouse.Y)},
		"Frequency": float32(config.WobbleFrequency),
		"Amplitude": float32(config.WobbleAmplitude),
		"Falloff":   float32(config.MouseFalloff),
		"Strength":  float32(config.MouseStrength),
	}
}

func Clamp[N constraints.Ordered](n, minN, maxN N) N {
	if n < minN {
		return minN
	}
	if n > maxN {
		return maxN
	}
	return n
}
