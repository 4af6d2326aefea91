//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var MousePos vec2

var Frequency float
var Amplitude float
var Falloff float
var Strength float

// texelAt reads one texel, clamping to the edge texels.
func texelAt(p vec2) vec4 {
	size := imageSrc0Size()
	p = clamp(p, vec2(0.5), size-vec2(0.5))
	return imageSrc0UnsafeAt(p + imageSrc0Origin())
}

func bilinear(p vec2) vec4 {
	q := p - vec2(0.5)
	base := floor(q) + vec2(0.5)
	f := fract(q)

	c00 := texelAt(base)
	c10 := texelAt(base + vec2(1, 0))
	c01 := texelAt(base + vec2(0, 1))
	c11 := texelAt(base + vec2(1, 1))

	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	size := imageSrc0Size()
	local := srcPos - imageSrc0Origin()

	// bottom-left origin, same as MousePos
	v := vec2(local.x/size.x, 1-local.y/size.y)

	wobble := vec2(
		sin(v.y*Frequency+Time)*Amplitude,
		cos(v.x*Frequency+Time)*Amplitude,
	)

	d := v - MousePos
	influence := 1 / (length(d) + Falloff)
	wobble += d * influence * Strength

	uv := v + wobble
	c := bilinear(vec2(uv.x, 1-uv.y) * size)
	return vec4(c.rgb, 1)
}
