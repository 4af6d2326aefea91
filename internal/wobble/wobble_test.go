package wobble

import (
	"bytes"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBaseAtOriginTimeZero(t *testing.T) {
	got := Base(V(0, 0), 0)
	if !near(got.X, 0, eps) || !near(got.Y, 0.02, eps) {
		t.Fatalf("expected (0, 0.02), got (%v, %v)", got.X, got.Y)
	}
}

func TestBaseIsPerAxis(t *testing.T) {
	// X depends only on v.Y, Y only on v.X.
	a := Base(V(0.1, 0.7), 1.5)
	b := Base(V(0.9, 0.7), 1.5)
	if !near(a.X, b.X, eps) {
		t.Fatalf("x offset changed with v.x: %v vs %v", a.X, b.X)
	}
	c := Base(V(0.1, 0.2), 1.5)
	if !near(a.Y, c.Y, eps) {
		t.Fatalf("y offset changed with v.y: %v vs %v", a.Y, c.Y)
	}
}

func TestBaseBounded(t *testing.T) {
	for i := 0; i < 200; i++ {
		f := float64(i) / 200
		o := Base(V(f, 1-f), f*37)
		if math.Abs(o.X) > 0.02+eps || math.Abs(o.Y) > 0.02+eps {
			t.Fatalf("offset out of amplitude at step %d: %+v", i, o)
		}
	}
}

func TestInfluenceStrictlyDecreasing(t *testing.T) {
	prev := Influence(0)
	for d := 0.001; d < 3; d += 0.001 {
		cur := Influence(d)
		if cur >= prev {
			t.Fatalf("influence not decreasing at %v: %v >= %v", d, cur, prev)
		}
		prev = cur
	}
}

func TestInfluenceCeiling(t *testing.T) {
	if got := Influence(0); !near(got, 10, eps) {
		t.Fatalf("expected 10 at zero distance, got %v", got)
	}
	for _, d := range []float64{1e-9, 1e-6, 1e-3, 0.5, 2} {
		if got := Influence(d); got > 10 {
			t.Fatalf("influence %v exceeds 10 at distance %v", got, d)
		}
	}
	if got := Influence(1e-9); !near(got, 10, 1e-6) {
		t.Fatalf("expected influence to approach 10, got %v", got)
	}
}

func TestMouseTermVanishesAtCursor(t *testing.T) {
	m := V(0.3, 0.6)
	got := MouseTerm(m, m)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("expected zero term at the cursor, got %+v", got)
	}
}

func TestMouseTermPointsAwayFromCursor(t *testing.T) {
	m := V(0.5, 0.5)
	got := MouseTerm(V(0.8, 0.5), m)
	if got.X <= 0 || !near(got.Y, 0, eps) {
		t.Fatalf("expected push along +x, got %+v", got)
	}
}

func TestEndToEndCentreCursor(t *testing.T) {
	// 1920x1080, cursor at (960, 540) normalizes to (0.5, 0.5).
	m := V(960.0/1920, 1-540.0/1080)
	if !near(m.X, 0.5, eps) || !near(m.Y, 0.5, eps) {
		t.Fatalf("unexpected mouse %+v", m)
	}

	term := MouseTerm(V(0, 0), m)
	want := -0.5 * 0.1 / (math.Sqrt(0.5) + 0.1)
	if !near(term.X, want, eps) || !near(term.Y, want, eps) {
		t.Fatalf("mouse term: expected (%v, %v), got %+v", want, want, term)
	}
	if !near(term.X, -0.0619, 1e-4) {
		t.Fatalf("mouse term x: expected about -0.0619, got %v", term.X)
	}

	got := SampleCoord(V(0, 0), m, 0)
	if !near(got.X, 0+term.X, eps) || !near(got.Y, 0.02+term.Y, eps) {
		t.Fatalf("sample coord: got %+v", got)
	}
}

func TestClampToEdge(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", V(0.5, 0.25), V(0.5, 0.25)},
		{"below", V(-0.06, -0.04), V(0.5/100, 0.5/50)},
		{"above", V(1.2, 1.01), V(1-0.5/100, 1-0.5/50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToEdge(tt.in, 100, 50)
			if !near(got.X, tt.want.X, eps) || !near(got.Y, tt.want.Y, eps) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTexCoordFlipsY(t *testing.T) {
	top := TexCoord(0, 0, 4, 4)
	bottom := TexCoord(0, 3, 4, 4)
	if !near(top.Y, 0.875, eps) || !near(bottom.Y, 0.125, eps) {
		t.Fatalf("expected top 0.875 and bottom 0.125, got %v and %v", top.Y, bottom.Y)
	}
}

func TestUniforms(t *testing.T) {
	u := Uniforms(1.25, V(0.5, 0.75))
	if got := u["Time"].(float32); got != 1.25 {
		t.Fatalf("expected Time 1.25, got %v", got)
	}
	mp := u["MousePos"].([]float32)
	if len(mp) != 2 || mp[0] != 0.5 || mp[1] != 0.75 {
		t.Fatalf("unexpected MousePos %v", mp)
	}
	for _, k := range []string{"Frequency", "Amplitude", "Falloff", "Strength"} {
		if _, ok := u[k]; !ok {
			t.Fatalf("missing uniform %q", k)
		}
	}
}

func TestShaderDeclaresUniforms(t *testing.T) {
	src := Shader()
	for k := range Uniforms(0, V(0, 0)) {
		if !bytes.Contains(src, []byte("var "+k+" ")) {
			t.Fatalf("shader does not declare uniform %q", k)
		}
	}
	if !bytes.Contains(src, []byte("func Fragment(")) {
		t.Fatal("shader has no Fragment entry point")
	}
}
