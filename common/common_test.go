package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chewxy/math32"
)

func viewProjection(near, far float32) []float32 {
	view := make([]float32, 16)
	proj := make([]float32, 16)
	vp := make([]float32, 16)
	LookAt(view, 0, 0, 0, 0, 0, -1, 0, 1, 0)
	Perspective(proj, math32.Pi/2, 1, near, far)
	Mul4(vp, proj, view)
	return vp
}

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 2, 2}
	if a.Length() != 3 {
		t.Fatalf("length = %v, want 3", a.Length())
	}
	n := a.Normalize()
	if math32.Abs(n.Length()-1) > 1e-6 {
		t.Fatalf("normalized length = %v", n.Length())
	}
	if c := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); c != (Vec3{0, 0, 1}) {
		t.Fatalf("cross = %v", c)
	}
	if d := a.Distance(Vec3{1, 2, 5}); d != 3 {
		t.Fatalf("distance = %v", d)
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i + 1)
	}
	out := make([]float32, 16)
	Mul4(out, id, m)
	for i := range m {
		if out[i] != m[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], m[i])
		}
	}
}

func TestFrustumPoints(t *testing.T) {
	f := ExtractFrustumFromMatrix(viewProjection(0.1, 100))

	cases := []struct {
		name   string
		point  Vec3
		inside bool
	}{
		{"ahead", Vec3{0, 0, -5}, true},
		{"behind", Vec3{0, 0, 5}, false},
		{"before near plane", Vec3{0, 0, -0.05}, false},
		{"beyond far plane", Vec3{0, 0, -200}, false},
		{"right of view", Vec3{100, 0, -5}, false},
		{"above view", Vec3{0, 100, -5}, false},
	}
	for _, tc := range cases {
		if got := f.IsPointInside(tc.point); got != tc.inside {
			t.Fatalf("%s: inside = %v, want %v", tc.name, got, tc.inside)
		}
	}
}

func TestFrustumShapes(t *testing.T) {
	f := ExtractFrustumFromMatrix(viewProjection(0.1, 100))

	straddling := []Vec3{{-50, 0, -5}, {50, 0, -5}}
	if !f.IsShapeInside(straddling) {
		t.Fatalf("shape spanning the view rejected")
	}
	behind := []Vec3{{-1, 0, 5}, {1, 0, 5}, {0, 1, 6}}
	if f.IsShapeInside(behind) {
		t.Fatalf("shape behind the camera accepted")
	}
}

func TestImageSourceDecode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	src := &ImageSource{Data: encoded.Bytes()}
	pixels, w, h, err := src.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w != 3 || h != 2 || len(pixels) != 3*2*4 {
		t.Fatalf("decoded %dx%d with %d bytes", w, h, len(pixels))
	}
	last := pixels[len(pixels)-4:]
	if last[0] != 10 || last[1] != 20 || last[2] != 30 || last[3] != 255 {
		t.Fatalf("last pixel = %v", last)
	}
	if src.Width != 3 || src.Height != 2 {
		t.Fatalf("source size %dx%d", src.Width, src.Height)
	}
}

func TestImageSourceDecodeErrors(t *testing.T) {
	if _, _, _, err := (&ImageSource{}).Decode(); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, _, _, err := (&ImageSource{Path: "does-not-exist.png"}).Decode(); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, _, _, err := (&ImageSource{Data: []byte("not an image")}).Decode(); err == nil {
		t.Fatalf("expected error for garbage data")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Fatalf("Coalesce = %d, want 3", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("Coalesce = %q, want empty", got)
	}
}
