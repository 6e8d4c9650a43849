package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestLoadKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	height := writePNG(t, dir, "height.png", 4, 2, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	normal := writePNG(t, dir, "normal.png", 2, 2, color.NRGBA{R: 128, G: 128, B: 255, A: 255})

	textures, err := Load(height, "", normal)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(textures) != 3 {
		t.Fatalf("len = %d, want 3", len(textures))
	}
	if textures[1] != nil {
		t.Fatalf("empty path produced a texture")
	}

	h, n := textures[0], textures[2]
	if h.Name != "height" || h.Width != 4 || h.Height != 2 || len(h.Pixels) != 4*2*4 {
		t.Fatalf("height map = %s %dx%d (%d bytes)", h.Name, h.Width, h.Height, len(h.Pixels))
	}
	if n.Name != "normal" || n.Pixels[2] != 255 {
		t.Fatalf("normal map = %s, first pixel %v", n.Name, n.Pixels[:4])
	}

	staging := h.StagingData()
	if staging.Empty() || staging.Width != 4 || staging.Height != 2 {
		t.Fatalf("staging data = %dx%d", staging.Width, staging.Height)
	}
}

func TestLoadNoPaths(t *testing.T) {
	textures, err := Load()
	if err != nil || len(textures) != 0 {
		t.Fatalf("Load() = %v, %v", textures, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
