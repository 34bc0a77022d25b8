package haircolor

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 0.5}
	pm.SetPixel(2, 1, c)

	if got := pm.GetPixel(2, 1); !colorsEqual(got, c, colorEpsilon) {
		t.Errorf("GetPixel = %+v, want %+v", got, c)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %+v, want transparent", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)
	for _, p := range []image.Point{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		pm.SetPixel(p.X, p.Y, Black)
		if got := pm.GetPixel(p.X, p.Y); got != Transparent {
			t.Errorf("GetPixel(%v) = %+v, want transparent", p, got)
		}
	}
	for i, v := range pm.Data() {
		if v != 255 {
			t.Fatalf("out-of-bounds write modified data at %d", i)
		}
	}
}

func TestPixmapSetConvertsPremultiplied(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.Set(0, 0, color.RGBA{R: 100, A: 100})
	got := pm.Data()
	if got[0] != 255 || got[3] != 100 {
		t.Errorf("Set stored %v, want unpremultiplied red with alpha 100", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.RGBA{G: 255, A: 255})
	src.Set(12, 11, color.RGBA{B: 64, A: 128})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0); !colorsEqual(got, RGB(0, 1, 0), colorEpsilon) {
		t.Errorf("origin pixel = %+v", got)
	}
	if got := pm.GetPixel(2, 1); !colorsEqual(got, RGBA{B: 0.5, A: 0.5}, colorEpsilon) {
		t.Errorf("corner pixel = %+v", got)
	}
}

func TestFromImageNRGBAFastPath(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	pm := FromImage(src)
	if got := pm.Data()[12:16]; got[0] != 9 || got[1] != 8 || got[2] != 7 || got[3] != 6 {
		t.Errorf("pixel bytes = %v, want [9 8 7 6]", got)
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)
	c := pm.Clone()
	c.SetPixel(0, 0, Black)
	if pm.GetPixel(0, 0) != White {
		t.Error("Clone shares pixel data with the original")
	}
}

func TestSaveAndLoadPNG(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGB(0.2, 0.4, 0.6))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	got := FromImage(img)
	for i := range got.Data() {
		if got.Data()[i] != pm.Data()[i] {
			t.Fatalf("byte %d = %d, want %d", i, got.Data()[i], pm.Data()[i])
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
