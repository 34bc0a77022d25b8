package haircolor

import "testing"

func TestNewLUT(t *testing.T) {
	g := testGradient(0, 0.5, 1)
	lut := NewLUT(g)
	if got := fromU8(lut[0]); got != chartRed {
		t.Errorf("lut[0] = %+v, want min color", got)
	}
	if got := fromU8(lut[255]); got != chartBlue {
		t.Errorf("lut[255] = %+v, want max color", got)
	}
}

func TestColorMap(t *testing.T) {
	gray := NewPixmap(3, 1)
	setLevel(gray, 0, 0, 0, 255)
	setLevel(gray, 1, 0, 255, 128)
	// pixel 2 stays transparent

	out := ColorMap(gray, NewLUT(testGradient(0, 0.5, 1)))

	if got := out.GetPixel(0, 0); got != chartRed {
		t.Errorf("level 0 = %+v, want min color", got)
	}
	got := out.Data()[4:8]
	if got[0] != 0 || got[1] != 0 || got[2] != 255 || got[3] != 128 {
		t.Errorf("half covered level 255 = %v, want blue with alpha 128", got)
	}
	if got := out.GetPixel(2, 0); got != Transparent {
		t.Errorf("transparent pixel = %+v, want transparent", got)
	}
}

func TestSourceOverKeepsBackgroundOutsideRegion(t *testing.T) {
	photo := NewPixmap(4, 4)
	photo.Clear(RGB(0.2, 0.3, 0.4))
	recolored := NewPixmap(4, 4)
	recolored.SetPixel(1, 1, chartGreen)

	out := SourceOver(recolored, photo)
	if got := out.GetPixel(1, 1); got != chartGreen {
		t.Errorf("recolored pixel = %+v, want green", got)
	}
	for _, p := range [][2]int{{0, 0}, {3, 3}, {2, 1}} {
		if got, want := out.GetPixel(p[0], p[1]), photo.GetPixel(p[0], p[1]); got != want {
			t.Errorf("pixel %v = %+v, want photo %+v", p, got, want)
		}
	}
}
