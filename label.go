package haircolor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Diagnostic label layout, in pixels.
const (
	LabelFontSize    = 30
	labelMinFontSize = 8
	labelMargin      = 8
)

// LabelText formats the lightness range shown by the diagnostic label.
func LabelText(l Lightness) string {
	return fmt.Sprintf("min(%.4f) - max(%.4f)", l.Min, l.Max)
}

// labeler draws white text onto a pixmap. Fonts are parsed on first use.
type labeler struct {
	once sync.Once
	err  error

	glyphs *opentype.Font

	// mu guards shapingFace and shaper, neither of which is safe for
	// concurrent use.
	mu          sync.Mutex
	shapingFace *gotext.Face
	shaper      shaping.HarfbuzzShaper
}

var defaultLabeler = &labeler{}

func (l *labeler) load() error {
	l.once.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			l.err = fmt.Errorf("%w: parse label font: %v", ErrResourceUnavailable, err)
			return
		}
		face, err := gotext.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			l.err = fmt.Errorf("%w: parse label font for shaping: %v", ErrResourceUnavailable, err)
			return
		}
		l.glyphs = f
		l.shapingFace = face
	})
	return l.err
}

// measure returns the shaped advance of s at the given size, in pixels.
func (l *labeler) measure(s string, size float64) int {
	runes := []rune(s)
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      l.shapingFace,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	})
	return out.Advance.Ceil()
}

// fitSize shrinks the font until s fits inside width with margins.
func (l *labeler) fitSize(s string, width int) float64 {
	size := float64(LabelFontSize)
	for size > labelMinFontSize && l.measure(s, size) > width-2*labelMargin {
		size -= 2
	}
	return size
}

// draw returns a copy of dst with s written in white at the bottom-left.
func (l *labeler) draw(dst *Pixmap, s string) (*Pixmap, error) {
	if err := l.load(); err != nil {
		return nil, err
	}
	out := dst.Clone()
	if s == "" || dst.Empty() {
		return out, nil
	}

	size := l.fitSize(s, dst.width)
	face, err := opentype.NewFace(l.glyphs, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		// Unhinted, so glyph advances match the shaper that sized the text.
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: label face: %v", ErrResourceUnavailable, err)
	}
	defer func() {
		_ = face.Close()
	}()

	descent := face.Metrics().Descent.Ceil()
	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(labelMargin, dst.height-labelMargin-descent),
	}
	d.DrawString(s)
	return out, nil
}

// DrawLabel returns a copy of dst with the diagnostic text s drawn in white
// along the bottom-left edge. The font shrinks to fit narrow images.
func DrawLabel(dst *Pixmap, s string) (*Pixmap, error) {
	if dst == nil {
		return nil, ErrMissingInput
	}
	return defaultLabeler.draw(dst, s)
}
