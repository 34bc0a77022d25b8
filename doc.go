// Package haircolor recolors the hair in a photo.
//
// # Overview
//
// Given a photo and a hair matte (a grayscale mask where non-zero marks
// hair), haircolor measures how light the hair is and maps that lightness
// onto a three-color chart: the darkest hair takes the chart's minimum
// color, the most common lightness takes its mode color and the brightest
// hair takes its maximum color. The recolored hair is composited back over
// the photo.
//
// # Quick Start
//
//	import "github.com/gogpu/haircolor"
//
//	c := haircolor.NewChanger()
//	if err := c.SetupPhoto(photo, matte); err != nil {
//	    return err
//	}
//	c.SetupColor(haircolor.ColorChart{
//	    Min:  haircolor.RGB(0.15, 0.05, 0.02),
//	    Mode: haircolor.RGB(0.55, 0.25, 0.10),
//	    Max:  haircolor.RGB(0.95, 0.75, 0.45),
//	})
//	img, err := c.Render()
//
// # Pipeline
//
// SetupPhoto runs once per photo:
//   - ResizeToMatch scales the photo to the matte's height (Lanczos)
//   - CutoutGray keeps the hair and converts it to luminance
//   - ExtractLightness finds the min, mode and max lightness
//
// Render runs once per chart:
//   - NewGradient places the chart colors at those lightness points
//   - ColorMap looks each hair pixel up in the gradient
//   - SourceOver composites the result over the resized photo
//
// Changing only the chart re-runs the Render stages. Lookup tables are
// memoized per gradient, so cycling back to a chart is cheap.
//
// # Color
//
// Images are non-premultiplied 8-bit RGBA (Pixmap). Gradients interpolate in
// linear light and are stored as sRGB.
package haircolor
