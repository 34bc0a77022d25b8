// Command haircolor recolors the hair in a photo using a hair matte and a
// color chart file.
//
//	haircolor render --photo in.jpg --matte hair.png --charts ColorData.csv --index 2 --output out.png
//	haircolor gradient --photo in.jpg --matte hair.png --charts ColorData.csv --output strip.png
//	haircolor charts --charts ColorData.csv
package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/haircolor"
	"github.com/gogpu/haircolor/chart"
)

// flag names
const (
	photoFlagName   = "photo"
	matteFlagName   = "matte"
	chartsFlagName  = "charts"
	indexFlagName   = "index"
	outputFlagName  = "output"
	debugFlagName   = "debug"
	verboseFlagName = "verbose"
)

var (
	photoFlag = &cli.StringFlag{
		Name:     photoFlagName,
		Usage:    "photo to recolor (PNG or JPEG)",
		EnvVars:  []string{"HAIRCOLOR_PHOTO"},
		Required: true,
	}
	matteFlag = &cli.StringFlag{
		Name:     matteFlagName,
		Usage:    "hair matte (grayscale or alpha PNG); the photo is resized to its height",
		EnvVars:  []string{"HAIRCOLOR_MATTE"},
		Required: true,
	}
	chartsFlag = &cli.StringFlag{
		Name:    chartsFlagName,
		Value:   "ColorData.csv",
		Usage:   "color chart CSV, nine values per row",
		EnvVars: []string{"HAIRCOLOR_CHARTS"},
	}
	indexFlag = &cli.IntFlag{
		Name:    indexFlagName,
		Usage:   "chart to use; wraps around the number of charts",
		EnvVars: []string{"HAIRCOLOR_INDEX"},
	}
	outputFlag = &cli.StringFlag{
		Name:    outputFlagName,
		Aliases: []string{"o"},
		Value:   "haircolor.png",
		Usage:   "output PNG",
	}
	debugFlag = &cli.BoolFlag{
		Name:    debugFlagName,
		Usage:   "draw the hair lightness range over the image",
		EnvVars: []string{"HAIRCOLOR_DEBUG"},
	}
	verboseFlag = &cli.BoolFlag{
		Name:    verboseFlagName,
		Aliases: []string{"v"},
		Usage:   "log pipeline stages",
	}
)

func main() {
	if err := newApp(os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "haircolor:", err)
		os.Exit(1)
	}
}

func newApp(logOut io.Writer) *cli.App {
	return &cli.App{
		Name:  "haircolor",
		Usage: "recolor hair in a photo from a hair matte and a color chart",
		Flags: []cli.Flag{verboseFlag},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool(verboseFlagName) {
				level = slog.LevelDebug
			}
			haircolor.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "write the recolored photo",
				ArgsUsage: " ",
				Flags:     []cli.Flag{photoFlag, matteFlag, chartsFlag, indexFlag, outputFlag, debugFlag},
				Action:    renderAction,
			},
			{
				Name:      "gradient",
				Usage:     "write the gradient strip used to recolor the photo",
				ArgsUsage: " ",
				Flags:     []cli.Flag{photoFlag, matteFlag, chartsFlag, indexFlag, outputFlag},
				Action:    gradientAction,
			},
			{
				Name:      "charts",
				Usage:     "list the charts in a chart file",
				ArgsUsage: " ",
				Flags:     []cli.Flag{chartsFlag},
				Action:    chartsAction,
			},
		},
	}
}

// setup loads the inputs named by the flags into a Changer ready to render.
func setup(c *cli.Context, opts ...haircolor.Option) (*haircolor.Changer, error) {
	photo, err := haircolor.LoadImage(c.String(photoFlagName))
	if err != nil {
		return nil, err
	}
	matte, err := haircolor.LoadImage(c.String(matteFlagName))
	if err != nil {
		return nil, err
	}
	charts, err := chart.Load(c.String(chartsFlagName))
	if err != nil {
		return nil, err
	}
	if charts.Len() == 0 {
		return nil, fmt.Errorf("%s: no charts", c.String(chartsFlagName))
	}

	ch := haircolor.NewChanger(opts...)
	if err := ch.SetupPhoto(photo, matte); err != nil {
		return nil, err
	}
	ch.SetupColor(charts.Seek(c.Int(indexFlagName)))
	return ch, nil
}

func renderAction(c *cli.Context) error {
	ch, err := setup(c, haircolor.WithDiagnostics(c.Bool(debugFlagName)))
	if err != nil {
		return err
	}
	img, err := ch.Render()
	if err != nil {
		return err
	}
	if err := img.SavePNG(c.String(outputFlagName)); err != nil {
		return err
	}
	l, _ := ch.Lightness()
	haircolor.Logger().Info("rendered", "output", c.String(outputFlagName), "lightness", l.String())
	return nil
}

func gradientAction(c *cli.Context) error {
	ch, err := setup(c)
	if err != nil {
		return err
	}
	g, ok := ch.Gradient()
	if !ok {
		return haircolor.ErrMissingInput
	}
	return g.Rasterize().SavePNG(c.String(outputFlagName))
}

func chartsAction(c *cli.Context) error {
	charts, err := chart.Load(c.String(chartsFlagName))
	if err != nil {
		return err
	}
	w := c.App.Writer
	for i, ch := range charts.Charts() {
		fmt.Fprintf(w, "%3d  min %s  mode %s  max %s\n", i, hex(ch.Min), hex(ch.Mode), hex(ch.Max))
	}
	return nil
}

func hex(c haircolor.RGBA) string {
	n := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
