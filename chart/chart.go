// Package chart loads hair color charts and cycles through them.
//
// A chart file is CSV with one chart per row: nine numbers in [0,1], the
// red, green and blue of the minimum, mode and maximum colors in that
// order. Rows with a different number of fields, or with a field that is
// not a number, are skipped. Files may be UTF-8, with or without a byte
// order mark, or UTF-16 with a byte order mark, as spreadsheet exports are.
package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/haircolor"
)

// FieldsPerChart is the number of CSV fields describing one chart.
const FieldsPerChart = 9

// Matrix is an ordered list of color charts with a cursor. The cursor
// starts at the first chart and wraps to it after the last.
//
// A Matrix is not safe for concurrent use.
type Matrix struct {
	charts  []haircolor.ColorChart
	current int
}

// New creates a Matrix holding charts.
func New(charts ...haircolor.ColorChart) *Matrix {
	return &Matrix{charts: append([]haircolor.ColorChart(nil), charts...)}
}

// Parse reads charts from CSV. Only read errors are returned; malformed
// rows are skipped and logged at debug level.
func Parse(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	m := &Matrix{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				haircolor.Logger().Debug("chart: skipping malformed row", "line", perr.Line, "err", perr.Err)
				continue
			}
			return nil, fmt.Errorf("chart: read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != FieldsPerChart {
			haircolor.Logger().Debug("chart: skipping row", "line", line, "fields", len(rec))
			continue
		}
		c, err := parseChart(rec)
		if err != nil {
			haircolor.Logger().Debug("chart: skipping row", "line", line, "err", err)
			continue
		}
		m.charts = append(m.charts, c)
	}
	haircolor.Logger().Debug("chart: parsed", "charts", len(m.charts))
	return m, nil
}

// Load reads charts from the CSV file at path.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseChart(rec []string) (haircolor.ColorChart, error) {
	var v [FieldsPerChart]float64
	for i, s := range rec {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return haircolor.ColorChart{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		v[i] = f
	}
	return haircolor.ColorChart{
		Min:  haircolor.RGB(v[0], v[1], v[2]).Clamp(),
		Mode: haircolor.RGB(v[3], v[4], v[5]).Clamp(),
		Max:  haircolor.RGB(v[6], v[7], v[8]).Clamp(),
	}, nil
}

// Len returns the number of charts.
func (m *Matrix) Len() int {
	return len(m.charts)
}

// Index returns the cursor position.
func (m *Matrix) Index() int {
	return m.current
}

// Current returns the chart under the cursor. An empty Matrix returns a
// chart of transparent colors.
func (m *Matrix) Current() haircolor.ColorChart {
	if len(m.charts) == 0 {
		return haircolor.ColorChart{
			Min:  haircolor.Transparent,
			Mode: haircolor.Transparent,
			Max:  haircolor.Transparent,
		}
	}
	return m.charts[m.current]
}

// Next advances the cursor, wrapping to the first chart after the last,
// and returns the new current chart.
func (m *Matrix) Next() haircolor.ColorChart {
	m.current++
	if m.current >= len(m.charts) {
		m.current = 0
	}
	return m.Current()
}

// Seek moves the cursor to i modulo Len and returns the chart there.
func (m *Matrix) Seek(i int) haircolor.ColorChart {
	if n := len(m.charts); n > 0 {
		m.current = ((i % n) + n) % n
	}
	return m.Current()
}

// Reset moves the cursor back to the first chart.
func (m *Matrix) Reset() {
	m.current = 0
}

// Swatch returns the mode color of the current chart, the color a
// chart picker shows for it.
func (m *Matrix) Swatch() haircolor.RGBA {
	return m.Current().Mode
}

// Charts returns a copy of all charts in order.
func (m *Matrix) Charts() []haircolor.ColorChart {
	return append([]haircolor.ColorChart(nil), m.charts...)
}
