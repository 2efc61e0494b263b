package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Errors returned for invalid input series.
var (
	ErrEmptySeries    = errors.New("plot: series must not be empty")
	ErrLengthMismatch = errors.New("plot: series lengths differ")
	ErrNoFiniteData   = errors.New("plot: series contain no finite values")
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	arrowSize   = 9.0
	arrowSpread = math.Pi / 7
	labelSize   = 10.0
)

// Annotation marks a point on the primary axis with a text label and an
// arrow. The label baseline starts at (TextX, TextY) in data coordinates.
type Annotation struct {
	X, Y         float64
	TextX, TextY float64
	Label        string
}

// Figure holds layout and styling for the dual-axis chart.
type Figure struct {
	Width  int
	Height int

	XLabel         string
	PrimaryLabel   string
	SecondaryLabel string

	PrimaryColor   drawing.Color
	SecondaryColor drawing.Color
	GridColor      drawing.Color
}

// DefaultFigure returns the eBUS receive-path layout: bus voltage on x,
// divider output in blue on the left, comparator output in red on the right.
func DefaultFigure() *Figure {
	return &Figure{
		Width:          defaultWidth,
		Height:         defaultHeight,
		XLabel:         "eBUS [V]",
		PrimaryLabel:   "Divider output [V]",
		SecondaryLabel: "Comparator output [V]",
		PrimaryColor:   chart.ColorBlue,
		SecondaryColor: chart.ColorRed,
		GridColor:      drawing.ColorFromHex("d0d0d0"),
	}
}

// RenderFile renders the chart to path, replacing any existing file.
// The encoding is chosen from the file extension.
func (f *Figure) RenderFile(path string, x, primary, secondary []float64, ann *Annotation) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, format, x, primary, secondary, ann); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: close output: %w", cerr)
		}
	}()

	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("plot: write output: %w", err)
	}

	return nil
}

// Render draws primary against x on the left axis and secondary against x
// as a step trace on the right axis, then encodes the chart to w.
func (f *Figure) Render(w io.Writer, format Format, x, primary, secondary []float64, ann *Annotation) error {
	if len(x) == 0 {
		return ErrEmptySeries
	}
	if len(primary) != len(x) || len(secondary) != len(x) {
		return fmt.Errorf("%w: x=%d primary=%d secondary=%d", ErrLengthMismatch, len(x), len(primary), len(secondary))
	}

	provider, err := format.provider()
	if err != nil {
		return err
	}

	c, err := f.build(x, primary, secondary, ann)
	if err != nil {
		return err
	}

	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("plot: render %s: %w", format, err)
	}

	return nil
}

func (f *Figure) build(x, primary, secondary []float64, ann *Annotation) (*chart.Chart, error) {
	xSeries := [][]float64{x}
	leftSeries := [][]float64{primary}
	if ann != nil {
		xSeries = append(xSeries, []float64{ann.X, ann.TextX})
		leftSeries = append(leftSeries, []float64{ann.Y, ann.TextY})
	}

	xr, err := axisRange(xSeries...)
	if err != nil {
		return nil, err
	}
	left, err := axisRange(leftSeries...)
	if err != nil {
		return nil, err
	}
	right, err := axisRange(secondary)
	if err != nil {
		return nil, err
	}

	grid := chart.Style{StrokeColor: f.GridColor, StrokeWidth: 1}
	sx, sy := StepPoints(x, secondary)

	// go-chart draws its secondary y axis on the left, so the primary
	// (divider) trace is attached to chart.YAxisSecondary.
	c := &chart.Chart{
		Width:  f.Width,
		Height: f.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           f.XLabel,
			Range:          xr,
			ValueFormatter: formatTick,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxisSecondary: chart.YAxis{
			Name:           f.PrimaryLabel,
			NameStyle:      chart.Style{FontColor: f.PrimaryColor},
			AxisType:       chart.YAxisSecondary,
			Range:          left,
			ValueFormatter: formatTick,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           f.SecondaryLabel,
			NameStyle:      chart.Style{FontColor: f.SecondaryColor},
			AxisType:       chart.YAxisPrimary,
			Range:          right,
			ValueFormatter: formatTick,
			GridMajorStyle: chart.Style{Hidden: true},
			GridMinorStyle: chart.Style{Hidden: true},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    f.PrimaryLabel,
				YAxis:   chart.YAxisSecondary,
				Style:   chart.Style{StrokeColor: f.PrimaryColor, StrokeWidth: 1.5},
				XValues: x,
				YValues: primary,
			},
			chart.ContinuousSeries{
				Name:    f.SecondaryLabel,
				YAxis:   chart.YAxisPrimary,
				Style:   chart.Style{StrokeColor: f.SecondaryColor, StrokeWidth: 1.5},
				XValues: sx,
				YValues: sy,
			},
		},
	}

	if ann != nil {
		c.Elements = []chart.Renderable{annotationElement(*ann, xr, left)}
	}

	return c, nil
}

// axisRange pads the finite limits of series and extends them to the
// tick grid.
func axisRange(series ...[]float64) (*tickedRange, error) {
	lo, hi, ok := limits(series...)
	if !ok {
		return nil, ErrNoFiniteData
	}
	lo, hi = padded(lo, hi)
	return newTickedRange(lo, hi, defaultTickCount), nil
}

// dataToPixel maps a data point onto the canvas the same way go-chart
// places series values.
func dataToPixel(canvas chart.Box, xr, yr chart.Range, x, y float64) (int, int) {
	return canvas.Left + xr.Translate(x), canvas.Bottom - yr.Translate(y)
}

// annotationElement draws the label and an arrow from the label's bounding
// box to the annotated point. xr and yr must be the ranges configured on
// the axes the point belongs to.
func annotationElement(ann Annotation, xr, yr chart.Range) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		tx, ty := dataToPixel(canvas, xr, yr, ann.TextX, ann.TextY)
		px, py := dataToPixel(canvas, xr, yr, ann.X, ann.Y)

		r.SetFont(defaults.Font)
		r.SetFontSize(labelSize)
		r.SetFontColor(drawing.ColorBlack)
		box := r.MeasureText(ann.Label)
		r.Text(ann.Label, tx, ty)

		hw := float64(box.Width())/2 + 2
		hh := float64(box.Height())/2 + 2
		cx := float64(tx) + float64(box.Width())/2
		cy := float64(ty) - float64(box.Height())/2
		sx, sy := edgeToward(cx, cy, hw, hh, float64(px), float64(py))

		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		r.MoveTo(int(math.Round(sx)), int(math.Round(sy)))
		r.LineTo(px, py)
		r.Stroke()

		ax, ay, bx, by := arrowHead(sx, sy, float64(px), float64(py), arrowSize, arrowSpread)
		r.MoveTo(int(math.Round(ax)), int(math.Round(ay)))
		r.LineTo(px, py)
		r.LineTo(int(math.Round(bx)), int(math.Round(by)))
		r.Stroke()
	}
}

func formatTick(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
