package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/ebus-comparator/circuit/chain"
	"github.com/cwbudde/ebus-comparator/circuit/comparator"
	"github.com/cwbudde/ebus-comparator/circuit/divider"
	"github.com/cwbudde/ebus-comparator/dsp/signal"
	"github.com/cwbudde/ebus-comparator/internal/config"
	"github.com/cwbudde/ebus-comparator/measure/threshold"
	"github.com/cwbudde/ebus-comparator/plot"
	"github.com/cwbudde/ebus-comparator/stats/series"
)

// App holds the components built from a Config.
type App struct {
	Divider    *divider.Divider
	Comparator *comparator.Comparator
	Sweep      signal.Range
	Figure     *plot.Figure

	output string
	labelX float64
	labelY float64
	log    zerolog.Logger
}

// Summary describes a completed run.
type Summary struct {
	Samples   int
	TripPoint float64
	Edges     []threshold.Crossing
	Levels    []float64 // distinct comparator outputs seen
	Divided   series.Stats
	DutyCycle float64 // fraction of samples at the comparator's High level
	Output    string
}

// New builds the components described by cfg.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	d, err := cfg.BuildDivider()
	if err != nil {
		return nil, err
	}
	c, err := cfg.BuildComparator()
	if err != nil {
		return nil, err
	}
	r, err := cfg.BuildRange()
	if err != nil {
		return nil, err
	}

	return &App{
		Divider:    d,
		Comparator: c,
		Sweep:      r,
		Figure:     cfg.Figure(),
		output:     cfg.Chart.Output,
		labelX:     cfg.Chart.LabelX,
		labelY:     cfg.Chart.LabelY,
		log:        logger,
	}, nil
}

// Evaluate runs the sweep through the divider and comparator.
func (a *App) Evaluate() chain.Result {
	return chain.Run(a.Sweep.Values(), a.Divider, a.Comparator)
}

// Annotation returns the trip-point marker for the chart.
func (a *App) Annotation() *plot.Annotation {
	trip := threshold.TripPoint(a.Divider, a.Comparator)
	return &plot.Annotation{
		X:     trip,
		Y:     a.Comparator.Threshold,
		TextX: a.labelX,
		TextY: a.labelY,
		Label: fmt.Sprintf("%.3f V", trip),
	}
}

// Run evaluates the sweep and writes the chart to the configured output.
func (a *App) Run() (Summary, error) {
	res := a.Evaluate()
	a.log.Info().
		Int("samples", res.Len()).
		Float64("start", a.Sweep.Start).
		Float64("stop", a.Sweep.Stop).
		Float64("step", a.Sweep.Step).
		Msg("Sweep evaluated")

	divided := series.Calculate(res.Divided)
	_, high := a.Comparator.Levels()
	duty := series.DutyCycle(res.Compared, high)
	a.log.Debug().
		Float64("divided_min", divided.Min).
		Float64("divided_max", divided.Max).
		Float64("duty_cycle", duty).
		Msg("Output series summarised")

	ann := a.Annotation()
	edges, err := threshold.Edges(res.Input, res.Compared)
	if err != nil {
		return Summary{}, err
	}

	levels := threshold.Levels(res.Compared)

	ev := a.log.Info().
		Float64("ratio", a.Divider.Ratio()).
		Float64("trip_point", ann.X).
		Int("edges", len(edges)).
		Floats64("levels", levels)
	if len(edges) > 0 {
		ev = ev.Float64("first_edge", edges[0].X)
	}
	ev.Msg("Comparator trip point located")

	if err := a.Figure.RenderFile(a.output, res.Input, res.Divided, res.Compared, ann); err != nil {
		return Summary{}, err
	}
	a.log.Info().Str("output", a.output).Msg("Chart written")

	return Summary{
		Samples:   res.Len(),
		TripPoint: ann.X,
		Edges:     edges,
		Levels:    levels,
		Divided:   divided,
		DutyCycle: duty,
		Output:    a.output,
	}, nil
}
