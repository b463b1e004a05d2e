// Package chart draws mood trend line charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoPoints = errors.New("chart needs at least one point")

type Point struct {
	At    time.Time
	Value float64
}

type Options struct {
	Title      string
	XLabel     string
	YLabel     string
	SeriesName string
	Width      int
	Height     int
}

// RenderPNG plots points in the order given as a blue line with markers
func RenderPNG(w io.Writer, points []Point, opts Options) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.At
		ys[i] = p.Value
	}

	xMin, xMax := timeBounds(xs)
	yMin, yMax := valueBounds(ys)

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02 15:04"),
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(xMin),
				Max: chart.TimeToFloat64(xMax),
			},
		},
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    opts.SeriesName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotColor:    drawing.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	err := graph.Render(chart.PNG, w)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// timeBounds pads a single instant so the axis never has zero width
func timeBounds(xs []time.Time) (time.Time, time.Time) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Before(lo) {
			lo = x
		}
		if x.After(hi) {
			hi = x
		}
	}
	if !hi.After(lo) {
		lo = lo.Add(-time.Hour)
		hi = hi.Add(time.Hour)
	}
	return lo, hi
}

func valueBounds(ys []float64) (float64, float64) {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}
