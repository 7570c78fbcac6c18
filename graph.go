// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package gridheal

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the separation between each region found
// by Heal and its nearest neighbouring region, with a line marking
// the close distance below which regions get connected. Regions whose
// nearest neighbour sits above the line are annotated, as those are
// the gaps that healing left unbridged.
func (h *Healer) Graph(title string, w io.Writer) error {
	if len(h.regions) < 2 {
		return errors.New("Not enough regions to graph")
	}

	// Create main xvalues and yvalues, annotations and ticks
	var xvalues, yvalues []float64
	var annotations []chart.Value2
	var ticks []chart.Tick
	tickevery := len(h.regions) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i := range h.regions {
		nearest := math.Inf(1)
		for j := range h.regions {
			if i == j {
				continue
			}
			dRow := h.regions[i].Centroid.Row - h.regions[j].Centroid.Row
			dCol := h.regions[i].Centroid.Col - h.regions[j].Centroid.Col
			d := math.Sqrt(dRow*dRow + dCol*dCol)
			if d < nearest {
				nearest = d
			}
		}

		x := float64(h.regions[i].ID)
		xvalues = append(xvalues, x)
		yvalues = append(yvalues, nearest)
		if nearest >= h.closeDistance {
			annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", x), XValue: x, YValue: nearest})
		}
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
	}
	// Make last tick the final region
	final := float64(h.regions[len(h.regions)-1].ID)
	ticks[len(ticks)-1] = chart.Tick{Value: final, Label: fmt.Sprintf("%.0f", final)}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	closeSeries := createLine(xvalues, h.closeDistance, chart.ColorRed)

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name:  "Region",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Nearest centroid distance",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
		},
		Series: []chart.Series{
			mainSeries,
			closeSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
