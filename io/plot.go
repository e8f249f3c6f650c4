package io

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/discedge/migrate"
)

var plotColors = []string{"r", "b", "g", "m", "c", "y"}

// PlotHistory adds a figure of semimajor axis against time to the pending
// pyplot script and saves it to fname when the script is executed. If edge
// is non-nil the trap window is marked with dashed lines. Callers run the
// script with plt.Execute.
func PlotHistory(fname string, h *History, edge *migrate.Edge) error {
	if len(h.Ts) < 2 {
		return fmt.Errorf("Need at least two snapshots to plot, have %d.", len(h.Ts))
	}

	plt.Figure()
	tMin, tMax := h.Ts[0], h.Ts[len(h.Ts)-1]
	lines := 0
	for i := range h.As {
		ts, as := finite(h.Ts, h.As[i])
		if len(ts) == 0 {
			continue
		}
		plt.Plot(ts, as, plt.LW(2), plt.C(plotColors[lines%len(plotColors)]))
		lines++
	}
	if lines == 0 {
		return fmt.Errorf("No particle has a defined semimajor axis.")
	}

	if edge != nil {
		for _, r := range []float64{
			edge.Radius * (1 - edge.Width), edge.Radius, edge.Radius * (1 + edge.Width),
		} {
			plt.Plot([]float64{tMin, tMax}, []float64{r, r}, "k--")
		}
	}

	plt.Title(fmt.Sprintf("%d migrating bodies", lines))
	plt.XLabel(`$t$`, plt.FontSize(16))
	plt.YLabel(`$a$`, plt.FontSize(16))
	plt.XLim(tMin, tMax)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	return nil
}

// finite drops the points whose y value is NaN or infinite.
func finite(xs, ys []float64) (outXs, outYs []float64) {
	for i := range ys {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		outXs = append(outXs, xs[i])
		outYs = append(outYs, ys[i])
	}
	return outXs, outYs
}
