package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/floodpath/simulate"
)

// ErrNoData indicates an empty series was passed to a chart.
var ErrNoData = errors.New("report: nothing to chart")

// convergenceLine plots the per-sweep max change, log10-scaled.
func convergenceLine(history []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Value iteration convergence",
			Subtitle: "log10 of the max |ΔV| per sweep",
		}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)

	x := make([]string, len(history))
	items := make([]opts.LineData, len(history))
	for i, d := range history {
		x[i] = fmt.Sprintf("%d", i+1)
		v := -16.0
		if d > 0 {
			v = math.Log10(d)
		}
		items[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(x).AddSeries("delta", items)

	return line
}

// costBars plots the total cost of every trial, reached and not reached
// as separate series.
func costBars(trials []*simulate.Trial) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Trial cost"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)

	x := make([]string, 0, len(trials))
	reached := make([]opts.BarData, 0, len(trials))
	failed := make([]opts.BarData, 0, len(trials))
	for _, t := range trials {
		if t == nil {
			continue
		}
		x = append(x, fmt.Sprintf("%d", t.Index+1))
		if t.Reached() {
			reached = append(reached, opts.BarData{Value: t.TotalCost})
			failed = append(failed, opts.BarData{Value: "-"})
		} else {
			reached = append(reached, opts.BarData{Value: "-"})
			failed = append(failed, opts.BarData{Value: t.TotalCost})
		}
	}
	bar.SetXAxis(x).
		AddSeries("reached", reached).
		AddSeries("not reached", failed)

	return bar
}

// ConvergenceChart renders the solver's delta history as an HTML page.
func ConvergenceChart(w io.Writer, history []float64) error {
	if len(history) == 0 {
		return ErrNoData
	}
	return convergenceLine(history).Render(w)
}

// CostChart renders per-trial costs as an HTML page.
func CostChart(w io.Writer, trials []*simulate.Trial) error {
	if len(trials) == 0 {
		return ErrNoData
	}
	return costBars(trials).Render(w)
}

// Dashboard renders both charts on one page. Either input may be empty,
// not both.
func Dashboard(w io.Writer, history []float64, trials []*simulate.Trial) error {
	page := components.NewPage()
	page.PageTitle = "floodpath"
	n := 0
	if len(history) > 0 {
		page.AddCharts(convergenceLine(history))
		n++
	}
	if len(trials) > 0 {
		page.AddCharts(costBars(trials))
		n++
	}
	if n == 0 {
		return ErrNoData
	}

	return page.Render(w)
}
