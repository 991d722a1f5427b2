package yieldmodel

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrNoFitData = errors.New("no training data from a fit to plot")

// PlotFit uses the Apache Echarts library to generate an html page showing the actual and fitted
// target of every training sample along with the fit residual
func (y *YieldModel) PlotFit(w io.Writer) error {
	td := y.TrainingData()
	if td == nil || len(y.fitResults) != td.Len() {
		return ErrNoFitData
	}

	samples := make([]string, td.Len())
	residual := make([]float64, td.Len())
	for i := range td.Len() {
		samples[i] = sampleName(td.X[i], y.labels)
		residual[i] = td.Y[i] - y.fitResults[i]
	}

	eq, err := y.ModelEq()
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(
		LineFit(eq, samples, td.Y, y.fitResults),
		BarResidual("Fit Residual", samples, residual),
	)
	return page.Render(w)
}

// LineFit generates an echart line chart of the actual and fitted value per sample
func LineFit(title string, samples []string, actual, fitted []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(actual))
	lineDataFit := make([]opts.LineData, 0, len(fitted))
	for i := 0; i < len(samples); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: actual[i]})
		lineDataFit = append(lineDataFit, opts.LineData{Value: fitted[i]})
	}

	line.SetXAxis(samples).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit)
	return line
}

// BarResidual generates an echart bar chart of the residual per sample
func BarResidual(title string, samples []string, residual []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	barData := make([]opts.BarData, 0, len(residual))
	for _, r := range residual {
		barData = append(barData, opts.BarData{Value: r})
	}
	bar.SetXAxis(samples).AddSeries("Residual", barData)
	return bar
}

func sampleName(row []float64, labels []string) string {
	name := ""
	for i, val := range row {
		if i > 0 {
			name += " "
		}
		name += fmt.Sprintf("%s=%g", labels[i], val)
	}
	return name
}
