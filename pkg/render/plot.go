package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

const (
	plotMaxAuthors = 20
	plotOthers     = "Others"
	fullZoomPct    = 100
)

var errChartRender = errors.New("chart does not support Render")

// writePlot renders an HTML bar chart of contribution days per author. The
// top authors get their own bar; the rest are summed into one.
func writePlot(w io.Writer, rep contrib.Report, _ Options) error {
	labels, values := plotSeries(rep.Authors)

	subtitle := "No commits"
	if rep.Range != nil {
		subtitle = fmt.Sprintf("%s to %s, %d developer-days", rep.Range.First, rep.Range.Last, rep.Total)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Developer Contribution Days",
			Subtitle: subtitle,
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithGridOpts(opts.Grid{
			Top:    "15%",
			Bottom: "15%",
			Left:   "5%",
			Right:  "5%",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Author"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Days"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("days", values)

	r, ok := any(bar).(interface{ Render(io.Writer) error })
	if !ok {
		return errChartRender
	}

	if err := r.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}

func plotSeries(authors []contrib.AuthorDays) ([]string, []opts.BarData) {
	shown := min(len(authors), plotMaxAuthors)

	labels := make([]string, 0, shown+1)
	values := make([]opts.BarData, 0, shown+1)

	for _, row := range authors[:shown] {
		labels = append(labels, row.Author)
		values = append(values, opts.BarData{Name: row.Author, Value: row.Days})
	}

	if len(authors) > plotMaxAuthors {
		rest := 0
		for _, row := range authors[plotMaxAuthors:] {
			rest += row.Days
		}

		labels = append(labels, plotOthers)
		values = append(values, opts.BarData{Name: plotOthers, Value: rest})
	}

	return labels, values
}
