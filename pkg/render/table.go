package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

const percent = 100

func writeTable(w io.Writer, rep contrib.Report, opts Options) error {
	heading := color.New(color.FgBlue, color.Bold)
	muted := color.New(color.FgHiBlack)

	if opts.Color {
		heading.EnableColor()
		muted.EnableColor()
	} else {
		heading.DisableColor()
		muted.DisableColor()
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"#", "Author", "Days", "Share"})

	for i, row := range rep.Authors {
		tbl.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			row.Author,
			humanize.Comma(int64(row.Days)),
			share(row.Days, rep.Total),
		})
	}

	tbl.AppendFooter(table.Row{"", "Total", humanize.Comma(int64(rep.Total)), ""})

	if _, err := fmt.Fprintf(w, "%s\n%s\n", heading.Sprint("Developer Contribution Days"), tbl.Render()); err != nil {
		return fmt.Errorf("write table report: %w", err)
	}

	if rep.Range == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "\n%s %s to %s %s\n",
		heading.Sprint("Commit History Range:"),
		rep.Range.First, rep.Range.Last,
		muted.Sprintf("(%s commits)", humanize.Comma(int64(rep.Commits))))
	if err != nil {
		return fmt.Errorf("write table report: %w", err)
	}

	return nil
}

func share(days, total int) string {
	if total == 0 {
		return "-"
	}

	return humanize.FtoaWithDigits(float64(days)*percent/float64(total), 1) + "%"
}
