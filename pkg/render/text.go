package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

// writeText prints the plain report:
//
//	Developer Contribution Days:
//	<author>: <n> days
//
//	Total Developer Contribution Days: <sum>
//
//	Commit History Range: <first> to <last>
//
// The range block is left out when the report has no range.
func writeText(w io.Writer, rep contrib.Report, _ Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Developer Contribution Days:")

	for _, row := range rep.Authors {
		fmt.Fprintf(bw, "%s: %d days\n", row.Author, row.Days)
	}

	fmt.Fprintf(bw, "\nTotal Developer Contribution Days: %d\n", rep.Total)

	if rep.Range != nil {
		fmt.Fprintf(bw, "\nCommit History Range: %s to %s\n", rep.Range.First, rep.Range.Last)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}
