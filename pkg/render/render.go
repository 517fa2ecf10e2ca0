// Package render writes a contribution report in one of several formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlot  Format = "plot"
)

// ErrUnknownFormat is returned for a format name with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Options tunes rendering. Only the table format uses Color.
type Options struct {
	Color bool
}

type renderFunc func(w io.Writer, rep contrib.Report, opts Options) error

var renderers = map[Format]renderFunc{
	FormatText:  writeText,
	FormatTable: writeTable,
	FormatJSON:  writeJSON,
	FormatYAML:  writeYAML,
	FormatPlot:  writePlot,
}

// Formats lists the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for f := range renderers {
		names = append(names, string(f))
	}

	slices.Sort(names)

	return names
}

// ParseFormat validates a format name. Empty selects FormatText.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}

	f := Format(strings.ToLower(name))
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}

	return f, nil
}

// Write renders rep to w.
func Write(w io.Writer, rep contrib.Report, format Format, opts Options) error {
	fn, ok := renderers[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return fn(w, rep, opts)
}
