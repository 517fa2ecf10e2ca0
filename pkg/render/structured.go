package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

// document is the machine-readable shape of a report.
type document struct {
	Authors []authorEntry `json:"authors" yaml:"authors"`
	Total   int           `json:"total" yaml:"total"`
	First   string        `json:"first,omitempty" yaml:"first,omitempty"`
	Last    string        `json:"last,omitempty" yaml:"last,omitempty"`
	Commits int           `json:"commits" yaml:"commits"`
	Skipped int           `json:"skipped" yaml:"skipped"`
}

type authorEntry struct {
	Author string `json:"author" yaml:"author"`
	Days   int    `json:"days" yaml:"days"`
}

func newDocument(rep contrib.Report) document {
	doc := document{
		Authors: make([]authorEntry, 0, len(rep.Authors)),
		Total:   rep.Total,
		Commits: rep.Commits,
		Skipped: rep.Skipped,
	}

	for _, row := range rep.Authors {
		doc.Authors = append(doc.Authors, authorEntry{Author: row.Author, Days: row.Days})
	}

	if rep.Range != nil {
		doc.First = rep.Range.First.String()
		doc.Last = rep.Range.Last.String()
	}

	return doc
}

func writeJSON(w io.Writer, rep contrib.Report, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(newDocument(rep)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, rep contrib.Report, _ Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newDocument(rep)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return nil
}
