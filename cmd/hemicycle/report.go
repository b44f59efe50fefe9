// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hemicycle/leadership"
	"github.com/katalvlaran/hemicycle/pipeline"
	"github.com/katalvlaran/hemicycle/stats"
	"github.com/katalvlaran/hemicycle/votes"
)

var errUnknownFormat = errors.New("unknown output format (want text, json or yaml)")

type printer func(w io.Writer, res *pipeline.Result) error

func newPrinter(format string) (printer, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return printText, nil
	case "json":
		return printJSON, nil
	case "yaml", "yml":
		return printYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// document is the machine-readable shape of a run.
type document struct {
	Config     pipeline.Config      `json:"config" yaml:"config"`
	Summary    votes.Summary        `json:"summary" yaml:"summary"`
	Vertices   int                  `json:"vertices" yaml:"vertices"`
	Edges      int                  `json:"edges" yaml:"edges"`
	Components int                  `json:"components" yaml:"components"`
	Report     *leadership.Report   `json:"report" yaml:"report"`
	Stats      pipeline.CorpusStats `json:"stats" yaml:"stats"`
}

func toDocument(res *pipeline.Result) document {
	return document{
		Config:     res.Config,
		Summary:    res.Summary,
		Vertices:   res.Graph.VertexCount(),
		Edges:      res.Graph.EdgeCount(),
		Components: len(res.Components),
		Report:     res.Report,
		Stats:      res.Stats,
	}
}

func printJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(res))
}

func printYAML(w io.Writer, res *pipeline.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(res)); err != nil {
		return err
	}
	return enc.Close()
}

// Headings are styled through a renderer bound to w, so plain writers get plain text.
func printText(w io.Writer, res *pipeline.Result) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	heading := r.NewStyle().Bold(true)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	s := res.Summary

	fmt.Fprintln(tw, title.Render(fmt.Sprintf("ANALYSIS (%s, k=%d)", res.Config.Method, res.Config.KNeighbors)))
	fmt.Fprintf(tw, "ballots\t%d / %d retained\n", s.RetainedBallots, s.TotalBallots)
	fmt.Fprintf(tw, "records\t%d / %d retained\n", s.RetainedRecords, s.TotalRecords)
	fmt.Fprintf(tw, "legislators\t%d\n", s.Legislators)
	fmt.Fprintf(tw, "graph\t%d vertices, %d edges, %d components\n",
		res.Graph.VertexCount(), res.Graph.EdgeCount(), len(res.Components))
	printDistribution(tw, "participation", res.Stats.Participation)
	printDistribution(tw, "similarity", res.Stats.Similarity)

	fmt.Fprintf(tw, "\n%s\n", heading.Render("PIVOTS (betweenness)"))
	printEntries(tw, res.Report.Pivots)
	fmt.Fprintf(tw, "\n%s\n", heading.Render("PILIERS (weighted degree)"))
	printEntries(tw, res.Report.Piliers)

	fmt.Fprintf(tw, "\n%s\ngroup\tglobal\tintra\n", heading.Render("LEADERS"))
	for _, g := range res.Report.Groups() {
		global := res.Report.GlobalLeaders[g]
		intra := "-"
		if e, ok := res.Report.IntraLeaders[g]; ok {
			intra = fmt.Sprintf("%s (%.3f)", e.ID, e.Score)
		}
		fmt.Fprintf(tw, "%s\t%s (%.3f)\t%s\n", g, global.ID, global.Score, intra)
	}

	if len(res.Stats.GroupSizes) > 0 {
		fmt.Fprintf(tw, "\n%s\n", heading.Render("GROUPS"))
		for _, gs := range res.Stats.GroupSizes {
			fmt.Fprintf(tw, "%s\t%d\n", gs.Group, gs.Count)
		}
	}

	return tw.Flush()
}

func printEntries(w io.Writer, entries []leadership.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%d.\t%s\t%s\t%.4f\n", i+1, e.ID, e.Group, e.Score)
	}
}

func printDistribution(w io.Writer, name string, d stats.Distribution) {
	if d.Count == 0 {
		fmt.Fprintf(w, "%s\tn=0\n", name)
		return
	}
	fmt.Fprintf(w, "%s\tn=%d mean=%.3f std=%.3f min=%.3f median=%.3f max=%.3f\n",
		name, d.Count, d.Mean, d.Std, d.Min, d.Median, d.Max)
}
