// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hemicycle/internal/dataset"
	"github.com/katalvlaran/hemicycle/pipeline"
)

var errNoInput = errors.New("--input is required")

type analyzeFlags struct {
	input      string
	configPath string
	format     string

	method    string
	k         int
	minVoters int
	minCommon int
	epsilon   float64
	transform string
	top       int
	workers   int
	ballots   []int
}

func newAnalyzeCmd(rf *rootFlags) *cobra.Command {
	af := &analyzeFlags{}
	def := pipeline.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis over a roll-call CSV",
		Long: `Analyze reads a CSV with the columns depute, groupe, position and
scrutin_id, builds the vote matrix, the similarity matrix and the k-nearest
neighbor graph, then prints the leadership report.

Flags override values loaded from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, rf, af)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&af.input, "input", "i", "", "roll-call CSV (or .tsv) file")
	f.StringVarP(&af.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&af.format, "format", "f", "text", "output format (text, json, yaml)")
	f.StringVarP(&af.method, "method", "m", def.Method, "similarity method")
	f.IntVarP(&af.k, "k", "k", def.KNeighbors, "neighbors kept per legislator")
	f.IntVar(&af.minVoters, "min-voters", def.MinVoters, "drop ballots with fewer non-absent votes")
	f.IntVar(&af.minCommon, "min-common", def.MinCommonVotes, "co-presence floor for jaccard and agreement_weighted")
	f.Float64Var(&af.epsilon, "epsilon", def.BetweennessEpsilon, "betweenness distance epsilon")
	f.StringVar(&af.transform, "transform", def.WeightTransform, "edge weight transform (identity, cube)")
	f.IntVarP(&af.top, "top", "n", def.TopN, "size of the pivot and pilier rankings")
	f.IntVar(&af.workers, "workers", def.Workers, "similarity workers (0 = one per CPU)")
	f.IntSliceVar(&af.ballots, "ballots", nil, "restrict the analysis to these ballot ids")

	return cmd
}

func runAnalyze(cmd *cobra.Command, rf *rootFlags, af *analyzeFlags) error {
	if af.input == "" {
		return errNoInput
	}
	logger := rf.log()

	cfg := pipeline.DefaultConfig()
	if af.configPath != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(af.configPath); err != nil {
			return err
		}
	}
	applyFlags(cmd, af, &cfg)

	out, err := newPrinter(af.format)
	if err != nil {
		return err
	}

	records, err := dataset.ReadFile(af.input)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", af.input, "records", len(records))

	res, err := pipeline.Run(records, cfg, pipeline.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return out(cmd.OutOrStdout(), res)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, af *analyzeFlags, cfg *pipeline.Config) {
	f := cmd.Flags()
	if f.Changed("method") {
		cfg.Method = af.method
	}
	if f.Changed("k") {
		cfg.KNeighbors = af.k
	}
	if f.Changed("min-voters") {
		cfg.MinVoters = af.minVoters
	}
	if f.Changed("min-common") {
		cfg.MinCommonVotes = af.minCommon
	}
	if f.Changed("epsilon") {
		cfg.BetweennessEpsilon = af.epsilon
	}
	if f.Changed("transform") {
		cfg.WeightTransform = af.transform
	}
	if f.Changed("top") {
		cfg.TopN = af.top
	}
	if f.Changed("workers") {
		cfg.Workers = af.workers
	}
	if f.Changed("ballots") {
		cfg.Ballots = af.ballots
	}
}
