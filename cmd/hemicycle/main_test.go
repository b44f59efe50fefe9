// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeCorpus writes two five-member blocs voting against each other on 12 ballots.
func writeCorpus(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("depute,groupe,position,scrutin_id\n")
	for b := 1; b <= 12; b++ {
		left, right := "pour", "contre"
		if b%4 == 0 {
			left, right = "contre", "pour"
		}
		for i := 0; i < 5; i++ {
			fmt.Fprintf(&sb, "g%d,GAUCHE,%s,%d\n", i, left, b)
			fmt.Fprintf(&sb, "d%d,DROITE,%s,%d\n", i, right, b)
		}
	}
	path := filepath.Join(t.TempDir(), "votes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestAnalyze_Text(t *testing.T) {
	out, err := execute(t, "analyze", "--input", writeCorpus(t), "--log-level", "error", "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "ANALYSIS (cosine, k=2)")
	assert.Contains(t, out, "ballots")
	assert.Contains(t, out, "PIVOTS")
	assert.Contains(t, out, "PILIERS")
	assert.Contains(t, out, "GAUCHE")
	assert.Contains(t, out, "DROITE")
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := execute(t, "analyze", "-i", writeCorpus(t), "--log-level", "error",
		"--format", "json", "--method", "agreement_weighted", "--ballots", "1,2,3,4,5,6")
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "agreement_weighted", doc.Config.Method)
	assert.Equal(t, 6, doc.Summary.RetainedBallots)
	assert.Equal(t, 10, doc.Vertices)
	require.NotNil(t, doc.Report)
	assert.Contains(t, doc.Report.GlobalLeaders, "GAUCHE")
	assert.Contains(t, doc.Report.GlobalLeaders, "DROITE")
}

func TestAnalyze_YAMLWithConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("method: jaccard\nk_neighbors: 3\nmin_common_votes: 2\n"), 0o600))

	out, err := execute(t, "analyze", "-i", writeCorpus(t), "-c", cfgPath, "--log-level", "error",
		"-f", "yaml", "-k", "4")
	require.NoError(t, err)

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "jaccard", doc.Config.Method)
	assert.Equal(t, 4, doc.Config.KNeighbors, "flag overrides config file")
	assert.Equal(t, 2, doc.Config.MinCommonVotes)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := execute(t, "analyze", "--log-level", "error")
	require.ErrorIs(t, err, errNoInput)

	_, err = execute(t, "analyze", "-i", writeCorpus(t), "--log-level", "error", "--format", "xml")
	require.ErrorIs(t, err, errUnknownFormat)

	_, err = execute(t, "analyze", "-i", writeCorpus(t), "--log-level", "error", "--method", "euclid")
	require.Error(t, err)

	_, err = execute(t, "analyze", "-i", writeCorpus(t), "--log-level", "loud")
	require.Error(t, err)
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)
	for _, m := range []string{"cosine", "correlation", "jaccard", "agreement_weighted"} {
		assert.Contains(t, out, m)
	}
}
