// SPDX-License-Identifier: MIT

// Package dataset reads roll-call records from delimited text.
//
// The expected header names the columns depute, groupe, position and
// scrutin_id (English aliases legislator, group, position, ballot are accepted)
// in any order; extra columns are ignored.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hemicycle/votes"
)

// Sentinel errors returned by Read.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadBallot indicates a ballot id that is not an integer.
	ErrBadBallot = errors.New("dataset: ballot id is not an integer")
)

var columnAliases = map[string][]string{
	"legislator": {"depute", "legislator"},
	"group":      {"groupe", "group"},
	"position":   {"position"},
	"ballot":     {"scrutin_id", "ballot"},
}

// Options configures Read.
type Options struct {
	Comma rune
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// Read parses every row of r into a votes.Record. Unknown position tokens
// fail the whole read with votes.ErrUnknownPosition and the offending line.
func Read(r io.Reader, opts ...Option) ([]votes.Record, error) {
	cfg := Options{Comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var out []votes.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)

		pos, err := votes.ParsePosition(row[cols["position"]])
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		ballot, err := strconv.Atoi(strings.TrimSpace(row[cols["ballot"]]))
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w: %q", line, ErrBadBallot, row[cols["ballot"]])
		}
		out = append(out, votes.Record{
			Legislator: strings.TrimSpace(row[cols["legislator"]]),
			Group:      strings.TrimSpace(row[cols["group"]]),
			Position:   pos,
			Ballot:     ballot,
		})
	}

	return out, nil
}

// ReadFile opens path and calls Read. A ".tsv" suffix switches to tab delimiters.
func ReadFile(path string, opts ...Option) ([]votes.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		opts = append([]Option{WithComma('\t')}, opts...)
	}

	return Read(f, opts...)
}

func resolveColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make(map[string]int, len(columnAliases))
	for field, names := range columnAliases {
		found := false
		for _, n := range names {
			if i, ok := index[n]; ok {
				cols[field], found = i, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s (one of %v)", ErrMissingColumn, field, names)
		}
	}

	return cols, nil
}
