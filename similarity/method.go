// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors returned by the similarity package.
var (
	// ErrNilMatrix indicates a nil *votes.Matrix was passed to Compute.
	ErrNilMatrix = errors.New("similarity: vote matrix is nil")

	// ErrUnknownMethod indicates an unsupported Method.
	ErrUnknownMethod = errors.New("similarity: unknown method")

	// ErrBadMinCommon indicates a negative MinCommonVotes.
	ErrBadMinCommon = errors.New("similarity: min common votes must be non-negative")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("similarity: workers must be positive")
)

// Method selects a similarity definition.
type Method string

// Supported methods.
const (
	Cosine            Method = "cosine"
	Correlation       Method = "correlation"
	Jaccard           Method = "jaccard"
	AgreementWeighted Method = "agreement_weighted"
)

// DefaultMinCommonVotes is the co-presence floor for Jaccard and AgreementWeighted.
// Pairs that shared fewer ballots score 0.
const DefaultMinCommonVotes = 5

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{Cosine, Correlation, Jaccard, AgreementWeighted}
}

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == name {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Describe returns a one-line description of m.
func (m Method) Describe() string {
	switch m {
	case Cosine:
		return "cosine over zero-filled votes (absences count as 0)"
	case Correlation:
		return "Pearson correlation over ballots both legislators voted on"
	case Jaccard:
		return "equal votes over ballots either legislator voted on"
	case AgreementWeighted:
		return "equal votes over ballots both legislators voted on"
	default:
		return "unknown"
	}
}

// Options configures Compute.
type Options struct {
	MinCommonVotes int // co-presence floor for Jaccard / AgreementWeighted
	Workers        int // goroutines sharing the pairwise work
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithMinCommonVotes overrides DefaultMinCommonVotes. Panics if n < 0.
func WithMinCommonVotes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMinCommon.Error())
		}
		o.MinCommonVotes = n
	}
}

// WithWorkers sets the number of goroutines. Panics if n <= 0.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns MinCommonVotes = DefaultMinCommonVotes and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		MinCommonVotes: DefaultMinCommonVotes,
		Workers:        runtime.GOMAXPROCS(0),
	}
}
