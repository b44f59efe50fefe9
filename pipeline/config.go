// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hemicycle/knn"
	"github.com/katalvlaran/hemicycle/leadership"
	"github.com/katalvlaran/hemicycle/similarity"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config is the full analysis configuration. Keys absent from a YAML
// document keep their DefaultConfig value.
type Config struct {
	Method             string  `yaml:"method" json:"method"`
	MinVoters          int     `yaml:"min_voters" json:"min_voters"`
	KNeighbors         int     `yaml:"k_neighbors" json:"k_neighbors"`
	MinCommonVotes     int     `yaml:"min_common_votes" json:"min_common_votes"`
	BetweennessEpsilon float64 `yaml:"betweenness_epsilon" json:"betweenness_epsilon"`
	WeightTransform    string  `yaml:"weight_transform" json:"weight_transform"` // identity | cube
	TopN               int     `yaml:"top_n" json:"top_n"`
	Workers            int     `yaml:"workers" json:"workers"` // 0 = one per CPU
	Ballots            []int   `yaml:"ballots,omitempty" json:"ballots,omitempty"`
}

// DefaultConfig returns the reference configuration: cosine, k = 5, no
// participation filter, co-presence floor 5, epsilon 1e-6, top 10.
func DefaultConfig() Config {
	return Config{
		Method:             string(similarity.Cosine),
		MinVoters:          0,
		KNeighbors:         5,
		MinCommonVotes:     similarity.DefaultMinCommonVotes,
		BetweennessEpsilon: leadership.DefaultEpsilon,
		WeightTransform:    "identity",
		TopN:               leadership.DefaultTopN,
	}
}

// Validate checks every field and reports the first problem wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := similarity.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := knn.ParseTransform(c.WeightTransform); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch {
	case c.MinVoters < 0:
		return fmt.Errorf("%w: min_voters=%d must be >= 0", ErrInvalidConfig, c.MinVoters)
	case c.KNeighbors <= 0:
		return fmt.Errorf("%w: k_neighbors=%d must be > 0", ErrInvalidConfig, c.KNeighbors)
	case c.MinCommonVotes < 0:
		return fmt.Errorf("%w: min_common_votes=%d must be >= 0", ErrInvalidConfig, c.MinCommonVotes)
	case c.BetweennessEpsilon < 0 || math.IsNaN(c.BetweennessEpsilon):
		return fmt.Errorf("%w: betweenness_epsilon=%v must be >= 0", ErrInvalidConfig, c.BetweennessEpsilon)
	case c.TopN < 0:
		return fmt.Errorf("%w: top_n=%d must be >= 0", ErrInvalidConfig, c.TopN)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d must be >= 0", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected; an empty document keeps the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config: %w", err)
	}

	return ParseConfig(data)
}
