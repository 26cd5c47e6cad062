package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/DjordjeVuckovic/searcheval/pkg/apperr"
	"gopkg.in/yaml.v3"
)

var DefaultCutoffs = []int{3, 5, 10}

const DefaultRelevanceThreshold = 1

type GainScheme string

const (
	// GainLinear uses the grade itself as gain.
	GainLinear GainScheme = "linear"
	// GainExponential uses 2^grade - 1.
	GainExponential GainScheme = "exponential"
)

func (s GainScheme) gainFunc() func(grade int) float64 {
	if s == GainExponential {
		return func(grade int) float64 {
			if grade <= 0 {
				return 0
			}
			return math.Pow(2, float64(grade)) - 1
		}
	}
	return func(grade int) float64 {
		return float64(max(grade, 0))
	}
}

type Config struct {
	Cutoffs            []int      `yaml:"k_values"`
	RelevanceThreshold int        `yaml:"relevance_threshold"`
	Gain               GainScheme `yaml:"gain"`
}

func DefaultConfig() Config {
	return Config{
		Cutoffs:            slices.Clone(DefaultCutoffs),
		RelevanceThreshold: DefaultRelevanceThreshold,
		Gain:               GainLinear,
	}
}

// ParseConfig decodes a YAML metrics block and fills in defaults.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse metrics YAML: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if len(c.Cutoffs) == 0 {
		c.Cutoffs = slices.Clone(DefaultCutoffs)
	}
	if c.RelevanceThreshold <= 0 {
		c.RelevanceThreshold = DefaultRelevanceThreshold
	}
	if c.Gain == "" {
		c.Gain = GainLinear
	}
}

func (c Config) Validate() error {
	if len(c.Cutoffs) == 0 {
		return apperr.NewValidation("config", "no k values", ErrInvalidConfig)
	}
	for _, k := range c.Cutoffs {
		if k <= 0 {
			return apperr.NewValidation("config", fmt.Sprintf("k value %d must be positive", k), ErrInvalidConfig)
		}
	}
	if c.RelevanceThreshold <= 0 {
		return apperr.NewValidation("config",
			fmt.Sprintf("relevance threshold %d must be positive", c.RelevanceThreshold), ErrInvalidConfig)
	}
	switch c.Gain {
	case GainLinear, GainExponential:
	default:
		return apperr.NewValidation("config", fmt.Sprintf("unknown gain scheme %q", c.Gain), ErrInvalidConfig)
	}
	return nil
}

func (c Config) maxCutoff() int {
	return slices.Max(c.Cutoffs)
}
