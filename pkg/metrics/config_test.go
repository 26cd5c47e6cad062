package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		yaml := `
k_values: [1, 5, 20]
relevance_threshold: 2
gain: exponential
`
		c, err := ParseConfig([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 5, 20}, c.Cutoffs)
		assert.Equal(t, 2, c.RelevanceThreshold)
		assert.Equal(t, GainExponential, c.Gain)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := ParseConfig([]byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("non positive k", func(t *testing.T) {
		_, err := ParseConfig([]byte("k_values: [5, 0]"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "k value 0 must be positive")
	})

	t.Run("unknown gain", func(t *testing.T) {
		_, err := ParseConfig([]byte("gain: quadratic"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("k_values: [1, 2"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse metrics YAML")
	})
}

func TestDefaultConfig_DoesNotShareCutoffs(t *testing.T) {
	c := DefaultConfig()
	c.Cutoffs[0] = 100

	assert.Equal(t, []int{3, 5, 10}, DefaultCutoffs)
	assert.NoError(t, DefaultConfig().Validate())
}
