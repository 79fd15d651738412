package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.SliderMin)
	assert.Equal(t, 50, cfg.SliderMax)
	assert.Equal(t, 500, cfg.GridPoints)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"slider min below one": func(c *Config) { c.SliderMin = 0 },
		"min equals max":       func(c *Config) { c.SliderMin = c.SliderMax },
		"min above max":        func(c *Config) { c.SliderMin, c.SliderMax = 10, 5 },
		"single grid point":    func(c *Config) { c.GridPoints = 1 },
		"empty plot":           func(c *Config) { c.PlotMax = 0 },
		"no window":            func(c *Config) { c.Width = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
