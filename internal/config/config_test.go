package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrain(t *testing.T) {
	testData := map[string]struct {
		environ  map[string]string
		expected Train
		wantErr  bool
	}{
		"defaults": {
			environ: map[string]string{},
			expected: Train{
				Logging:      Logging{Level: "info"},
				ModelPath:    "yield_model.json",
				FitIntercept: true,
			},
		},
		"overrides": {
			environ: map[string]string{
				"LOG_LEVEL":              "debug",
				"LOG_PRETTY":             "true",
				"YIELD_MODEL_PATH":       "out/model.json",
				"YIELD_PLOT_PATH":        "out/fit.html",
				"YIELD_METRICS_TEXTFILE": "out/yield.prom",
				"YIELD_FIT_INTERCEPT":    "false",
			},
			expected: Train{
				Logging:         Logging{Level: "debug", Pretty: true},
				ModelPath:       "out/model.json",
				PlotPath:        "out/fit.html",
				MetricsTextfile: "out/yield.prom",
				FitIntercept:    false,
			},
		},
		"bad bool": {
			environ: map[string]string{"YIELD_FIT_INTERCEPT": "maybe"},
			wantErr: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			cfg, err := parse[Train](env.Options{Environment: td.environ})
			if td.wantErr {
				require.Error(t, err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, cfg)
		})
	}
}

func TestParsePredict(t *testing.T) {
	cfg, err := parse[Predict](env.Options{Environment: map[string]string{"YIELD_MODEL_PATH": "models/yield.json"}})
	require.Nil(t, err)
	assert.Equal(t, "models/yield.json", cfg.ModelPath)
	assert.Equal(t, "info", cfg.Level)
}

func TestValidateEmptyPath(t *testing.T) {
	require.ErrorIs(t, (&Train{}).validate(), ErrNoModelPath)
	require.ErrorIs(t, (&Predict{}).validate(), ErrNoModelPath)
}
