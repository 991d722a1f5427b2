// Package config loads command configuration from environment variables
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrNoModelPath = errors.New("no model path configured")

// Logging configures the command logger
type Logging struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Train configures a training run
type Train struct {
	Logging

	ModelPath       string `env:"YIELD_MODEL_PATH" envDefault:"yield_model.json"`
	PlotPath        string `env:"YIELD_PLOT_PATH"`
	MetricsTextfile string `env:"YIELD_METRICS_TEXTFILE"`
	FitIntercept    bool   `env:"YIELD_FIT_INTERCEPT" envDefault:"true"`
}

// Predict configures a prediction run against a stored model
type Predict struct {
	Logging

	ModelPath string `env:"YIELD_MODEL_PATH" envDefault:"yield_model.json"`
}

// ParseTrain loads the training configuration from the process environment
func ParseTrain() (Train, error) {
	return parse[Train](env.Options{})
}

// ParsePredict loads the prediction configuration from the process environment
func ParsePredict() (Predict, error) {
	return parse[Predict](env.Options{})
}

func parse[T any](opts env.Options) (T, error) {
	var cfg T
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if v, ok := any(&cfg).(interface{ validate() error }); ok {
		if err := v.validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (t *Train) validate() error {
	if t.ModelPath == "" {
		return ErrNoModelPath
	}
	return nil
}

func (p *Predict) validate() error {
	if p.ModelPath == "" {
		return ErrNoModelPath
	}
	return nil
}
