// Package metrics records the outcome of a training run in the Prometheus text format so batch
// runs can be scraped through the node_exporter textfile collector
package metrics

import (
	"fmt"
	"time"

	yieldmodel "github.com/aouyang1/go-yieldmodel"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "yieldmodel"

// Training holds the gauges describing the most recent training run
type Training struct {
	registry *prometheus.Registry

	FitDuration prometheus.Gauge
	RSquared    prometheus.Gauge
	MSE         prometheus.Gauge
	Intercept   prometheus.Gauge
	Coefficient *prometheus.GaugeVec
	Samples     prometheus.Gauge
	LastSuccess prometheus.Gauge
}

// New registers the training gauges on a private registry
func New() *Training {
	t := &Training{
		registry: prometheus.NewRegistry(),
		FitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fit_duration_seconds",
			Help:      "Time spent fitting the model.",
		}),
		RSquared: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fit_r_squared",
			Help:      "Coefficient of determination on the training data.",
		}),
		MSE: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fit_mse",
			Help:      "Mean squared error on the training data.",
		}),
		Intercept: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intercept",
			Help:      "Fit intercept.",
		}),
		Coefficient: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "coefficient",
			Help:      "Fit coefficient per feature.",
		}, []string{"feature"}),
		Samples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "training_samples",
			Help:      "Number of samples used for training.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful training run.",
		}),
	}
	t.registry.MustRegister(
		t.FitDuration,
		t.RSquared,
		t.MSE,
		t.Intercept,
		t.Coefficient,
		t.Samples,
		t.LastSuccess,
	)
	return t
}

// Observe sets every gauge from a trained model and the time spent fitting it
func (t *Training) Observe(m yieldmodel.Model, fitDuration time.Duration) {
	t.FitDuration.Set(fitDuration.Seconds())
	if m.Scores != nil {
		t.RSquared.Set(m.Scores.R2)
		t.MSE.Set(m.Scores.MSE)
	}
	t.Intercept.Set(m.Weights.Intercept)
	for _, fw := range m.Weights.Coef {
		t.Coefficient.WithLabelValues(fw.Label).Set(fw.Value)
	}
	t.Samples.Set(float64(m.Samples))
	t.LastSuccess.Set(float64(m.TrainedAt.Unix()))
}

// Registry exposes the registry for gathering
func (t *Training) Registry() *prometheus.Registry {
	return t.registry
}

// WriteTextfile writes all gauges to path in the Prometheus text exposition format
func (t *Training) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, t.registry); err != nil {
		return fmt.Errorf("unable to write metrics textfile, %w", err)
	}
	return nil
}
