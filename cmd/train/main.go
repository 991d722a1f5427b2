// Command train fits the crop yield model on the sample training data and writes the model
// artifact to disk
package main

import (
	"fmt"
	"os"
	"time"

	yieldmodel "github.com/aouyang1/go-yieldmodel"
	"github.com/aouyang1/go-yieldmodel/dataset"
	"github.com/aouyang1/go-yieldmodel/internal/config"
	"github.com/aouyang1/go-yieldmodel/internal/logging"
	"github.com/aouyang1/go-yieldmodel/metrics"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.ParseTrain()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Setup(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "unable to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("training failed")
		os.Exit(1)
	}
}

func run(cfg config.Train) error {
	ds := dataset.Sample()

	m, err := train(ds, &yieldmodel.Options{FitIntercept: cfg.FitIntercept}, cfg)
	if err != nil {
		return err
	}

	log.Info().
		Str("path", cfg.ModelPath).
		Str("id", m.ID).
		Msgf("Model trained and saved as %s", cfg.ModelPath)
	return nil
}

func train(ds *dataset.Dataset, opt *yieldmodel.Options, cfg config.Train) (yieldmodel.Model, error) {
	ym, err := yieldmodel.New(opt)
	if err != nil {
		return yieldmodel.Model{}, err
	}

	start := time.Now()
	if err := ym.Fit(ds); err != nil {
		return yieldmodel.Model{}, err
	}
	fitDuration := time.Since(start)

	m, err := ym.Model()
	if err != nil {
		return yieldmodel.Model{}, err
	}

	eq, err := ym.ModelEq()
	if err != nil {
		return yieldmodel.Model{}, err
	}
	log.Debug().
		Int("samples", ds.Len()).
		Dur("fit_duration", fitDuration).
		Float64("r2", m.Scores.R2).
		Float64("mse", m.Scores.MSE).
		Str("equation", eq).
		Msg("fit complete")

	if err := yieldmodel.WriteModelFile(cfg.ModelPath, m); err != nil {
		return yieldmodel.Model{}, err
	}

	if cfg.PlotPath != "" {
		if err := writePlot(ym, cfg.PlotPath); err != nil {
			return yieldmodel.Model{}, err
		}
		log.Info().Str("path", cfg.PlotPath).Msg("wrote fit plot")
	}

	if cfg.MetricsTextfile != "" {
		tr := metrics.New()
		tr.Observe(m, fitDuration)
		if err := tr.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return yieldmodel.Model{}, err
		}
		log.Info().Str("path", cfg.MetricsTextfile).Msg("wrote metrics")
	}
	return m, nil
}

func writePlot(ym *yieldmodel.YieldModel, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	if err := ym.PlotFit(file); err != nil {
		file.Close()
		return fmt.Errorf("unable to render plot, %w", err)
	}
	return file.Close()
}
