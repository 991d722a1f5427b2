// Command predict loads a trained yield model and prints the predicted yield of a field
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	yieldmodel "github.com/aouyang1/go-yieldmodel"
	"github.com/aouyang1/go-yieldmodel/internal/config"
	"github.com/aouyang1/go-yieldmodel/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	area := flag.Float64("area", 0, "field area")
	rainfall := flag.Float64("rainfall", 0, "expected rainfall")
	summary := flag.Bool("summary", false, "print the model summary before predicting")
	flag.Parse()

	cfg, err := config.ParsePredict()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Setup(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "unable to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg.ModelPath, *area, *rainfall, *summary); err != nil {
		log.Error().Err(err).Str("path", cfg.ModelPath).Msg("prediction failed")
		os.Exit(1)
	}
}

func run(w io.Writer, path string, area, rainfall float64, summary bool) error {
	m, err := yieldmodel.ReadModelFile(path)
	if err != nil {
		return err
	}
	if summary {
		if err := m.TablePrint(w); err != nil {
			return err
		}
	}

	ym, err := yieldmodel.NewFromModel(m)
	if err != nil {
		return err
	}
	predicted, err := ym.PredictYield(area, rainfall)
	if err != nil {
		return err
	}

	log.Debug().
		Str("model_id", m.ID).
		Float64("area", area).
		Float64("rainfall", rainfall).
		Float64("predicted_yield", predicted).
		Msg("predicted yield")
	_, err = fmt.Fprintf(w, "%.4f\n", predicted)
	return err
}
