package yieldmodel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"
)

// FormatVersion is the schema version written into every serialized Model. Readers reject
// records with any other version.
const FormatVersion = 1

var (
	ErrUnsupportedFormatVersion = errors.New("unsupported model format version")
	ErrNoModelCoefficients      = errors.New("no model coefficients")
	ErrInvalidFeatureLabel      = errors.New("invalid feature label")
	ErrNonFiniteWeight          = errors.New("model weight is NaN or infinite")
	ErrNonFiniteScore           = errors.New("model score is NaN or infinite")
	ErrUnexpectedIntercept      = errors.New("model has an intercept but was not fit with one")
)

// Model represents a serializeable format of a fit yield model storing the options, fit scores,
// and weights. This is the on disk artifact and can be used to initialize a new YieldModel for
// immediate predictions skipping the training step.
type Model struct {
	FormatVersion int       `json:"format_version"`
	ID            string    `json:"id"`
	TrainedAt     time.Time `json:"trained_at"`
	Target        string    `json:"target"`
	Samples       int       `json:"samples"`
	Options       *Options  `json:"options"`
	Scores        *Scores   `json:"scores"`
	Weights       Weights   `json:"weights"`
}

// Weights stores the intercept and the per feature coefficients of the model
type Weights struct {
	Intercept float64         `json:"intercept"`
	Coef      []FeatureWeight `json:"coefficients"`
}

// FeatureWeight is the coefficient of a single labelled feature
type FeatureWeight struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// FeatureLabels returns all of the feature labels in the same order as the coefficients
func (w Weights) FeatureLabels() []string {
	labels := make([]string, 0, len(w.Coef))
	for _, fw := range w.Coef {
		labels = append(labels, fw.Label)
	}
	return labels
}

// Coefficients returns a slice copy of the coefficients ignoring the intercept.
func (w Weights) Coefficients() []float64 {
	coef := make([]float64, 0, len(w.Coef))
	for _, fw := range w.Coef {
		coef = append(coef, fw.Value)
	}
	return coef
}

// Validate checks that the model can be used for inference
func (m Model) Validate() error {
	if m.FormatVersion != FormatVersion {
		return fmt.Errorf("got version %d, expected %d, %w", m.FormatVersion, FormatVersion, ErrUnsupportedFormatVersion)
	}
	if len(m.Weights.Coef) == 0 {
		return ErrNoModelCoefficients
	}
	if isNonFinite(m.Weights.Intercept) {
		return fmt.Errorf("intercept, %w", ErrNonFiniteWeight)
	}
	if m.Options != nil && !m.Options.FitIntercept && m.Weights.Intercept != 0 {
		return fmt.Errorf("got intercept %v, %w", m.Weights.Intercept, ErrUnexpectedIntercept)
	}

	seen := make(map[string]struct{}, len(m.Weights.Coef))
	for i, fw := range m.Weights.Coef {
		if fw.Label == "" {
			return fmt.Errorf("empty label at coefficient %d, %w", i, ErrInvalidFeatureLabel)
		}
		if _, exists := seen[fw.Label]; exists {
			return fmt.Errorf("duplicate label %q, %w", fw.Label, ErrInvalidFeatureLabel)
		}
		seen[fw.Label] = struct{}{}

		if isNonFinite(fw.Value) {
			return fmt.Errorf("coefficient %q, %w", fw.Label, ErrNonFiniteWeight)
		}
	}

	if m.Scores != nil {
		for _, s := range []float64{m.Scores.MSE, m.Scores.MAPE, m.Scores.R2} {
			if isNonFinite(s) {
				return ErrNonFiniteScore
			}
		}
	}
	return nil
}

// TablePrint writes a human readable summary of the model
func (m Model) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Yield Model:\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  ID: %s\n", m.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Format Version: %d\n", m.FormatVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Trained At: %s\n", m.TrainedAt); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Target: %s    Samples: %d\n", m.Target, m.Samples); err != nil {
		return err
	}
	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "  Fit Intercept: %t\n", m.Options.FitIntercept); err != nil {
			return err
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "Scores:\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  MAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}

	return m.Weights.tablePrint(w)
}

func (w Weights) tablePrint(wr io.Writer) error {
	if _, err := fmt.Fprintf(wr, "Weights:\n"); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(wr, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "  Label\tValue\t\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "  intercept\t%.3f\t\n", w.Intercept); err != nil {
		return err
	}
	for _, fw := range w.Coef {
		if _, err := fmt.Fprintf(tbl, "  %s\t%.3f\t\n", fw.Label, fw.Value); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
