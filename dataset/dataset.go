// Package dataset holds labelled regression training data
package dataset

import (
	"errors"
	"fmt"
	"math"

	mat_ "github.com/aouyang1/go-yieldmodel/mat"
	"gonum.org/v1/gonum/mat"
)

const (
	LabelArea     = "area"
	LabelRainfall = "rainfall"
	LabelYield    = "yield"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNoFeatureLabels    = errors.New("no feature labels")
	ErrEmptyLabel         = errors.New("empty feature label")
	ErrDuplicateLabel     = errors.New("duplicate feature label")
	ErrFeatureLenMismatch = errors.New("row has a different number of features than labels")
	ErrTargetLenMismatch  = errors.New("target has a different length than observations")
	ErrNonFiniteValue     = errors.New("training data contains a NaN or infinite value")
)

// Dataset is a set of observations X, one row per sample with a column per labelled feature,
// and the target Y observed for each row.
type Dataset struct {
	Labels []string
	Target string
	X      [][]float64
	Y      []float64
}

// New returns a validated copy of the input observations and targets
func New(labels []string, target string, x [][]float64, y []float64) (*Dataset, error) {
	ds := &Dataset{
		Labels: labels,
		Target: target,
		X:      x,
		Y:      y,
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds.Copy(), nil
}

// Validate checks that there is at least one observation, every label is unique and non-empty,
// every row has a value per label and a target, and no value is NaN or infinite
func (ds *Dataset) Validate() error {
	if ds == nil || len(ds.X) == 0 {
		return ErrNoTrainingData
	}
	if len(ds.Labels) == 0 {
		return ErrNoFeatureLabels
	}
	seen := make(map[string]struct{}, len(ds.Labels))
	for i, label := range ds.Labels {
		if label == "" {
			return fmt.Errorf("at label %d, %w", i, ErrEmptyLabel)
		}
		if _, exists := seen[label]; exists {
			return fmt.Errorf("%q, %w", label, ErrDuplicateLabel)
		}
		seen[label] = struct{}{}
	}
	if len(ds.X) != len(ds.Y) {
		return fmt.Errorf(
			"observations have length of %d, but target has a length of %d, %w",
			len(ds.X), len(ds.Y), ErrTargetLenMismatch,
		)
	}

	for i, row := range ds.X {
		if len(row) != len(ds.Labels) {
			return fmt.Errorf("row %d has %d features for %d labels, %w", i, len(row), len(ds.Labels), ErrFeatureLenMismatch)
		}
		for j, val := range row {
			if !isFinite(val) {
				return fmt.Errorf("row %d feature %s, %w", i, ds.Labels[j], ErrNonFiniteValue)
			}
		}
		if !isFinite(ds.Y[i]) {
			return fmt.Errorf("row %d target, %w", i, ErrNonFiniteValue)
		}
	}
	return nil
}

// Sample returns the fixed crop yield training set of field area and seasonal rainfall
// against the observed yield
func Sample() *Dataset {
	ds, err := New(
		[]string{LabelArea, LabelRainfall},
		LabelYield,
		[][]float64{
			{1, 50},
			{2, 60},
			{3, 70},
			{4, 80},
			{5, 100},
		},
		[]float64{10, 20, 30, 40, 50},
	)
	if err != nil {
		panic(err)
	}
	return ds
}

// Len returns the number of samples
func (ds *Dataset) Len() int {
	return len(ds.Y)
}

// Matrices returns the design matrix with one column per label and the target column vector
func (ds *Dataset) Matrices() (*mat.Dense, *mat.Dense, error) {
	x, err := mat_.NewDenseFromArray(ds.X)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build design matrix, %w", err)
	}
	y, err := mat_.NewColVector(ds.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build target vector, %w", err)
	}
	return x, y, nil
}

// Copy returns a deep copy of the dataset
func (ds *Dataset) Copy() *Dataset {
	labels := make([]string, len(ds.Labels))
	copy(labels, ds.Labels)

	x := make([][]float64, len(ds.X))
	for i, row := range ds.X {
		x[i] = make([]float64, len(row))
		copy(x[i], row)
	}

	y := make([]float64, len(ds.Y))
	copy(y, ds.Y)
	return &Dataset{
		Labels: labels,
		Target: ds.Target,
		X:      x,
		Y:      y,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
