// Package yieldmodel fits an ordinary least squares crop yield model from field area and rainfall
// and persists it as a versioned json artifact that can be reloaded for prediction.
package yieldmodel

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aouyang1/go-yieldmodel/dataset"
	"github.com/aouyang1/go-yieldmodel/linearmodel"
	mat_ "github.com/aouyang1/go-yieldmodel/mat"
	"github.com/google/uuid"
)

var (
	ErrNoTrainingData      = dataset.ErrNoTrainingData
	ErrUntrainedModel      = errors.New("yield model has not been trained yet")
	ErrInvalidArea         = errors.New("area must be greater than 0")
	ErrInvalidRainfall     = errors.New("rainfall must be greater than or equal to 0")
	ErrUnsupportedFeatures = errors.New("model was not trained on area and rainfall")
)

// yieldFeatures is the feature layout PredictYield expects
var yieldFeatures = []string{dataset.LabelArea, dataset.LabelRainfall}

// YieldModel fits a linear model of crop yield and can be used to predict yield for new fields
type YieldModel struct {
	opt *Options
	ols *linearmodel.OLSRegression

	labels    []string
	target    string
	id        string
	trainedAt time.Time
	samples   int

	fitTrainingData *dataset.Dataset
	fitResults      []float64
	scores          *Scores
	trained         bool

	nowFunc func() time.Time
}

// New creates a new instance of a YieldModel using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*YieldModel, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	ols, err := linearmodel.NewOLSRegression(opt.olsOptions())
	if err != nil {
		return nil, fmt.Errorf("unable to initialize regression, %w", err)
	}
	return &YieldModel{
		opt:     opt,
		ols:     ols,
		nowFunc: time.Now,
	}, nil
}

// NewFromModel creates a new instance of YieldModel from a pre-existing model. This should be
// generated from a previous call to Model() or read with ReadModelFile.
func NewFromModel(m Model) (*YieldModel, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("unable to load model, %w", err)
	}

	opt := NewDefaultOptions()
	if m.Options != nil {
		o := *m.Options
		opt = &o
	}

	ols, err := linearmodel.NewOLSRegressionFromWeights(
		opt.olsOptions(),
		m.Weights.Intercept,
		m.Weights.Coefficients(),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load regression weights, %w", err)
	}

	var scores *Scores
	if m.Scores != nil {
		s := *m.Scores
		scores = &s
	}

	return &YieldModel{
		opt:       opt,
		ols:       ols,
		labels:    m.Weights.FeatureLabels(),
		target:    m.Target,
		id:        m.ID,
		trainedAt: m.TrainedAt,
		samples:   m.Samples,
		scores:    scores,
		trained:   true,
		nowFunc:   time.Now,
	}, nil
}

// Fit trains the model against the dataset
func (y *YieldModel) Fit(ds *dataset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid training data, %w", err)
	}

	x, target, err := ds.Matrices()
	if err != nil {
		return fmt.Errorf("unable to create training matrices, %w", err)
	}

	if err := y.ols.Fit(x, target); err != nil {
		return fmt.Errorf("unable to fit regression, %w", err)
	}

	predicted, err := y.ols.Predict(x)
	if err != nil {
		return fmt.Errorf("unable to get predicted values from training set, %w", err)
	}

	scores, err := NewScores(predicted, ds.Y)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}

	y.fitTrainingData = ds.Copy()
	y.fitResults = predicted
	y.scores = scores
	y.labels = append([]string(nil), ds.Labels...)
	y.target = ds.Target
	y.samples = ds.Len()
	y.id = uuid.NewString()
	y.trainedAt = y.nowFunc().UTC()
	y.trained = true
	return nil
}

// Predict computes the expected target for every row of x. Each row must have a value per
// trained feature in the same order as the training data.
func (y *YieldModel) Predict(x [][]float64) ([]float64, error) {
	if !y.trained {
		return nil, ErrUntrainedModel
	}
	xMx, err := mat_.NewDenseFromArray(x)
	if err != nil {
		return nil, fmt.Errorf("unable to create design matrix, %w", err)
	}
	res, err := y.ols.Predict(xMx)
	if err != nil {
		return nil, fmt.Errorf("unable to predict, %w", err)
	}
	return res, nil
}

// PredictYield estimates the yield of a single field given its area and the expected rainfall
func (y *YieldModel) PredictYield(area, rainfall float64) (float64, error) {
	if !y.trained {
		return 0, ErrUntrainedModel
	}
	if !slices.Equal(y.labels, yieldFeatures) {
		return 0, fmt.Errorf("trained on %v, %w", y.labels, ErrUnsupportedFeatures)
	}
	if !(area > 0) || isNonFinite(area) {
		return 0, fmt.Errorf("got %v, %w", area, ErrInvalidArea)
	}
	if !(rainfall >= 0) || isNonFinite(rainfall) {
		return 0, fmt.Errorf("got %v, %w", rainfall, ErrInvalidRainfall)
	}

	res, err := y.Predict([][]float64{{area, rainfall}})
	if err != nil {
		return 0, err
	}
	return res[0], nil
}

// Intercept returns the intercept of the fit
func (y *YieldModel) Intercept() float64 {
	return y.ols.Intercept()
}

// Coef returns the coefficients in the same order as FeatureLabels
func (y *YieldModel) Coef() []float64 {
	return y.ols.Coef()
}

// FeatureLabels returns the labels of the features the model was trained on
func (y *YieldModel) FeatureLabels() []string {
	return append([]string(nil), y.labels...)
}

// Coefficients returns all coefficient weights keyed by the feature label
func (y *YieldModel) Coefficients() (map[string]float64, error) {
	if !y.trained {
		return nil, ErrUntrainedModel
	}
	coef := y.ols.Coef()
	res := make(map[string]float64, len(coef))
	for i, label := range y.labels {
		res[label] = coef[i]
	}
	return res, nil
}

// Scores returns the fit scores of the training data
func (y *YieldModel) Scores() Scores {
	if y.scores == nil {
		return Scores{}
	}
	return *y.scores
}

// TrainingData returns the training data used to fit the current model. This is nil for models
// loaded with NewFromModel.
func (y *YieldModel) TrainingData() *dataset.Dataset {
	return y.fitTrainingData
}

// FitResults returns the predicted values of the training data
func (y *YieldModel) FitResults() []float64 {
	return append([]float64(nil), y.fitResults...)
}

// Model generates a serializeable representation of the fit options, scores and weights
func (y *YieldModel) Model() (Model, error) {
	if !y.trained {
		return Model{}, ErrUntrainedModel
	}

	coef := y.ols.Coef()
	weights := Weights{
		Intercept: y.ols.Intercept(),
		Coef:      make([]FeatureWeight, 0, len(coef)),
	}
	for i, label := range y.labels {
		weights.Coef = append(weights.Coef, FeatureWeight{Label: label, Value: coef[i]})
	}

	opt := *y.opt
	var scores *Scores
	if y.scores != nil {
		s := *y.scores
		scores = &s
	}
	return Model{
		FormatVersion: FormatVersion,
		ID:            y.id,
		TrainedAt:     y.trainedAt,
		Target:        y.target,
		Samples:       y.samples,
		Options:       &opt,
		Scores:        scores,
		Weights:       weights,
	}, nil
}

// ModelEq returns a string representation of the fit model represented as
// y ~ b + m1x1 + m2x2 ...
func (y *YieldModel) ModelEq() (string, error) {
	if !y.trained {
		return "", ErrUntrainedModel
	}

	target := y.target
	if target == "" {
		target = "y"
	}

	var eq strings.Builder
	eq.WriteString(fmt.Sprintf("%s ~ %.2f", target, y.ols.Intercept()))
	coef := y.ols.Coef()
	for i, label := range y.labels {
		if coef[i] == 0 {
			continue
		}
		eq.WriteString(fmt.Sprintf("+%.2f*%s", coef[i], label))
	}
	return eq.String(), nil
}
