package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	labels := []string{LabelArea, LabelRainfall}

	testData := map[string]struct {
		labels []string
		x      [][]float64
		y      []float64
		err    error
	}{
		"valid": {
			labels, [][]float64{{1, 50}, {2, 60}}, []float64{10, 20},
			nil,
		},
		"no data": {
			labels, nil, nil,
			ErrNoTrainingData,
		},
		"no labels": {
			nil, [][]float64{{1, 50}}, []float64{10},
			ErrNoFeatureLabels,
		},
		"duplicate label": {
			[]string{LabelArea, LabelArea}, [][]float64{{1, 50}}, []float64{10},
			ErrDuplicateLabel,
		},
		"empty label": {
			[]string{"", LabelRainfall}, [][]float64{{1, 50}}, []float64{10},
			ErrEmptyLabel,
		},
		"target mismatch": {
			labels, [][]float64{{1, 50}, {2, 60}}, []float64{10},
			ErrTargetLenMismatch,
		},
		"ragged row": {
			labels, [][]float64{{1, 50}, {2}}, []float64{10, 20},
			ErrFeatureLenMismatch,
		},
		"nan feature": {
			labels, [][]float64{{1, math.NaN()}}, []float64{10},
			ErrNonFiniteValue,
		},
		"inf target": {
			labels, [][]float64{{1, 50}}, []float64{math.Inf(1)},
			ErrNonFiniteValue,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.labels, LabelYield, td.x, td.y)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.labels, ds.Labels)
			assert.Equal(t, td.x, ds.X)
			assert.Equal(t, td.y, ds.Y)
			assert.Equal(t, len(td.y), ds.Len())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := [][]float64{{1, 50}}
	y := []float64{10}
	ds, err := New([]string{LabelArea, LabelRainfall}, LabelYield, x, y)
	require.Nil(t, err)

	x[0][0] = 9
	y[0] = 9
	assert.Equal(t, 1.0, ds.X[0][0])
	assert.Equal(t, 10.0, ds.Y[0])
}

func TestSample(t *testing.T) {
	ds := Sample()
	assert.Equal(t, []string{LabelArea, LabelRainfall}, ds.Labels)
	assert.Equal(t, LabelYield, ds.Target)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, len(ds.X), len(ds.Y))

	x, y, err := ds.Matrices()
	require.Nil(t, err)

	m, n := x.Dims()
	assert.Equal(t, 5, m)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{5, 100}, mat.Row(nil, 4, x))

	ym, yn := y.Dims()
	assert.Equal(t, 5, ym)
	assert.Equal(t, 1, yn)
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, mat.Col(nil, 0, y))
}

func TestCopy(t *testing.T) {
	ds := Sample()
	cp := ds.Copy()
	assert.Equal(t, ds, cp)

	cp.X[0][1] = -1
	cp.Labels[0] = "acres"
	assert.Equal(t, 50.0, ds.X[0][1])
	assert.Equal(t, LabelArea, ds.Labels[0])
}

func TestValidate(t *testing.T) {
	testData := map[string]struct {
		ds  *Dataset
		err error
	}{
		"sample": {Sample(), nil},
		"nil":    {nil, ErrNoTrainingData},
		"more labels than columns": {
			&Dataset{
				Labels: []string{LabelArea, LabelRainfall, "soil_ph"},
				Target: LabelYield,
				X:      [][]float64{{1, 50}, {2, 60}, {3, 70}, {4, 80}, {5, 100}},
				Y:      []float64{10, 20, 30, 40, 50},
			},
			ErrFeatureLenMismatch,
		},
		"empty label": {
			&Dataset{
				Labels: []string{LabelArea, ""},
				X:      [][]float64{{1, 50}},
				Y:      []float64{10},
			},
			ErrEmptyLabel,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.ds.Validate()
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
		})
	}
}
