package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDenseFromArray(t *testing.T) {
	testData := map[string]struct {
		err error
		x   [][]float64
		m   int
		n   int
	}{
		"nil input": {
			ErrEmptyArray,
			nil,
			0, 0,
		},
		"empty input": {
			ErrEmptyArray,
			[][]float64{},
			0, 0,
		},
		"empty first row": {
			ErrEmptyArray,
			[][]float64{{}},
			0, 0,
		},
		"single element": {
			nil,
			[][]float64{{1}},
			1, 1,
		},
		"training shape": {
			nil,
			[][]float64{{1, 50}, {2, 60}, {3, 70}, {4, 80}, {5, 100}},
			5, 2,
		},
		"inconsistent cols": {
			ErrColMismatch,
			[][]float64{{1, 50}, {2}},
			0, 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mx, err := NewDenseFromArray(td.x)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			m, n := mx.Dims()
			assert.Equal(t, td.m, m, "m")
			assert.Equal(t, td.n, n, "n")

			for ri, row := range td.x {
				assert.Equal(t, row, mat.Row(nil, ri, mx), "row")
			}
		})
	}
}

func TestNewDenseFromArrayCopies(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}}
	mx, err := NewDenseFromArray(x)
	require.Nil(t, err)

	x[0][0] = 100
	assert.Equal(t, 1.0, mx.At(0, 0))
}

func TestNewColVector(t *testing.T) {
	_, err := NewColVector(nil)
	require.ErrorIs(t, err, ErrEmptyArray)

	y := []float64{10, 20, 30}
	v, err := NewColVector(y)
	require.Nil(t, err)

	m, n := v.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 1, n)
	assert.Equal(t, y, mat.Col(nil, 0, v))

	y[0] = -1
	assert.Equal(t, 10.0, v.At(0, 0))
}
