package linearmodel

import (
	"math/rand"
	"testing"

	mat_ "github.com/aouyang1/go-yieldmodel/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel(t *testing.T, model Model, x, y mat.Matrix, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol, "intercept")

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol, "coefficients")

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol, "score")
}

func yieldData(t *testing.T) (mat.Matrix, mat.Matrix) {
	x, err := mat_.NewDenseFromArray([][]float64{
		{1, 50},
		{2, 60},
		{3, 70},
		{4, 80},
		{5, 100},
	})
	require.Nil(t, err)

	y, err := mat_.NewColVector([]float64{10, 20, 30, 40, 50})
	require.Nil(t, err)
	return x, y
}

// generateBenchData builds a full rank design matrix with a constant first column and a target
// that is an exact linear combination of the features
func generateBenchData(nObs, nFeat int) (mat.Matrix, mat.Matrix, error) {
	rng := rand.New(rand.NewSource(1))

	data := make([][]float64, nObs)
	target := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		data[i] = make([]float64, nFeat)
		for j := 0; j < nFeat; j++ {
			val := rng.Float64() * 100.0
			if j == 0 {
				val = 1.0
			}
			data[i][j] = val
			target[i] += float64(j) * val
		}
	}

	x, err := mat_.NewDenseFromArray(data)
	if err != nil {
		return nil, nil, err
	}

	y, err := mat_.NewColVector(target)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
