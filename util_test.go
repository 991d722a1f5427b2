package yieldmodel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFit(t *testing.T) {
	ym := fitSample(t, nil)

	var buf bytes.Buffer
	require.Nil(t, ym.PlotFit(&buf))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Fit Residual")
	assert.Contains(t, out, "area=5 rainfall=100")
}

func TestPlotFitLoadedModel(t *testing.T) {
	m, err := fitSample(t, nil).Model()
	require.Nil(t, err)

	loaded, err := NewFromModel(m)
	require.Nil(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, loaded.PlotFit(&buf), ErrNoFitData)
}

func TestSampleName(t *testing.T) {
	assert.Equal(t, "area=2.5 rainfall=60", sampleName([]float64{2.5, 60}, []string{"area", "rainfall"}))
}
