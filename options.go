package yieldmodel

import "github.com/aouyang1/go-yieldmodel/linearmodel"

// Options configures how the yield model is fit
type Options struct {
	// FitIntercept fits a constant offset in addition to the per feature weights
	FitIntercept bool `json:"fit_intercept"`
}

// NewDefaultOptions returns the default yield model options which fit an intercept
func NewDefaultOptions() *Options {
	return &Options{
		FitIntercept: true,
	}
}

func (o *Options) olsOptions() *linearmodel.OLSOptions {
	return &linearmodel.OLSOptions{
		FitIntercept: o.FitIntercept,
	}
}
