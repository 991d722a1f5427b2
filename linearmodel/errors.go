package linearmodel

import "errors"

var (
	ErrNoOptions          = errors.New("no initialized model options")
	ErrNoTrainingMatrix   = errors.New("no training matrix")
	ErrNoTargetMatrix     = errors.New("no target matrix")
	ErrTargetLenMismatch  = errors.New("target length does not match training rows")
	ErrUnderdetermined    = errors.New("fewer observations than model parameters")
	ErrSingularMatrix     = errors.New("training matrix is rank deficient")
	ErrNoDesignMatrix     = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch = errors.New("number of features does not match number of model coefficients")
	ErrNotFit             = errors.New("model has not been fit")
)
