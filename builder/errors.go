package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below a constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports a programmer error such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
