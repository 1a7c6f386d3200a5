// SPDX-License-Identifier: MIT

package builder

import "errors"

// Callers branch with errors.Is; constructors wrap these with the method
// name and the offending parameters.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates exhausted retries or a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
