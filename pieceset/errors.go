package pieceset

import "errors"

// ErrMultiplicityZero is returned by Build when a PieceInput requests zero
// copies of a piece.
var ErrMultiplicityZero = errors.New("pieceset: multiplicity must be at least 1")
