// Package pieceset builds the multiset of polyomino types a puzzle is
// tiled with, merging user-supplied silhouettes whose rotation classes
// coincide into a single PieceType with summed multiplicity.
package pieceset

import (
	"fmt"

	"github.com/polytile/polytile/piece"
)

// Input is one user-supplied silhouette and how many copies of it appear.
type Input struct {
	ASCII string
	Mult  int
}

// Type is a deduped rotation class (1-4 oriented pieces, in the order
// produced by repeatedly rotating the first) together with how many
// interchangeable copies of it the puzzle requires.
type Type struct {
	Rotations []*piece.Piece
	Mult      int
}

// Set is the ordered list of piece types a puzzle is built from. No two
// types share any rotation.
type Set struct {
	Types []*Type
}

// Count returns N, the total number of individual pieces across all types.
func (s *Set) Count() int {
	n := 0
	for _, t := range s.Types {
		n += t.Mult
	}
	return n
}

// Build parses each input's silhouette, computes its rotation class, and
// merges it into the Set: if the class coincides (under Piece.Equal on any
// pair of rotations) with an already-accepted type, its multiplicity is
// added to that type; otherwise it becomes a new type.
func Build(inputs []Input, c0, c1 byte) (*Set, error) {
	set := &Set{}
	for i, in := range inputs {
		if in.Mult == 0 {
			return nil, fmt.Errorf("pieceset: input %d: %w", i, ErrMultiplicityZero)
		}
		p, err := piece.FromASCII(in.ASCII, c0, c1)
		if err != nil {
			return nil, fmt.Errorf("pieceset: input %d: %w", i, err)
		}
		rotations, err := rotationClass(p)
		if err != nil {
			return nil, fmt.Errorf("pieceset: input %d: %w", i, err)
		}
		if existing := set.findMatch(rotations); existing != nil {
			existing.Mult += in.Mult
			continue
		}
		set.Types = append(set.Types, &Type{Rotations: rotations, Mult: in.Mult})
	}
	return set, nil
}

// rotationClass computes the deduped rotation set of p: apply Rotate up to
// three more times, stopping early the moment a rotation equals the
// original (a 2-fold or 4-fold symmetric piece).
func rotationClass(p *piece.Piece) ([]*piece.Piece, error) {
	rotations := []*piece.Piece{p}
	cur := p
	for i := 0; i < 3; i++ {
		next, err := cur.Rotate()
		if err != nil {
			return nil, err
		}
		if next.Equal(p) {
			break
		}
		rotations = append(rotations, next)
		cur = next
	}
	return rotations, nil
}

// findMatch returns the existing type sharing any rotation with rotations,
// or nil if this is a new polyomino.
func (s *Set) findMatch(rotations []*piece.Piece) *Type {
	for _, t := range s.Types {
		for _, a := range t.Rotations {
			for _, b := range rotations {
				if a.Equal(b) {
					return t
				}
			}
		}
	}
	return nil
}
