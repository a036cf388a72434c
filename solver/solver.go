// Package solver enumerates every tiling of a rectangular board by a
// pieceset.Set via an iterative depth-first search: an explicit state
// machine replaces recursion so backtracking is O(1) per step with no
// allocation in the hot loop, and a canonical placement order for
// interchangeable copies of the same piece type prevents permutations of
// identical pieces from being counted as distinct solutions.
package solver

import (
	"fmt"

	"github.com/polytile/polytile/board"
	"github.com/polytile/polytile/pieceset"
)

// Placement records one piece placed on the board: which PieceType
// (PieceIndex into the Set's Types), which of its rotations, which 1-based
// copy of that type this is (CopyOrdinal, 1..Mult), and where.
type Placement struct {
	PieceIndex    int
	RotationIndex int
	CopyOrdinal   int
	X, Y          int
}

// Solution is one complete tiling: an ordered sequence of N placements in
// the order they were placed.
type Solution []Placement

type state int

const (
	stateTryPlacement state = iota
	stateAcceptPiece
	stateSaveSolution
	stateMoveX
	stateMoveNextRow
	stateNextRotation
	stateBacktrack
	stateEnd
)

// Solver performs the enumeration. It owns a single board.Board and a
// preallocated placement stack of capacity N = pieceSet.Count().
type Solver struct {
	pieceSet      *pieceset.Set
	board         *board.Board
	width, height int
	n             int

	stack        []Placement
	piecesPlaced int

	nextIndex, nextRotation, nTypePlaced int
	nextX, nextY                         int

	state     state
	solutions []Solution
}

// New preallocates a Solver for the given piece set and board dimensions.
func New(pieceSet *pieceset.Set, width, height int) *Solver {
	n := pieceSet.Count()
	return &Solver{
		pieceSet: pieceSet,
		board:    board.New(width, height),
		width:    width,
		height:   height,
		n:        n,
		stack:    make([]Placement, n),
		state:    stateTryPlacement,
	}
}

// Solve runs the search to completion and returns every tiling found. The
// result may be empty if no tiling exists.
func (s *Solver) Solve() []Solution {
	if s.n == 0 {
		if s.width*s.height == 0 {
			return []Solution{{}}
		}
		return nil
	}
	for s.state != stateEnd {
		switch s.state {
		case stateTryPlacement:
			s.tryPlacement()
		case stateAcceptPiece:
			s.acceptPiece()
		case stateSaveSolution:
			s.saveSolution()
		case stateMoveX:
			s.moveX()
		case stateMoveNextRow:
			s.moveNextRow()
		case stateNextRotation:
			s.advanceRotation()
		case stateBacktrack:
			s.backtrack()
		}
	}
	return s.solutions
}

func (s *Solver) currentPiece() *pieceset.Type {
	return s.pieceSet.Types[s.nextIndex]
}

func (s *Solver) tryPlacement() {
	t := s.currentPiece()
	p := t.Rotations[s.nextRotation]
	err := s.board.Insert(p, s.nextX, s.nextY)
	switch {
	case err == nil:
		s.state = stateAcceptPiece
	case err == board.ErrInsertCollision:
		s.state = stateMoveX
	case err == board.ErrWidthOverflow:
		s.state = stateMoveNextRow
	default:
		// ErrHeightOverflow, ErrWidthAndHeightOverflow, or anything else:
		// further x scanning on this row cannot help this rotation, and y
		// is never rewound within a rotation attempt, so move on.
		s.state = stateNextRotation
	}
}

func (s *Solver) acceptPiece() {
	s.stack[s.piecesPlaced] = Placement{
		PieceIndex:    s.nextIndex,
		RotationIndex: s.nextRotation,
		CopyOrdinal:   s.nTypePlaced + 1,
		X:             s.nextX,
		Y:             s.nextY,
	}
	s.piecesPlaced++
	s.nTypePlaced++
	s.loadNextPiece()
}

// loadNextPiece implements the canonicalizing tie-break: remaining copies
// of the same type must start strictly after the previous copy in
// row-major order, which bans permutations of interchangeable copies.
func (s *Solver) loadNextPiece() {
	t := s.currentPiece()
	if s.nTypePlaced < t.Mult {
		prev := s.stack[s.piecesPlaced-1]
		s.nextX = prev.X + 1
		s.nextY = prev.Y
		s.nextRotation = 0
		s.state = stateTryPlacement
		return
	}
	if s.piecesPlaced == s.n {
		s.state = stateSaveSolution
		return
	}
	s.nextIndex++
	s.nextRotation = 0
	s.nTypePlaced = 0
	s.nextX = 0
	s.nextY = 0
	s.state = stateTryPlacement
}

func (s *Solver) saveSolution() {
	sol := make(Solution, s.piecesPlaced)
	copy(sol, s.stack[:s.piecesPlaced])
	s.solutions = append(s.solutions, sol)
	s.state = stateBacktrack
}

func (s *Solver) moveX() {
	s.nextX++
	s.state = stateTryPlacement
}

func (s *Solver) moveNextRow() {
	s.nextX = 0
	s.nextY++
	s.state = stateTryPlacement
}

func (s *Solver) advanceRotation() {
	s.nextRotation++
	t := s.currentPiece()
	if s.nextRotation >= len(t.Rotations) {
		s.state = stateBacktrack
		return
	}
	s.state = stateTryPlacement
}

func (s *Solver) backtrack() {
	if s.piecesPlaced == 0 {
		s.state = stateEnd
		return
	}
	top := s.stack[s.piecesPlaced-1]
	s.piecesPlaced--
	s.nextIndex = top.PieceIndex
	s.nextRotation = top.RotationIndex
	s.nTypePlaced = top.CopyOrdinal - 1
	s.nextX = top.X
	s.nextY = top.Y

	p := s.pieceSet.Types[s.nextIndex].Rotations[s.nextRotation]
	if err := s.board.Remove(p, s.nextX, s.nextY); err != nil {
		panic(fmt.Sprintf("solver: board.Remove of a previously inserted piece failed: %v", err))
	}
	s.state = stateMoveX
}
