// Package piece models a single oriented polyomino: a bit-packed silhouette
// trimmed to its bounding box, plus its derived width, height and area.
package piece

import (
	"fmt"

	"github.com/polytile/polytile/bitmatrix"
)

// Piece is one oriented polyomino.
type Piece struct {
	store  *bitmatrix.BitMatrix
	width  int
	height int
	area   int
}

// FromASCII parses an ASCII silhouette (same grammar as bitmatrix.Parse),
// trims it to its bounding box, and computes its area. A silhouette with no
// set bits trims to a 0x0, zero-area piece.
func FromASCII(s string, c0, c1 byte) (*Piece, error) {
	bm, err := bitmatrix.Parse(s, c0, c1)
	if err != nil {
		return nil, err
	}
	return build(bm.TrimWhitespace())
}

// FromMatrix builds a Piece directly from an already-trimmed BitMatrix. The
// caller is responsible for trimming; FromMatrix does not trim again.
func FromMatrix(bm *bitmatrix.BitMatrix) (*Piece, error) {
	return build(bm)
}

func build(bm *bitmatrix.BitMatrix) (*Piece, error) {
	if bm.Width() > bitmatrix.WordBits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooWide, bm.Width(), bitmatrix.WordBits)
	}
	area := 0
	r := bm.BitReader()
	for {
		_, _, v, ok := r.Next()
		if !ok {
			break
		}
		if v {
			area++
		}
	}
	return &Piece{store: bm, width: bm.Width(), height: bm.Height(), area: area}, nil
}

// Width returns the piece's bounding-box width.
func (p *Piece) Width() int { return p.width }

// Height returns the piece's bounding-box height.
func (p *Piece) Height() int { return p.height }

// Area returns the number of filled cells.
func (p *Piece) Area() int { return p.area }

// Store returns the underlying bit-packed silhouette, for callers (board)
// that need row-level word access.
func (p *Piece) Store() *bitmatrix.BitMatrix { return p.store }

// Equal reports whether two pieces have bit-identical stores.
func (p *Piece) Equal(other *Piece) bool {
	return p.store.Equal(other.store)
}

// Rotate returns a new piece rotated 90 degrees clockwise: for every set bit
// (x, y) in p, the rotated piece has (height-1-y, x) set. It fails with
// ErrTooWide if p.height (the rotated piece's new width) exceeds
// bitmatrix.WordBits.
func (p *Piece) Rotate() (*Piece, error) {
	out := bitmatrix.New(p.height, p.width)
	r := p.store.BitReader()
	for {
		x, y, v, ok := r.Next()
		if !ok {
			break
		}
		if v {
			out.Set(p.height-1-y, x, true)
		}
	}
	return build(out)
}

// Format renders the piece's silhouette the same way bitmatrix.Format does.
func (p *Piece) Format(c0, c1 byte) string {
	return p.store.Format(c0, c1)
}
