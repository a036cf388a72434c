// Package board implements the placement surface polyominoes are tiled
// onto: a column-major, word-packed working store ("current") kept in sync
// with a row-major bitmatrix.BitMatrix ("bitField") for I/O. Insert and
// Remove touch at most two words per row regardless of piece area.
package board

import (
	"github.com/polytile/polytile/bitmatrix"
	"github.com/polytile/polytile/piece"
)

// Board is a mutable W x H placement surface.
type Board struct {
	width, height int
	rowWords      int
	bitField      *bitmatrix.BitMatrix
	// current is column-major: current[c*height+r] holds the word whose
	// bit k (MSB-first) is cell (c*WordBits+k, r). A WordBits-word pad is
	// appended at the end, over-allocating WordBits words of padding rather
	// than bounds-checking every access.
	current []uint64
}

// New creates a zero (all-unoccupied) W x H board.
func New(width, height int) *Board {
	rowWords := bitmatrix.RowWordsFor(width)
	return &Board{
		width:    width,
		height:   height,
		rowWords: rowWords,
		bitField: bitmatrix.New(width, height),
		current:  make([]uint64, rowWords*height+bitmatrix.WordBits),
	}
}

// Parse builds a board from an ASCII grid (bitmatrix.Parse's grammar) and
// seeds the column-major working store from it.
func Parse(s string, c0, c1 byte) (*Board, error) {
	bm, err := bitmatrix.Parse(s, c0, c1)
	if err != nil {
		return nil, err
	}
	b := New(bm.Width(), bm.Height())
	for y := 0; y < b.height; y++ {
		for c := 0; c < b.rowWords; c++ {
			b.current[c*b.height+y] = bm.ColumnWord(c, y)
		}
	}
	b.bitField = bm
	return b, nil
}

// Width returns the board width.
func (b *Board) Width() int { return b.width }

// Height returns the board height.
func (b *Board) Height() int { return b.height }

// BitField returns the row-major view of the board. Callers must call
// SyncToBitField first if they have inserted or removed pieces since the
// last sync.
func (b *Board) BitField() *bitmatrix.BitMatrix { return b.bitField }

// SyncToBitField rewrites BitField's backing data from the column-major
// working store, so callers may read or print the board.
func (b *Board) SyncToBitField() {
	for y := 0; y < b.height; y++ {
		for c := 0; c < b.rowWords; c++ {
			b.bitField.SetColumnWord(c, y, b.current[c*b.height+y])
		}
	}
}

// geometry is the per-row word addressing for a piece placed at column-word
// col (x/WordBits) with intra-word shift (x%WordBits).
type geometry struct {
	col, shift, rowWords, height int
}

// words returns the board-side (low, high) words a piece's row r occupies,
// and whether the high word is a real column (board width permitting).
func (g geometry) words(pieceRow uint64, y, r int) (lowIdx int, low uint64, hiIdx int, high uint64, hasHigh bool) {
	rowIdx := y + r
	lowIdx = g.col*g.height + rowIdx
	low = pieceRow >> uint(g.shift)
	hasHigh = g.col+1 < g.rowWords
	if hasHigh && g.shift != 0 {
		high = pieceRow << uint(64-g.shift)
		hiIdx = (g.col + 1) * g.height
		hiIdx += rowIdx
	} else {
		hasHigh = false
	}
	return
}

func (b *Board) checkBounds(p *piece.Piece, x, y int) error {
	widthOver := x+p.Width() > b.width
	heightOver := y+p.Height() > b.height
	switch {
	case widthOver && heightOver:
		return ErrWidthAndHeightOverflow
	case widthOver:
		return ErrWidthOverflow
	case heightOver:
		return ErrHeightOverflow
	}
	return nil
}

// Insert ORs piece's bits into the board at (x, y). On ErrInsertCollision
// the board is left exactly as it was before the call.
func (b *Board) Insert(p *piece.Piece, x, y int) error {
	if err := b.checkBounds(p, x, y); err != nil {
		return err
	}
	g := geometry{col: x / bitmatrix.WordBits, shift: x % bitmatrix.WordBits, rowWords: b.rowWords, height: b.height}
	for r := 0; r < p.Height(); r++ {
		lowIdx, low, hiIdx, high, hasHigh := g.words(p.Store().RowWord(r), y, r)
		collision := b.current[lowIdx]&low != 0
		if hasHigh && b.current[hiIdx]&high != 0 {
			collision = true
		}
		if collision {
			b.undoRows(g, p, x, y, r)
			return ErrInsertCollision
		}
		b.current[lowIdx] ^= low
		if hasHigh {
			b.current[hiIdx] ^= high
		}
	}
	return nil
}

// Remove is the inverse of Insert: it clears piece's bits at (x, y),
// failing with ErrRemoveMismatch (and leaving the board unchanged) if any
// cell the piece claims is not currently set.
func (b *Board) Remove(p *piece.Piece, x, y int) error {
	if err := b.checkBounds(p, x, y); err != nil {
		return err
	}
	g := geometry{col: x / bitmatrix.WordBits, shift: x % bitmatrix.WordBits, rowWords: b.rowWords, height: b.height}
	for r := 0; r < p.Height(); r++ {
		lowIdx, low, hiIdx, high, hasHigh := g.words(p.Store().RowWord(r), y, r)
		mismatch := (b.current[lowIdx]&low)^low != 0
		if hasHigh && (b.current[hiIdx]&high)^high != 0 {
			mismatch = true
		}
		if mismatch {
			b.undoRows(g, p, x, y, r)
			return ErrRemoveMismatch
		}
		b.current[lowIdx] ^= low
		if hasHigh {
			b.current[hiIdx] ^= high
		}
	}
	return nil
}

// undoRows reverses the writes already applied for piece rows [0, failedRow)
// by re-applying the same self-inverse XOR.
func (b *Board) undoRows(g geometry, p *piece.Piece, x, y, failedRow int) {
	for r := failedRow - 1; r >= 0; r-- {
		lowIdx, low, hiIdx, high, hasHigh := g.words(p.Store().RowWord(r), y, r)
		b.current[lowIdx] ^= low
		if hasHigh {
			b.current[hiIdx] ^= high
		}
	}
}
