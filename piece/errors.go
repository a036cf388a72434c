package piece

import "errors"

// ErrTooWide is returned when a piece's trimmed bounding box is wider than
// bitmatrix.WordBits; such a piece cannot be placed by board.Board, which
// requires a piece's row to fit in a single word-aligned store per row.
var ErrTooWide = errors.New("piece: width exceeds a word")
