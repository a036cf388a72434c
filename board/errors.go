package board

import "errors"

var (
	// ErrWidthOverflow is returned by Insert/Remove when a piece would
	// extend past the board's right edge but fits vertically.
	ErrWidthOverflow = errors.New("board: piece extends past the right edge")

	// ErrHeightOverflow is returned when a piece would extend past the
	// board's bottom edge but fits horizontally.
	ErrHeightOverflow = errors.New("board: piece extends past the bottom edge")

	// ErrWidthAndHeightOverflow is returned when a piece overflows both
	// bounds.
	ErrWidthAndHeightOverflow = errors.New("board: piece extends past the right and bottom edges")

	// ErrInsertCollision is returned by Insert when the piece would cover
	// an already-occupied cell. The board is left unchanged.
	ErrInsertCollision = errors.New("board: piece collides with an occupied cell")

	// ErrRemoveMismatch is returned by Remove when the piece claims a cell
	// that is not currently set. The board is left unchanged.
	ErrRemoveMismatch = errors.New("board: piece does not match the board at this position")
)
