package bitmatrix

import "fmt"

// Trim returns a new matrix with rowsStart rows removed from the top,
// rowsEnd from the bottom, colsStart columns from the left and colsEnd from
// the right, copying the remaining interior.
func (bm *BitMatrix) Trim(rowsStart, rowsEnd, colsStart, colsEnd int) (*BitMatrix, error) {
	newHeight := bm.height - rowsStart - rowsEnd
	newWidth := bm.width - colsStart - colsEnd
	if newHeight < 0 || newWidth < 0 {
		return nil, fmt.Errorf("%w: %dx%d minus rows(%d,%d) cols(%d,%d)",
			ErrTrimTooLarge, bm.width, bm.height, rowsStart, rowsEnd, colsStart, colsEnd)
	}
	out := New(newWidth, newHeight)
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			out.Set(x, y, bm.Get(x+colsStart, y+rowsStart))
		}
	}
	return out, nil
}

// TrimWhitespace removes the largest border band of all-zero rows and
// columns. A matrix that is entirely zero trims to 0x0.
func (bm *BitMatrix) TrimWhitespace() *BitMatrix {
	top, bottom := 0, bm.height
	for top < bottom && bm.rowIsZero(top) {
		top++
	}
	for bottom > top && bm.rowIsZero(bottom-1) {
		bottom--
	}
	if top == bottom {
		return New(0, 0)
	}

	left, right := 0, bm.width
	for left < right && bm.colIsZero(left, top, bottom) {
		left++
	}
	for right > left && bm.colIsZero(right-1, top, bottom) {
		right--
	}

	out, err := bm.Trim(top, bm.height-bottom, left, bm.width-right)
	if err != nil {
		// top/bottom/left/right are derived from bm's own dimensions, so
		// this can never overflow.
		panic(err)
	}
	return out
}

func (bm *BitMatrix) rowIsZero(y int) bool {
	for x := 0; x < bm.width; x++ {
		if bm.Get(x, y) {
			return false
		}
	}
	return true
}

func (bm *BitMatrix) colIsZero(x, top, bottom int) bool {
	for y := top; y < bottom; y++ {
		if bm.Get(x, y) {
			return false
		}
	}
	return true
}
