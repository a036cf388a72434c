package bitmatrix

// BitReader is a finite, non-restartable, row-major iterator over every
// cell of a BitMatrix.
type BitReader struct {
	m    *BitMatrix
	x, y int
	done bool
}

// BitReader returns a reader that will yield exactly Width()*Height() cells
// in row-major order.
func (bm *BitMatrix) BitReader() *BitReader {
	return &BitReader{m: bm, done: bm.width == 0 || bm.height == 0}
}

// Next returns the next (x, y, value) triple. ok is false once every cell
// has been visited.
func (r *BitReader) Next() (x, y int, value, ok bool) {
	if r.done {
		return 0, 0, false, false
	}
	x, y = r.x, r.y
	value = r.m.Get(x, y)
	r.x++
	if r.x >= r.m.width {
		r.x = 0
		r.y++
		if r.y >= r.m.height {
			r.done = true
		}
	}
	return x, y, value, true
}

// BitWriter is a buffered, row-major, word-at-a-time writer into a
// BitMatrix. It accepts one bit at a time and commits a full word to the
// backing store as soon as the word fills, the matrix's last cell is
// written, or Flush is called explicitly. Writes past the last cell are
// silently dropped.
type BitWriter struct {
	m          *BitMatrix
	x, y       int
	pendingIdx int
	pending    uint64
	ended      bool
}

// BitWriter returns a writer whose cursor starts at (xStart, yStart) and
// advances in row-major order from there.
func (bm *BitMatrix) BitWriter(xStart, yStart int) *BitWriter {
	return &BitWriter{
		m:          bm,
		x:          xStart,
		y:          yStart,
		pendingIdx: -1,
		ended:      yStart >= bm.height || bm.width == 0,
	}
}

// Accept writes the next bit. It is a no-op once ReachedEnd is true.
func (w *BitWriter) Accept(value bool) {
	if w.ended {
		return
	}
	idx := w.y*w.m.rowWords + w.x/WordBits
	bit := uint(WordBits - 1 - w.x%WordBits)
	if w.pendingIdx != idx {
		w.commit()
		w.pendingIdx = idx
		w.pending = 0
	}
	if value {
		w.pending |= 1 << bit
	}
	w.x++
	if w.x >= w.m.width {
		w.x = 0
		w.y++
	}
	if w.y >= w.m.height {
		w.commit()
		w.ended = true
	} else if w.y*w.m.rowWords+w.x/WordBits != w.pendingIdx {
		// The buffered word is full: the cursor has moved on to another word.
		w.commit()
	}
}

func (w *BitWriter) commit() {
	if w.pendingIdx >= 0 {
		w.m.data[w.pendingIdx] = w.pending
		w.pendingIdx = -1
	}
}

// Flush commits any buffered partial word to the backing store without
// requiring the cursor to reach the end of the matrix.
func (w *BitWriter) Flush() {
	w.commit()
}

// ReachedEnd reports whether the (Width*Height)-th bit has been accepted.
func (w *BitWriter) ReachedEnd() bool {
	return w.ended
}
