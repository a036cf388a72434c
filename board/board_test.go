package board

import (
	"testing"

	"github.com/polytile/polytile/piece"
)

func tPiece(t *testing.T, ascii string) *piece.Piece {
	t.Helper()
	p, err := piece.FromASCII(ascii, '0', '1')
	if err != nil {
		t.Fatalf("piece.FromASCII(%q): %v", ascii, err)
	}
	return p
}

func TestInsertThenRemoveRestoresEmptyBoard(t *testing.T) {
	b := New(10, 10)
	p := tPiece(t, "010\n111")

	for _, pos := range [][2]int{{3, 3}, {2, 5}} {
		if err := b.Insert(p, pos[0], pos[1]); err != nil {
			t.Fatalf("Insert at %v: %v", pos, err)
		}
		empty := New(10, 10)
		b.SyncToBitField()
		empty.SyncToBitField()
		if b.BitField().Equal(empty.BitField()) {
			t.Fatalf("board should not equal empty board right after insert at %v", pos)
		}
		if err := b.Remove(p, pos[0], pos[1]); err != nil {
			t.Fatalf("Remove at %v: %v", pos, err)
		}
		b.SyncToBitField()
		if !b.BitField().Equal(empty.BitField()) {
			t.Errorf("board should equal empty board after remove at %v", pos)
		}
	}
}

func TestInsertCollisionLeavesBoardUnchanged(t *testing.T) {
	b := New(4, 4)
	p := tPiece(t, "11\n11")
	if err := b.Insert(p, 0, 0); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	b.SyncToBitField()
	before := b.BitField().Clone()

	if err := b.Insert(p, 1, 1); err == nil {
		t.Fatal("expected ErrInsertCollision")
	}
	b.SyncToBitField()
	if !b.BitField().Equal(before) {
		t.Error("board changed after a failed insert")
	}
}

func TestWidthHeightOverflow(t *testing.T) {
	b := New(4, 4)
	p := tPiece(t, "111")
	if err := b.Insert(p, 2, 0); err != ErrWidthOverflow {
		t.Errorf("got %v, want ErrWidthOverflow", err)
	}
	tall := tPiece(t, "1\n1\n1")
	if err := b.Insert(tall, 0, 2); err != ErrHeightOverflow {
		t.Errorf("got %v, want ErrHeightOverflow", err)
	}
	if err := b.Insert(tall, 4, 2); err != ErrWidthAndHeightOverflow {
		t.Errorf("got %v, want ErrWidthAndHeightOverflow", err)
	}
}

func TestRemoveMismatchLeavesBoardUnchanged(t *testing.T) {
	b := New(4, 4)
	p := tPiece(t, "11")
	b.SyncToBitField()
	before := b.BitField().Clone()

	if err := b.Remove(p, 0, 0); err == nil {
		t.Fatal("expected ErrRemoveMismatch against an empty board")
	}
	b.SyncToBitField()
	if !b.BitField().Equal(before) {
		t.Error("board changed after a failed remove")
	}
}

func TestInsertAcrossWordBoundary(t *testing.T) {
	// A board wider than one word (WordBits=64) forces a piece placed
	// near the boundary to straddle two column-words.
	b := New(70, 2)
	p := tPiece(t, "1111111111") // 10-wide, 1-tall
	if err := b.Insert(p, 60, 0); err != nil {
		t.Fatalf("Insert straddling the word boundary: %v", err)
	}
	b.SyncToBitField()
	for x := 60; x < 70; x++ {
		if !b.BitField().Get(x, 0) {
			t.Errorf("(%d,0) should be set after straddling insert", x)
		}
	}
	if err := b.Remove(p, 60, 0); err != nil {
		t.Fatalf("Remove straddling the word boundary: %v", err)
	}
	b.SyncToBitField()
	for x := 60; x < 70; x++ {
		if b.BitField().Get(x, 0) {
			t.Errorf("(%d,0) should be clear after straddling remove", x)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	s := "010\n111\n010"
	b, err := Parse(s, '0', '1')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b.SyncToBitField()
	if got := b.BitField().Format('0', '1'); got != s {
		t.Errorf("got %q, want %q", got, s)
	}
}
