package solver

import (
	"testing"

	"github.com/polytile/polytile/pieceset"
)

func buildSet(t *testing.T, inputs []pieceset.Input) *pieceset.Set {
	t.Helper()
	set, err := pieceset.Build(inputs, '0', '1')
	if err != nil {
		t.Fatalf("pieceset.Build: %v", err)
	}
	return set
}

func TestSquareMult4On4x4HasOneSolution(t *testing.T) {
	set := buildSet(t, []pieceset.Input{{ASCII: "11\n11", Mult: 4}})
	sols := New(set, 4, 4).Solve()
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1", len(sols))
	}
	// The piece set's total area (16) equals the board's (16), so this
	// particular solution is a genuine full tiling.
	if area := coveredArea(t, set, sols[0]); area != 16 {
		t.Errorf("got covered area %d, want 16", area)
	}
}

func TestSquareMult3On4x4HasEightSolutions(t *testing.T) {
	// 3 copies of a 2x2 square total area 12 against a 16-cell board: the
	// solver's only stopping condition is "all N pieces placed", not "the
	// board is fully covered", so these solutions legitimately leave four
	// cells uncovered (squares need not sit on the aligned 2x2 grid, so the
	// uncovered cells do not always form a 2x2 hole).
	set := buildSet(t, []pieceset.Input{{ASCII: "11\n11", Mult: 3}})
	sols := New(set, 4, 4).Solve()
	if len(sols) != 8 {
		t.Fatalf("got %d solutions, want 8", len(sols))
	}
}

func TestUnitSquareMult3On2x2HasFourSolutions(t *testing.T) {
	// Three interchangeable 1x1 copies on a 2x2 board enumerate every
	// 3-cell subset of the 4 cells: C(4,3) = 4. (Leaving the first copy
	// free to roam once the stack empties is the same canonical-order
	// behavior that gives the 4x4/mult=3 case 8 solutions.)
	set := buildSet(t, []pieceset.Input{{ASCII: "1", Mult: 3}})
	sols := New(set, 2, 2).Solve()
	if len(sols) != 4 {
		t.Fatalf("got %d solutions, want 4", len(sols))
	}
}

func TestSingleSquareOnLargerBoardPlacesAtEveryPosition(t *testing.T) {
	set := buildSet(t, []pieceset.Input{{ASCII: "11\n11", Mult: 1}})
	sols := New(set, 3, 3).Solve()
	if len(sols) != 4 {
		t.Fatalf("got %d solutions, want 4 (the 2x2 positions in a 3x3 board)", len(sols))
	}
}

func TestNoOverlapAndWithinBounds(t *testing.T) {
	set := buildSet(t, []pieceset.Input{{ASCII: "10\n11", Mult: 2}, {ASCII: "11", Mult: 1}})
	width, height := 4, 3
	sols := New(set, width, height).Solve()
	if len(sols) == 0 {
		t.Fatal("expected at least one solution")
	}
	for _, sol := range sols {
		if len(sol) != set.Count() {
			t.Fatalf("solution has %d placements, want %d", len(sol), set.Count())
		}
		covered := make(map[[2]int]bool)
		for _, pl := range sol {
			p := set.Types[pl.PieceIndex].Rotations[pl.RotationIndex]
			if pl.X+p.Width() > width || pl.Y+p.Height() > height || pl.X < 0 || pl.Y < 0 {
				t.Fatalf("placement %+v falls outside the %dx%d board", pl, width, height)
			}
			r := p.Store().BitReader()
			for {
				x, y, v, ok := r.Next()
				if !ok {
					break
				}
				if !v {
					continue
				}
				cell := [2]int{pl.X + x, pl.Y + y}
				if covered[cell] {
					t.Fatalf("cell %v covered twice in solution %+v", cell, sol)
				}
				covered[cell] = true
			}
		}
	}
}

func TestNoSolutionsWhenPieceCannotFitAtAll(t *testing.T) {
	set := buildSet(t, []pieceset.Input{{ASCII: "1111\n1111", Mult: 1}})
	sols := New(set, 3, 3).Solve()
	if len(sols) != 0 {
		t.Fatalf("got %d solutions, want 0: a 4x2 piece cannot fit on a 3x3 board in any rotation", len(sols))
	}
}

func TestSwappingIdenticalCopiesDoesNotDuplicateSolutions(t *testing.T) {
	// Two interchangeable unit squares on a 1x2 board: only one
	// arrangement exists, and it must not be counted twice for the two
	// ways to "assign" the copies to the two cells.
	set := buildSet(t, []pieceset.Input{{ASCII: "1", Mult: 2}})
	sols := New(set, 1, 2).Solve()
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1", len(sols))
	}
}

func coveredArea(t *testing.T, set *pieceset.Set, sol Solution) int {
	t.Helper()
	area := 0
	for _, pl := range sol {
		area += set.Types[pl.PieceIndex].Rotations[pl.RotationIndex].Area()
	}
	return area
}
