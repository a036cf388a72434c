// Command polytile enumerates every tiling of a rectangular board by a
// multiset of polyomino pieces supplied as ASCII silhouette files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/polytile/polytile/board"
	"github.com/polytile/polytile/pieceset"
	"github.com/polytile/polytile/solver"
)

// pieceFlags collects repeated -piece path:mult arguments.
type pieceFlags []string

func (p *pieceFlags) String() string { return strings.Join(*p, ",") }
func (p *pieceFlags) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	width := flag.Int("width", 0, "board width")
	height := flag.Int("height", 0, "board height")
	char0 := flag.String("char0", "0", "character representing an unset cell")
	char1 := flag.String("char1", "1", "character representing a set cell")
	render := flag.Bool("render", false, "render each solution as a composed board instead of listing placements")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this directory")
	memprofile := flag.String("memprofile", "", "write a memory profile to this directory")

	var pieces pieceFlags
	flag.Var(&pieces, "piece", "piece file and multiplicity as path:mult; repeatable")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: polytile -width W -height H -piece file:mult [-piece file:mult ...]\n\n")
		fmt.Fprintf(os.Stderr, "Enumerate every tiling of a WxH board by the given multiset of polyomino pieces.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 || len(pieces) == 0 || len(*char0) != 1 || len(*char1) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile)).Stop()
	} else if *memprofile != "" {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*memprofile)).Stop()
	}

	inputs, err := loadInputs(pieces)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	c0, c1 := (*char0)[0], (*char1)[0]
	set, err := pieceset.Build(inputs, c0, c1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	solutions := solver.New(set, *width, *height).Solve()
	if len(solutions) == 0 {
		fmt.Fprintln(os.Stderr, "no solutions found")
		os.Exit(1)
	}

	for i, sol := range solutions {
		fmt.Printf("solution %d:\n", i+1)
		if *render {
			fmt.Println(renderSolution(set, sol, *width, *height, c0, c1))
			continue
		}
		for _, pl := range sol {
			fmt.Printf("  piece=%d rotation=%d copy=%d at (%d,%d)\n",
				pl.PieceIndex, pl.RotationIndex, pl.CopyOrdinal, pl.X, pl.Y)
		}
	}
}

func loadInputs(pieces pieceFlags) ([]pieceset.Input, error) {
	inputs := make([]pieceset.Input, 0, len(pieces))
	for _, arg := range pieces {
		path, multStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid -piece value %q, want path:mult", arg)
		}
		mult, err := strconv.Atoi(multStr)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplicity in %q: %w", arg, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, pieceset.Input{ASCII: string(data), Mult: mult})
	}
	return inputs, nil
}

func renderSolution(set *pieceset.Set, sol solver.Solution, width, height int, c0, c1 byte) string {
	b := board.New(width, height)
	for _, pl := range sol {
		p := set.Types[pl.PieceIndex].Rotations[pl.RotationIndex]
		if err := b.Insert(p, pl.X, pl.Y); err != nil {
			// The solver only ever emits placements it successfully
			// inserted, so replaying them here cannot collide.
			panic(fmt.Sprintf("polytile: replaying solution placement failed: %v", err))
		}
	}
	b.SyncToBitField()
	return b.BitField().Format(c0, c1)
}
