// Package main provides debugging and testing functions.
// It is excluded from the chego package, as it is only used
// for testing purposes. The chego users won't be able to import this package.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BelikovArtem/chego"
	"github.com/BelikovArtem/chego/cli"
)

// printer formats large perft node counts with thousands separators, e.g.
// 193,690,690 instead of 193690690.
var printer = message.NewPrinter(language.English)

// result information will be printed is the perft is executed with the
// verbose flag.
type result struct {
	nodes        int
	captures     int
	epCaptures   int
	castles      int
	promotions   int
	checks       int
	doubleChecks int
	checkmates   int
}

// perft is a debugging function that walks through the move generation
// tree of strictly legal moves to a given depth and counts the number of
// visited leaf nodes. The resulting count is then compared to
// predetermined values.
//
// See https://www.chessprogramming.org/Perft_Results
func perft(p chego.Position, depth int) int {
	var l chego.MoveList
	chego.GenLegalMoves(p, &l)

	if depth == 1 {
		return int(l.LastMoveIndex)
	}

	nodes := 0
	for i := range l.LastMoveIndex {
		nodes += perft(p.MakeMove(l.Moves[i]), depth-1)
	}
	return nodes
}

// perftVerbose follows the same principle as the perft function, except it
// writes detailed move debugging information to r. Use this function to debug
// and find invalid branches in the move generation tree,
// not to measure performance.
func perftVerbose(p chego.Position, depth int, r *result, isRoot bool) int {
	var l chego.MoveList
	chego.GenLegalMoves(p, &l)

	if depth == 1 {
		if p.Checkers != 0 && l.LastMoveIndex == 0 {
			r.checkmates++
		}
		return int(l.LastMoveIndex)
	}

	c := p.ActiveColor
	nodes := 0
	for i := range l.LastMoveIndex {
		if p.GetPieceFromSquare(uint64(1)<<l.Moves[i].To()) != chego.PieceNone {
			r.captures++
		}

		next := p.MakeMove(l.Moves[i])

		cnt := chego.GenChecksCounter(next.Bitboards, 1^c)
		if cnt > 0 {
			r.checks++
		}
		if cnt > 1 {
			r.doubleChecks++
		}

		leafNodes := perftVerbose(next, depth-1, r, false)
		if isRoot {
			log.Printf("%s %d", chego.Move2UCI(l.Moves[i]), leafNodes)
		}
		nodes += leafNodes

		switch l.Moves[i].Type() {
		case chego.MoveCastling:
			r.castles++
		case chego.MoveEnPassant:
			r.epCaptures++
		case chego.MovePromotion:
			r.promotions++
		}
	}

	return nodes
}

// main runs the perft and measures it's execution time.
func main() {
	depth := flag.Int("depth", 2, "Performance test depth")
	verbose := flag.Bool("verbose", false, "Wether to print the debug info")
	fen := flag.String("fen", chego.InitialPos, "FEN of the position to search from")
	cpuprofile := flag.String("cpuprofile", "", "File to write a cpu profile")
	memprofile := flag.String("memprofile", "", "File to write a memory profile")

	flag.Parse()

	r := &result{}

	p, err := chego.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	start := time.Now()

	if *verbose {
		log.Printf("\nRoot position:\n%s\n\n\t%s\n\n", cli.FormatPosition(p), *fen)
		r.nodes = perftVerbose(p, *depth, r, true)
	} else {
		r.nodes = perft(p, *depth)
	}

	elapsed := time.Since(start)

	if *verbose {
		log.Printf("\tdepth\tnodes\t\tcaptures\tep\tcastles\tpromotions\tchecks\tdoublechecks\tcheckmates")
		log.Println(printer.Sprintf("\t%d\t%d\t\t%d\t%d\t%d\t%d\t%d\t%d\t%d",
			*depth,
			r.nodes,
			r.captures,
			r.epCaptures,
			r.castles,
			r.promotions,
			r.checks,
			r.doubleChecks,
			r.checkmates,
		))
	} else {
		log.Println(printer.Sprintf("Nodes reached: %d", r.nodes))
	}
	log.Printf("Elapsed time: %s", elapsed)
}
