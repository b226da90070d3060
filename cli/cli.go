// Package cli renders chego positions and perft-divide output to the
// terminal. It is used mainly to visualize testing and debugging sessions.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BelikovArtem/chego"
	"github.com/clinaresl/table"
)

var pieceSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// FormatBitboard renders a single bitboard as an 8x8 grid, marking every
// set square with piece's symbol and every other square with a dot.
func FormatBitboard(bitboard uint64, piece int) string {
	tab, _ := table.NewTable("||cccccccc||")
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)
			if bitboard&square != 0 {
				row[file] = string(pieceSymbols[piece])
			} else {
				row[file] = "."
			}
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()

	return fmt.Sprintf("%v", tab)
}

// FormatPosition renders a full chess position, including side to move,
// the en passant target square, and castling rights.
func FormatPosition(p chego.Position) string {
	tab, _ := table.NewTable("||cccccccc||")
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)
			symbol := "▒"
			if (rank+file)%2 != 0 {
				symbol = " "
			}
			for i := 0; i <= chego.PieceBKing; i++ {
				if p.Bitboards[i]&square != 0 {
					symbol = string(pieceSymbols[i])
					break
				}
			}
			row[file] = symbol
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()

	var b strings.Builder
	fmt.Fprintf(&b, "%v", tab)
	b.WriteString("Active color: ")
	if p.ActiveColor == chego.ColorWhite {
		b.WriteString("white\n")
	} else {
		b.WriteString("black\n")
	}

	b.WriteString("En passant: ")
	if p.EPTarget < 0 {
		b.WriteString("none\n")
	} else {
		b.WriteString(chego.Square2String[p.EPTarget])
		b.WriteByte('\n')
	}

	b.WriteString("Castling rights: ")
	b.WriteString(castlingRightsString(p))
	b.WriteByte('\n')

	return b.String()
}

func castlingRightsString(p chego.Position) string {
	var b strings.Builder
	for _, right := range [...]struct {
		has    bool
		letter byte
	}{
		{p.Castling[chego.ColorWhite].HasKingside(), 'K'},
		{p.Castling[chego.ColorWhite].HasQueenside(), 'Q'},
		{p.Castling[chego.ColorBlack].HasKingside(), 'k'},
		{p.Castling[chego.ColorBlack].HasQueenside(), 'q'},
	} {
		if right.has {
			b.WriteByte(right.letter)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// FormatPerftDivide renders a perft divide report (move -> leaf node
// count) as an aligned table, with a totals row at the bottom.
func FormatPerftDivide(counts map[string]uint64, total uint64) string {
	tab, _ := table.NewTable("lr")
	tab.AddDoubleRule()
	tab.AddRow("move", "nodes")
	tab.AddDoubleRule()

	for move, cnt := range counts {
		tab.AddRow(move, strconv.FormatUint(cnt, 10))
	}
	tab.AddDoubleRule()
	tab.AddRow("total", strconv.FormatUint(total, 10))
	tab.AddDoubleRule()

	return fmt.Sprintf("%v", tab)
}
