// uci.go implements Universal Chess Interface.

package chego

import (
	"fmt"
	"strings"
)

// Move2UCI converts the move into long algebraic notation string.
// Examples: e2e4, e7e5, e7e8q (for promotion). Castling is emitted as
// king-takes-own-rook (e1h1 for White short castling on a classical board),
// the same convention engines use when UCI_Chess960 is enabled, since Move's
// To() already stores the rook's square for castling moves.
func Move2UCI(m Move) string {
	var b strings.Builder
	b.Grow(4)

	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	if m.Type() == MovePromotion {
		switch m.PromoPiece() {
		case PromotionKnight:
			b.WriteByte('n')
		case PromotionBishop:
			b.WriteByte('b')
		case PromotionRook:
			b.WriteByte('r')
		case PromotionQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}

/*
ParseUCI parses a long algebraic notation string (e2e4, e7e8q, ...) against
p's legal moves and returns the matching [Move]. A UCI string alone cannot
distinguish a castling move from an ordinary king step, nor tell which of
several same-destination promotions is meant without knowing what is
actually legal, so this matches the parsed from/to/promotion against
p's generated legal move list rather than constructing a Move from the
string in isolation.

Two castling encodings are accepted for the from/to pair: this module's own
king-captures-rook convention (matching [Move2UCI]'s output) and the
traditional king-moves-two-squares convention most non-Chess960 UCI
engines send (e1g1, e1c1, e8g8, e8c8).
*/
func ParseUCI(s string, p Position) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("%w: malformed UCI move %q", ErrInvalidNotation, s)
	}
	from, err := parseSquareName(s[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed UCI move %q", ErrInvalidNotation, s)
	}
	to, err := parseSquareName(s[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed UCI move %q", ErrInvalidNotation, s)
	}

	var promo PromotionFlag = -1
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = PromotionKnight
		case 'b':
			promo = PromotionBishop
		case 'r':
			promo = PromotionRook
		case 'q':
			promo = PromotionQueen
		default:
			return 0, fmt.Errorf("%w: malformed UCI move %q", ErrInvalidNotation, s)
		}
	}

	list := GenerateLegalMoves(&p)
	for i := range list.LastMoveIndex {
		lm := list.Moves[i]
		if lm.From() != from {
			continue
		}
		matchesTo := lm.To() == to
		if !matchesTo && lm.Type() == MoveCastling {
			matchesTo = traditionalCastleDest(from, lm.To()) == to
		}
		if !matchesTo {
			continue
		}
		if lm.Type() == MovePromotion && lm.PromoPiece() != promo {
			continue
		}
		return lm, nil
	}

	return 0, fmt.Errorf("%w: %q is not a legal move in this position", ErrInvalidMove, s)
}

// traditionalCastleDest maps a castling move's king-from/rook-to squares to
// the king's traditional two-square destination (g1/c1/g8/c8).
func traditionalCastleDest(kingFrom, rookTo int) int {
	rank := kingFrom / 8
	if rookTo%8 > kingFrom%8 {
		return rank*8 + fileG
	}
	return rank*8 + fileC
}
