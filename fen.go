/*
fen.go implements conversions between Forsyth-Edwards Notation (FEN) strings
and Position values.

Two changes from the teacher's version: ParseFEN returns an error instead of
panicking on malformed input (bad input is an expected, recoverable case for
a library, not a programming bug), and the castling field is parsed against
[CastleRights]'s per-file model. The classical letters K/Q/k/q still work
(they mean "the rook on file H" / "the rook on file A"); Shredder-FEN style
file letters (A-H for White, a-h for Black) are also accepted, so Chess960
positions round-trip through the same parser.
*/

package chego

import (
	"fmt"
	"strconv"
	"strings"
)

// Each FEN string consists of six parts, separated by a space:
//  1. Piece placement: will be parsed into the array of bitboards.
//  2. Active color:
//     "w" means that White is to move;
//     "b" means that Black is to move.
//  3. Castling rights: if neither side has the ability to castle,
//     this field uses the character "-".
//  4. En passant target square: if there is no en passant target square,
//     this field uses the character "-".
//  5. Halfmove clock: used for the fifty-move rule.
//  6. Fullmove number: The number of the full moves.

// ParseFEN parses fen into a [Position].
func ParseFEN(fen string) (Position, error) {
	EnsureTablesInitialized()

	var p Position

	fields := strings.SplitN(fen, " ", 6)
	if len(fields) != 6 {
		return p, fmt.Errorf("%w: FEN must have 6 space-separated fields, got %d", ErrInvalidNotation, len(fields))
	}

	bitboards, err := ParseBitboards(fields[0])
	if err != nil {
		return p, err
	}
	p.Bitboards = bitboards

	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		return p, fmt.Errorf("%w: active color must be \"w\" or \"b\", got %q", ErrInvalidNotation, fields[1])
	}

	p.Castling[ColorWhite], p.Castling[ColorBlack], err = parseCastlingField(fields[2], &p)
	if err != nil {
		return p, err
	}

	if fields[3] == "-" {
		p.EPTarget = noSquare
	} else {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return p, err
		}
		p.EPTarget = sq
	}

	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		return p, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidNotation, fields[4])
	}

	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		return p, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidNotation, fields[5])
	}

	p.Hash = zobristHash(&p)
	p.Checkers, p.Pinned = computePinsAndCheckers(&p)
	return p, nil
}

// parseCastlingField interprets the FEN castling field. It needs the board
// (via p) to turn a classical K/Q/k/q letter into the file of the
// outermost rook on that side, since that is the file Chess960 notation
// would have spelled out explicitly.
func parseCastlingField(field string, p *Position) (white, black CastleRights, err error) {
	white, black = NoCastleRights(), NoCastleRights()
	if field == "-" {
		return white, black, nil
	}

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == 'K':
			white.KingsideFile = outermostRookFile(p, ColorWhite, true)
		case c == 'Q':
			white.QueensideFile = outermostRookFile(p, ColorWhite, false)
		case c == 'k':
			black.KingsideFile = outermostRookFile(p, ColorBlack, true)
		case c == 'q':
			black.QueensideFile = outermostRookFile(p, ColorBlack, false)
		case c >= 'A' && c <= 'H':
			assignChess960Right(&white, p, ColorWhite, int(c-'A'))
		case c >= 'a' && c <= 'h':
			assignChess960Right(&black, p, ColorBlack, int(c-'a'))
		default:
			return white, black, fmt.Errorf("%w: invalid castling field character %q", ErrInvalidNotation, c)
		}
	}
	return white, black, nil
}

// outermostRookFile finds the file of the color's kingside (or queenside)
// rook, used to resolve classical K/Q/k/q letters to a concrete file.
func outermostRookFile(p *Position, color Color, kingside bool) int {
	rooks := p.Bitboards[PieceWRook+color]
	king := p.Bitboards[PieceWKing+color]
	if rooks == 0 || king == 0 {
		if kingside {
			return fileH
		}
		return fileA
	}
	kingFile := bitScan(king) % 8

	best := -1
	for bb := rooks; bb != 0; {
		sq := popLSB(&bb)
		file := sq % 8
		if kingside && file > kingFile && (best == -1 || file > best) {
			best = file
		}
		if !kingside && file < kingFile && (best == -1 || file < best) {
			best = file
		}
	}
	if best == -1 {
		if kingside {
			return fileH
		}
		return fileA
	}
	return best
}

func assignChess960Right(rights *CastleRights, p *Position, color Color, file int) {
	king := p.Bitboards[PieceWKing+color]
	kingFile := fileA
	if king != 0 {
		kingFile = bitScan(king) % 8
	}
	if file > kingFile {
		rights.KingsideFile = file
	} else {
		rights.QueensideFile = file
	}
}

// SerializeFEN serializes p into a FEN string. Castling rights are emitted
// in classical K/Q/k/q form when the rights match classical rook files,
// and in Shredder-FEN file-letter form otherwise.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(SerializeBitboards(p.Bitboards))

	if p.ActiveColor == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	wrote := false
	if p.Castling[ColorWhite].HasKingside() {
		fen.WriteByte(castlingLetter(p.Castling[ColorWhite].KingsideFile, ColorWhite))
		wrote = true
	}
	if p.Castling[ColorWhite].HasQueenside() {
		fen.WriteByte(castlingLetter(p.Castling[ColorWhite].QueensideFile, ColorWhite))
		wrote = true
	}
	if p.Castling[ColorBlack].HasKingside() {
		fen.WriteByte(castlingLetter(p.Castling[ColorBlack].KingsideFile, ColorBlack))
		wrote = true
	}
	if p.Castling[ColorBlack].HasQueenside() {
		fen.WriteByte(castlingLetter(p.Castling[ColorBlack].QueensideFile, ColorBlack))
		wrote = true
	}
	if !wrote {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPTarget == noSquare {
		fen.WriteString("- ")
	} else {
		fen.WriteByte(files[p.EPTarget%8])
		fen.WriteByte('0' + byte(p.EPTarget/8+1))
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

// castlingLetter renders a castling right as its classical K/Q/k/q letter
// if its file matches classical chess (A or H), else as a Shredder-FEN file
// letter.
func castlingLetter(file int, color Color) byte {
	if file == fileH {
		if color == ColorWhite {
			return 'K'
		}
		return 'k'
	}
	if file == fileA {
		if color == ColorWhite {
			return 'Q'
		}
		return 'q'
	}
	letter := byte('A' + file)
	if color == ColorBlack {
		letter = byte('a' + file)
	}
	return letter
}

// ParseBitboards converts the piece-placement field of a FEN string into an
// array of bitboards.
func ParseBitboards(piecePlacement string) (bitboards [15]uint64, err error) {
	square := 56

	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16

		case char >= '1' && char <= '8':
			square += int(char - '0')

		default:
			piece := PieceNone
			switch char {
			case 'P':
				piece = PieceWPawn
			case 'N':
				piece = PieceWKnight
			case 'B':
				piece = PieceWBishop
			case 'R':
				piece = PieceWRook
			case 'Q':
				piece = PieceWQueen
			case 'K':
				piece = PieceWKing
			case 'p':
				piece = PieceBPawn
			case 'n':
				piece = PieceBKnight
			case 'b':
				piece = PieceBBishop
			case 'r':
				piece = PieceBRook
			case 'q':
				piece = PieceBQueen
			case 'k':
				piece = PieceBKing
			default:
				return bitboards, fmt.Errorf("%w: invalid piece placement character %q", ErrInvalidNotation, char)
			}
			if square < 0 || square > 63 {
				return bitboards, fmt.Errorf("%w: piece placement overflows the board", ErrInvalidNotation)
			}

			bb := uint64(1) << square
			bitboards[piece] |= bb
			if piece%2 == ColorWhite {
				bitboards[12] |= bb
			} else {
				bitboards[13] |= bb
			}
			bitboards[14] |= bb

			square++
		}
	}

	return bitboards, nil
}

// SerializeBitboards converts the array of bitboards into
// the first part of FEN string.
func SerializeBitboards(bitboards [15]uint64) string {
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte

	for i := 0; i <= PieceBKing; i++ {
		bb := bitboards[i]
		for bb > 0 {
			square := popLSB(&bb)
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				emptySquares++
			} else {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}

// parseSquareName parses a two-character square name like "e4" into a
// square index.
func parseSquareName(str string) (int, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return noSquare, fmt.Errorf("%w: invalid square name %q", ErrInvalidSquare, str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	return rank*8 + file, nil
}
