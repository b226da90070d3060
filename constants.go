/*
constants.go collects board-geometry constants shared by the attack-table
generator, the board state, and the move generator: square/file bitmasks,
square indices, the starting FEN, and material weights.
*/

package chego

const (
	notAFile    uint64 = 0xFEFEFEFEFEFEFEFE
	notHFile    uint64 = 0x7F7F7F7F7F7F7F7F
	notABFile   uint64 = 0xFCFCFCFCFCFCFCFC
	notGHFile   uint64 = 0x3F3F3F3F3F3F3F3F
	not1stRank  uint64 = 0xFFFFFFFFFFFFFF00
	not8thRank  uint64 = 0x00FFFFFFFFFFFFFF
	rank1BB     uint64 = 0xFF
	rank2BB     uint64 = 0xFF00
	rank7BB     uint64 = 0xFF000000000000
	rank8BB     uint64 = 0xFF00000000000000
	allSquares  uint64 = 0xFFFFFFFFFFFFFFFF
)

// Standard initial chess position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Bitboards of each square.
const (
	A1 uint64 = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Indices of each square.
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
	// noSquare marks the absence of a square (e.g. no en-passant target).
	noSquare = -1
)

// files is used to print the originating file of a move (SAN disambiguation,
// pawn captures).
const files = "abcdefgh"

var (
	// Each piece weight, used to calculate material on the board for the
	// insufficient-material draw rule. Index with a Piece.
	pieceWeights = [12]int{1, 1, 3, 3, 3, 3, 5, 5, 9, 9, 0, 0}

	// Precalculated lookup table of the bishop relevant occupancy bit count
	// for every square. A purely geometric property of the board, so it does
	// not depend on which magic multiplier the search eventually picks.
	bishopBitCount = [64]int{
		6, 5, 5, 5, 5, 5, 5, 6,
		5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5,
		6, 5, 5, 5, 5, 5, 5, 6,
	}
	// Precalculated lookup table of the rook relevant occupancy bit count
	// for every square.
	rookBitCount = [64]int{
		12, 11, 11, 11, 11, 11, 11, 12,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		12, 11, 11, 11, 11, 11, 11, 12,
	}
)
