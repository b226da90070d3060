/*
zobrist.go implements Zobrist hashing: a random 64-bit key per
(piece,square), per castle-rights state, per en-passant file, and one key
for the side to move, XORed together to produce a single position hash.

The teacher's zobrist.go and init.go each declared their own copy of these
tables under incompatible names; this file is the single consolidated
version (see DESIGN.md). Two real changes from the teacher's version:

  - Keys are generated from a fixed seed rather than an unseeded
    math/rand/v2 call, so the hash is reproducible across runs -- spec.md
    requires a fixed seed, and an unseeded generator breaks that on every
    process restart.
  - castlingKeys is sized for CastleRights.index()'s 0-3 range (kingside
    available / queenside available, independent of which file the rook
    started on) rather than the teacher's 4-bit classical-only encoding.
*/

package chego

import "math/rand/v2"

const zobristSeed = 0x5A6F62726973740A

var (
	// pieceKeys[piece][square] for all 12 pieces.
	pieceKeys [12][64]uint64
	// epFileKeys[file] covers the 8 files a legal en-passant target can sit
	// on; indexed with noFile meaning "no en-passant target", in which case
	// no key is XORed in at all.
	epFileKeys [8]uint64
	// castlingKeys is indexed by CastleRights.index() (0-3) per color.
	castlingKeys [2][4]uint64
	// colorKey is XORed in when it is Black's turn to move.
	colorKey uint64
)

func initZobristKeys() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed^0x9E3779B97F4A7C15))

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[piece][sq] = rng.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		epFileKeys[f] = rng.Uint64()
	}
	for color := 0; color < 2; color++ {
		for i := 1; i < 4; i++ {
			castlingKeys[color][i] = rng.Uint64()
		}
	}
	colorKey = rng.Uint64()
}

// zobristHash computes the Zobrist hash of a position from scratch. Used by
// ParseFEN, PositionBuilder.Build, MakeMove and NullMove to set
// Position.Hash.
func zobristHash(p *Position) uint64 {
	var hash uint64

	for piece := 0; piece < 12; piece++ {
		bb := p.Bitboards[piece]
		for bb != 0 {
			sq := popLSB(&bb)
			hash ^= pieceKeys[piece][sq]
		}
	}

	hash ^= castlingKeys[ColorWhite][p.Castling[ColorWhite].index()]
	hash ^= castlingKeys[ColorBlack][p.Castling[ColorBlack].index()]

	if p.EPTarget != noSquare {
		hash ^= epFileKeys[p.EPTarget%8]
	}
	if p.ActiveColor == ColorBlack {
		hash ^= colorKey
	}
	return hash
}
