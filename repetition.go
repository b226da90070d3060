package chego

// repetitionKey returns the key used to detect repeated positions for the
// threefold-repetition rule. The Zobrist hash already folds in piece
// placement, side to move, castling rights, and en-passant file -- exactly
// the state two "the same position" occurrences must agree on -- so it
// doubles as the repetition key without building a separate string.
func repetitionKey(p Position) uint64 {
	return p.Hash
}
