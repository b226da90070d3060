/*
movegen.go implements legal move generation: given a Position (with its
Checkers/Pinned bitboards already current), it produces exactly the set of
legal moves for the side to move.

This replaces the teacher's movegen.go, which generated pseudo-legal moves
and filtered them by making each one and testing for self-check -- a correct
but comparatively expensive approach. Here, legality is decided up front
using the precomputed check/pin information (see board.go's
computePinsAndCheckers, grounded on the original implementation's
piece_type.rs): with no checkers, every piece may move anywhere except that
pinned pieces are restricted to the line through their king; with one
checker, every piece's destinations are additionally restricted to
capturing the checker or blocking its line to the king; with two checkers,
only the king may move at all. En passant is the one case that cannot be
decided from the pin mask alone (removing both the capturing and captured
pawn can expose the king along the rank between them), so it gets its own
explicit ray scan.

MoveGen wraps a generated [MoveList] with the iterator controls spec.md
calls for: restricting remaining moves to a destination mask, vetoing a
specific move or every move into a mask, and a running count. Moves already
returned by Next are never affected by a later SetIteratorMask/RemoveMask --
the iterator is forward-only and single-threaded, matching the teacher's
conventions elsewhere in this package (no locking, no restart).
*/

package chego

// GenerateLegalMoves returns every legal move available to p.ActiveColor.
// p.Checkers and p.Pinned must already be current (true of any Position
// produced by ParseFEN, MakeMove, or NullMove).
func GenerateLegalMoves(p *Position) MoveList {
	var list MoveList

	us := p.ActiveColor
	kingBB := p.Bitboards[PieceWKing+us]
	if kingBB == 0 {
		return list
	}
	ksq := bitScan(kingBB)

	switch CountBits(p.Checkers) {
	case 0:
		genPawnMoves(p, us, ksq, allSquares, &list)
		genKnightMoves(p, us, allSquares, &list)
		genSliderMoves(p, us, ksq, allSquares, p.Bitboards[PieceWBishop+us], lookupBishopAttacks, &list)
		genSliderMoves(p, us, ksq, allSquares, p.Bitboards[PieceWRook+us], lookupRookAttacks, &list)
		genSliderMoves(p, us, ksq, allSquares, p.Bitboards[PieceWQueen+us], lookupQueenAttacks, &list)
		genKingMoves(p, us, &list)

	case 1:
		checkerSq := bitScan(p.Checkers)
		checkMask := between(checkerSq, ksq) | p.Checkers
		genPawnMoves(p, us, ksq, checkMask, &list)
		genKnightMoves(p, us, checkMask, &list)
		genSliderMoves(p, us, ksq, checkMask, p.Bitboards[PieceWBishop+us], lookupBishopAttacks, &list)
		genSliderMoves(p, us, ksq, checkMask, p.Bitboards[PieceWRook+us], lookupRookAttacks, &list)
		genSliderMoves(p, us, ksq, checkMask, p.Bitboards[PieceWQueen+us], lookupQueenAttacks, &list)
		genKingMoves(p, us, &list)

	default: // double check: only the king can move.
		genKingMoves(p, us, &list)
	}

	return list
}

/*
IsMoveLegal reports whether m is among p's legal moves, generating them
fresh to check. Grounded on the original implementation's
MoveGen::legal_quick: a caller holding only a move (e.g. parsed from UCI or
a board-editor UI) and a Position, with no existing MoveGen or MoveList
around, can validate it without wiring either up itself. [Game] has its own
IsMoveLegal that reuses an already-generated list instead of regenerating
one on every call; prefer that one when a Game is already in hand.
*/
func (p Position) IsMoveLegal(m Move) bool {
	list := GenerateLegalMoves(&p)
	for i := range list.LastMoveIndex {
		lm := list.Moves[i]
		if lm.From() == m.From() && lm.To() == m.To() && lm.Type() == m.Type() &&
			lm.PromoPiece() == m.PromoPiece() {
			return true
		}
	}
	return false
}

// GenLegalMoves is the slice-free entry point kept for callers (Game) that
// want to reuse an existing MoveList allocation across turns.
func GenLegalMoves(p Position, list *MoveList) {
	*list = GenerateLegalMoves(&p)
}

// GenChecksCounter returns the number of pieces of the opposite color
// currently giving check to activeColor's king.
func GenChecksCounter(bitboards [15]uint64, activeColor Color) int {
	p := Position{Bitboards: bitboards, ActiveColor: activeColor}
	checkers, _ := computePinsAndCheckers(&p)
	return CountBits(checkers)
}

/*
MoveGen is a forward-only, single-use iterator over a position's legal
moves. It generates every legal move once at construction, then lets a
caller narrow down what is left to iterate: SetIteratorMask keeps only the
moves landing on a given set of squares (useful for "only show me
captures" or "only show me moves into this region" UIs), RemoveMove and
RemoveMask veto specific moves before they're reached (useful for a search
that wants to exclude a move it already explored). None of these touch
moves already handed out by Next.
*/
type MoveGen struct {
	moves  MoveList
	cursor int
}

// NewMoveGen builds a MoveGen over p's legal moves.
func NewMoveGen(p Position) *MoveGen {
	return &MoveGen{moves: GenerateLegalMoves(&p)}
}

// Len returns how many moves remain to be iterated.
func (mg *MoveGen) Len() int {
	return int(mg.moves.LastMoveIndex) - mg.cursor
}

// Next returns the next move and true, or the zero Move and false once
// exhausted.
func (mg *MoveGen) Next() (Move, bool) {
	if mg.cursor >= int(mg.moves.LastMoveIndex) {
		return 0, false
	}
	m := mg.moves.Moves[mg.cursor]
	mg.cursor++
	return m, true
}

// SetIteratorMask restricts every not-yet-consumed move to those whose
// destination square is in mask. Moves it drops are discarded: a later call
// with a wider mask does not bring them back, so successive calls only
// narrow the remaining set.
func (mg *MoveGen) SetIteratorMask(mask uint64) {
	write := mg.cursor
	for read := mg.cursor; read < int(mg.moves.LastMoveIndex); read++ {
		m := mg.moves.Moves[read]
		if uint64(1)<<m.To()&mask != 0 {
			mg.moves.Moves[write] = m
			write++
		}
	}
	mg.moves.LastMoveIndex = byte(write)
}

// RemoveMove vetoes target if it has not yet been returned by Next,
// reporting whether it was found.
func (mg *MoveGen) RemoveMove(target Move) bool {
	for read := mg.cursor; read < int(mg.moves.LastMoveIndex); read++ {
		if mg.moves.Moves[read] == target {
			last := int(mg.moves.LastMoveIndex) - 1
			mg.moves.Moves[read] = mg.moves.Moves[last]
			mg.moves.LastMoveIndex--
			return true
		}
	}
	return false
}

// RemoveMask vetoes every not-yet-consumed move whose destination square is
// in mask, returning how many were removed.
func (mg *MoveGen) RemoveMask(mask uint64) int {
	removed := 0
	write := mg.cursor
	for read := mg.cursor; read < int(mg.moves.LastMoveIndex); read++ {
		m := mg.moves.Moves[read]
		if uint64(1)<<m.To()&mask != 0 {
			removed++
			continue
		}
		mg.moves.Moves[write] = m
		write++
	}
	mg.moves.LastMoveIndex = byte(write)
	return removed
}

func genKnightMoves(p *Position, us Color, checkMask uint64, list *MoveList) {
	own := p.Bitboards[12+us]
	knights := p.Bitboards[PieceWKnight+us] &^ p.Pinned // a pinned knight has no legal move
	for knights != 0 {
		from := popLSB(&knights)
		dest := knightAttacks[from] &^ own & checkMask
		pushMoves(list, from, dest)
	}
}

func genSliderMoves(p *Position, us Color, ksq int, checkMask uint64, pieces uint64,
	attacksFn func(square int, occupancy uint64) uint64, list *MoveList) {
	own := p.Bitboards[12+us]
	occ := p.Bitboards[14]

	for pieces != 0 {
		from := popLSB(&pieces)
		dest := attacksFn(from, occ) &^ own
		if p.Pinned&(uint64(1)<<from) != 0 {
			dest &= line(ksq, from)
		}
		dest &= checkMask
		pushMoves(list, from, dest)
	}
}

func pushMoves(list *MoveList, from int, dest uint64) {
	for dest != 0 {
		to := popLSB(&dest)
		list.Push(NewMove(to, from, MoveNormal))
	}
}

func genPawnMoves(p *Position, us Color, ksq int, checkMask uint64, list *MoveList) {
	them := us ^ 1
	occ := p.Bitboards[14]
	enemy := p.Bitboards[12+them]
	pawns := p.Bitboards[PieceWPawn+us]

	for pawns != 0 {
		from := popLSB(&pawns)
		fromBB := uint64(1) << from

		allowed := checkMask
		pinned := p.Pinned&fromBB != 0
		if pinned {
			allowed &= line(ksq, from)
		}

		var single, double uint64
		if us == ColorWhite {
			single = fromBB << 8 &^ occ
			if single != 0 && fromBB&rank2BB != 0 {
				double = fromBB << 16 &^ occ
			}
		} else {
			single = fromBB >> 8 &^ occ
			if single != 0 && fromBB&rank7BB != 0 {
				double = fromBB >> 16 &^ occ
			}
		}
		addPawnMoves(list, from, (single|double)&allowed, false, us)

		captures := pawnAttacks[us][from] & enemy & allowed
		addPawnMoves(list, from, captures, false, us)

		genEnPassant(p, us, them, ksq, from, fromBB, pinned, list)
	}
}

func genEnPassant(p *Position, us, them Color, ksq, from int, fromBB uint64, pinned bool, list *MoveList) {
	if p.EPTarget == noSquare {
		return
	}
	epBit := uint64(1) << p.EPTarget
	if pawnAttacks[us][from]&epBit == 0 {
		return
	}

	var capturedSq int
	if us == ColorWhite {
		capturedSq = p.EPTarget - 8
	} else {
		capturedSq = p.EPTarget + 8
	}

	if epRevealsCheck(p, them, ksq, from, capturedSq) {
		return
	}
	if pinned && line(ksq, from)&epBit == 0 {
		return
	}
	if p.Checkers != 0 {
		checkerSq := bitScan(p.Checkers)
		checkMask := between(checkerSq, ksq) | p.Checkers
		if capturedSq != checkerSq && checkMask&epBit == 0 {
			return
		}
	}

	list.Push(NewMove(p.EPTarget, from, MoveEnPassant))
}

// epRevealsCheck handles the cases pin/check masks can't: removing both the
// capturing and captured pawn at once can expose the king to a rook, bishop
// or queen that neither pawn was blocking on its own, whether they vanish
// off a shared rank (rook/queen) or a shared diagonal (bishop/queen).
// Decided by an explicit ray scan on the post-capture occupancy rather than
// folded into the generic pin mask, since the two vanishing pawns aren't
// collinear with the king in the usual sense.
func epRevealsCheck(p *Position, them Color, ksq, attackerSq, capturedSq int) bool {
	occWithout := p.Bitboards[14]&^(uint64(1)<<attackerSq|uint64(1)<<capturedSq) | uint64(1)<<p.EPTarget
	kingBB := uint64(1) << ksq

	enemyRQ := p.Bitboards[PieceWRook+them] | p.Bitboards[PieceWQueen+them]
	if rayRookAttacks(kingBB, occWithout)&enemyRQ != 0 {
		return true
	}
	enemyBQ := p.Bitboards[PieceWBishop+them] | p.Bitboards[PieceWQueen+them]
	return rayBishopAttacks(kingBB, occWithout)&enemyBQ != 0
}

func addPawnMoves(list *MoveList, from int, dest uint64, isEP bool, color Color) {
	for dest != 0 {
		to := popLSB(&dest)
		promotes := (color == ColorWhite && to >= SA8) || (color == ColorBlack && to <= SH1)
		switch {
		case promotes:
			list.Push(NewPromotionMove(to, from, PromotionQueen))
			list.Push(NewPromotionMove(to, from, PromotionRook))
			list.Push(NewPromotionMove(to, from, PromotionBishop))
			list.Push(NewPromotionMove(to, from, PromotionKnight))
		case isEP:
			list.Push(NewMove(to, from, MoveEnPassant))
		default:
			list.Push(NewMove(to, from, MoveNormal))
		}
	}
}

func genKingMoves(p *Position, us Color, list *MoveList) {
	them := us ^ 1
	ksq := bitScan(p.Bitboards[PieceWKing+us])
	own := p.Bitboards[12+us]
	occWithoutKing := p.Bitboards[14] &^ (uint64(1) << ksq)

	dest := kingAttacks[ksq] &^ own
	for dest != 0 {
		to := popLSB(&dest)
		if attackersTo(p, to, them, occWithoutKing) == 0 {
			list.Push(NewMove(to, ksq, MoveNormal))
		}
	}

	genCastlingMoves(p, us, them, ksq, list)
}

func genCastlingMoves(p *Position, us, them Color, ksq int, list *MoveList) {
	if p.Checkers != 0 {
		return
	}
	rights := p.Castling[us]
	rank := ksq / 8

	if rights.HasKingside() {
		rookSq := rank*8 + rights.KingsideFile
		if castlePathClear(p, them, ksq, rookSq, rank, fileG, fileF) {
			list.Push(NewMove(rookSq, ksq, MoveCastling))
		}
	}
	if rights.HasQueenside() {
		rookSq := rank*8 + rights.QueensideFile
		if castlePathClear(p, them, ksq, rookSq, rank, fileC, fileD) {
			list.Push(NewMove(rookSq, ksq, MoveCastling))
		}
	}
}

// castlePathClear reports whether the squares between king and rook (aside
// from the two pieces themselves) are empty, the destination squares hold
// nothing but the castling king/rook, and every square the king passes
// through (including its start and end square) is free of attack.
func castlePathClear(p *Position, them Color, ksq, rookSq, rank, kingDestFile, rookDestFile int) bool {
	kingFile, rookFile := ksq%8, rookSq%8

	occupants := uint64(1)<<ksq | uint64(1)<<rookSq
	travel := squaresBetweenFilesInclusive(rank, min(kingFile, kingDestFile), max(kingFile, kingDestFile)) |
		squaresBetweenFilesInclusive(rank, min(rookFile, rookDestFile), max(rookFile, rookDestFile))
	if travel&^occupants&p.Bitboards[14] != 0 {
		return false
	}

	occWithoutCastlers := p.Bitboards[14] &^ occupants
	kingPath := squaresBetweenFilesInclusive(rank, min(kingFile, kingDestFile), max(kingFile, kingDestFile))
	for kingPath != 0 {
		sq := popLSB(&kingPath)
		if attackersTo(p, sq, them, occWithoutCastlers) != 0 {
			return false
		}
	}
	return true
}
