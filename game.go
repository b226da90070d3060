/*
game.go implements chess game state management: applying moves, tracking
draw conditions, and deciding when the game has ended.
*/

package chego

/*
Game represents a game state that can be serialized to a PGN string with
[SerializePGN]; parsing PGN into a Game is not supported.

It's the user's responsibility to spin up a time.Ticker and handle time
ticks by calling [Game.DecrementTime].  The value of timeBonus is added to
the player's timer during [Game.PushMove], so the user must ensure that
time ticks and moves are not handled concurrently (prevent race conditions).

NOTE: Call [EnsureTablesInitialized] before creating a [Game]; ParseFEN and
NewGame do this for you.
*/
type Game struct {
	LegalMoves MoveList
	position   Position
	// Repetition keys are stored as a map of Zobrist keys to the number of
	// times each position has occurred.
	repetitions map[uint64]int
	Result      Result
	whiteTime   int
	blackTime   int
	timeBonus   int

	// Tags holds PGN tag-pair values (Event, Site, Date, Round, White,
	// Black, and any others the caller wants recorded). SerializePGN reads
	// from this map; the caller fills it in before serializing.
	Tags map[string]string
	// moves records each played move's SAN, in order, for SerializePGN's
	// movetext section.
	moves []string
}

// NewGame creates a Game starting from the standard initial position.
func NewGame() (*Game, error) {
	pos, err := ParseFEN(InitialPos)
	if err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

// NewGameFromFEN creates a Game starting from the position fen describes.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

func newGame(pos Position) *Game {
	g := &Game{
		position:    pos,
		repetitions: make(map[uint64]int, 1),
		Result:      ResultUnscored,
		Tags:        make(map[string]string),
	}
	GenLegalMoves(g.position, &g.LegalMoves)
	g.repetitions[repetitionKey(g.position)] = 1
	return g
}

// Position returns the current position.
func (g *Game) Position() Position {
	return g.position
}

/*
PushMove updates the game state by performing the specified move and returns
its Standard Algebraic Notation. It's the caller's responsibility to ensure
that the specified move is legal (see [Game.IsMoveLegal]). Not safe for
concurrent use.
*/
func (g *Game) PushMove(m Move) string {
	prev := g.position
	preMoveList := g.LegalMoves

	moved := prev.GetPieceFromSquare(uint64(1) << m.From())
	captured := prev.GetPieceFromSquare(uint64(1) << m.To())
	isCapture := captured != PieceNone || m.Type() == MoveEnPassant

	g.position = prev.MakeMove(m)
	GenLegalMoves(g.position, &g.LegalMoves)

	isCheck := g.position.Checkers != 0
	noMoves := g.LegalMoves.LastMoveIndex == 0
	isCheckmate := isCheck && noMoves

	san := Move2SAN(m, &prev, preMoveList, moved, isCapture, isCheck, isCheckmate)
	g.moves = append(g.moves, san)

	if prev.ActiveColor == ColorWhite {
		g.whiteTime += g.timeBonus
	} else {
		g.blackTime += g.timeBonus
	}

	// Irreversible moves discard history a position could have repeated
	// against. See https://www.chessprogramming.org/Irreversible_Moves
	if isCapture || m.Type() == MoveCastling || m.Type() == MovePromotion ||
		moved == PieceWPawn || moved == PieceBPawn {
		clear(g.repetitions)
	}
	g.repetitions[repetitionKey(g.position)]++

	switch {
	case isCheckmate:
		g.Result = ResultCheckmate
	case noMoves:
		g.Result = ResultStalemate
	case g.IsInsufficientMaterial():
		g.Result = ResultInsufficientMaterial
	case g.position.HalfmoveCnt >= 100:
		g.Result = ResultFiftyMove
	case g.IsThreefoldRepetition():
		g.Result = ResultThreefoldRepetition
	}

	return san
}

/*
IsThreefoldRepetition checks whether the game has reached a threefold
repetition. Two positions are considered identical if all of the following
conditions are met:
  - Active colors are the same.
  - Pieces occupy the same squares.
  - Castling rights are identical.
  - The en passant target squares either match, or neither allows a
    capture -- both cases fold into the same Zobrist hash (see zobrist.go).
*/
func (g *Game) IsThreefoldRepetition() bool {
	for _, numOfReps := range g.repetitions {
		if numOfReps >= 3 {
			return true
		}
	}
	return false
}

/*
IsInsufficientMaterial returns true if one of the following statements is true:
  - Both sides have a bare king.
  - One side has a king and a minor piece against a bare king.
  - Both sides have a king and a bishop, the bishops standing on the same color.
  - Both sides have a king and a knight.
*/
func (g *Game) IsInsufficientMaterial() bool {
	// Bitmask for all dark squares.
	dark := uint64(0xAA55AA55AA55AA55)
	material := g.position.calculateMaterial()

	if material == 0 || (material == 3 && g.position.Bitboards[PieceWPawn] == 0 &&
		g.position.Bitboards[PieceBPawn] == 0) {
		return true
	}

	if material == 6 {
		wb := g.position.Bitboards[PieceWBishop]
		bb := g.position.Bitboards[PieceBBishop]

		// If there are two bishops both standing on the same colored squares.
		return (wb != 0 && bb != 0 && ((wb&dark > 0 && bb&dark > 0) ||
			(wb&dark == 0 && bb&dark == 0))) ||
			// Or if there are two knights.
			(g.position.Bitboards[PieceWKnight] != 0 &&
				g.position.Bitboards[PieceBKnight] != 0)
	}
	return false
}

/*
IsCheckmate returns true if both of the following statements are true:
  - There are no legal moves available for the current turn.
  - The king of the side to move is in check.

NOTE: If there are no legal moves, but the king is not in check, the
position is a stalemate.
*/
func (g *Game) IsCheckmate() bool {
	return g.position.Checkers != 0 && g.LegalMoves.LastMoveIndex == 0
}

/*
IsMoveLegal checks if the specified move is legal by comparing it with
moves stored in the LegalMoves field.
*/
func (g *Game) IsMoveLegal(m Move) bool {
	for i := range g.LegalMoves.LastMoveIndex {
		lm := g.LegalMoves.Moves[i]
		if lm.From() == m.From() && lm.To() == m.To() && lm.Type() == m.Type() &&
			lm.PromoPiece() == m.PromoPiece() {
			return true
		}
	}
	return false
}

// SetClock sets the players' remaining time and increment (bonus) values.
// It expects these values to be specified in seconds.
func (g *Game) SetClock(control, bonus int) {
	g.whiteTime = control
	g.blackTime = control
	g.timeBonus = bonus
}

// DecrementTime subtracts one second from the clock of the side to move,
// setting Result to [ResultTimeout] if it runs out. Meant to be called once
// per second from a caller-owned time.Ticker.
func (g *Game) DecrementTime() {
	if g.Result != ResultUnscored {
		return
	}
	if g.position.ActiveColor == ColorWhite {
		g.whiteTime--
		if g.whiteTime <= 0 {
			g.Result = ResultTimeout
		}
	} else {
		g.blackTime--
		if g.blackTime <= 0 {
			g.Result = ResultTimeout
		}
	}
}
