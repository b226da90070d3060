package chego

import (
	"errors"
	"strings"
	"testing"
)

func TestPositionBuilderRoundTripsClassicalStart(t *testing.T) {
	classical := NewClassicalCastleRights()
	b := NewPositionBuilder()

	backRankPieces := []Piece{PieceWRook, PieceWKnight, PieceWBishop, PieceWQueen,
		PieceWKing, PieceWBishop, PieceWKnight, PieceWRook}
	for file, piece := range backRankPieces {
		b.Piece(file, piece, ColorWhite)
		b.Piece(56+file, piece, ColorBlack)
	}
	for file := 0; file < 8; file++ {
		b.Piece(8+file, PieceWPawn, ColorWhite)
		b.Piece(48+file, PieceWPawn, ColorBlack)
	}
	b.SideToMove(ColorWhite)
	b.CastleRights(ColorWhite, classical)
	b.CastleRights(ColorBlack, classical)

	got, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Bitboards != want.Bitboards {
		t.Fatalf("expected bitboards to match the classical starting position")
	}
	if got.Hash != want.Hash {
		t.Fatalf("expected the built position's hash to match ParseFEN's")
	}
}

func TestPositionBuilderRejectsIllegalPosition(t *testing.T) {
	// No black king on the board.
	_, err := NewPositionBuilder().
		Piece(SE1, PieceWKing, ColorWhite).
		Build()
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestPositionBuilderClearSquare(t *testing.T) {
	p, err := NewPositionBuilder().
		Piece(SE1, PieceWKing, ColorWhite).
		Piece(SE8, PieceWKing, ColorBlack).
		Piece(SA1, PieceWRook, ColorWhite).
		ClearSquare(SA1).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Bitboards[14] != (uint64(1)<<SE1 | uint64(1)<<SE8) {
		t.Fatalf("expected ClearSquare to remove the rook placed earlier")
	}
}

func TestEnPassantTargetOnlySetWhenObservable(t *testing.T) {
	// No black pawn adjacent to d4, so the double push must not record an
	// en passant target even though it skipped over d3.
	p, err := ParseFEN("4k3/8/8/8/8/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next := p.MakeMove(NewMove(SD4, SD2, MoveNormal))
	if next.EPTarget != noSquare {
		t.Fatalf("expected no en passant target without an adjacent enemy pawn, got %s",
			Square2String[next.EPTarget])
	}

	// Same push, but now with a black pawn on e4 able to capture en passant.
	p2, err := ParseFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next2 := p2.MakeMove(NewMove(SD4, SD2, MoveNormal))
	if next2.EPTarget != SD3 {
		t.Fatalf("expected en passant target d3 with an adjacent enemy pawn, got %s",
			Square2String[next2.EPTarget])
	}
}

func TestIsMoveLegal(t *testing.T) {
	p, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.IsMoveLegal(NewMove(SE4, SE2, MoveNormal)) {
		t.Fatalf("expected e2e4 to be legal from the starting position")
	}
	if p.IsMoveLegal(NewMove(SE5, SE2, MoveNormal)) {
		t.Fatalf("expected e2e5 to be illegal (pawns cannot jump three ranks)")
	}
}

func TestParseUCI(t *testing.T) {
	p, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := ParseUCI("e2e4", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.From() != SE2 || m.To() != SE4 {
		t.Fatalf("expected e2e4 to parse to From=e2 To=e4, got From=%s To=%s",
			Square2String[m.From()], Square2String[m.To()])
	}
}

func TestParseUCITraditionalCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := ParseUCI("e1g1", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Type() != MoveCastling {
		t.Fatalf("expected e1g1 to resolve to a castling move")
	}
	// In the king-captures-own-rook encoding, To() is the rook's square.
	if m.To() != SH1 {
		t.Fatalf("expected To() to hold the rook's square (h1), got %s",
			Square2String[m.To()])
	}
}

func TestParseUCIRejectsIllegalMove(t *testing.T) {
	p, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseUCI("e2e5", p); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove for an illegal UCI move, got %v", err)
	}
	if _, err := ParseUCI("z9z8", p); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation for a malformed UCI string, got %v", err)
	}
}

func TestSerializePGNRoundTripsMovetext(t *testing.T) {
	g, err := NewGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Tags["Event"] = "Test Game"
	g.Tags["White"] = "Alice"
	g.Tags["Black"] = "Bob"

	for _, s := range []string{"e2e4", "e7e5", "g1f3"} {
		m, err := ParseUCI(s, g.Position())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
		g.PushMove(m)
	}

	pgn := SerializePGN(*g)
	wants := []string{`[Event "Test Game"]`, `[White "Alice"]`, `[Black "Bob"]`, "1. e4 e5 2. Nf3"}
	for _, want := range wants {
		if !strings.Contains(pgn, want) {
			t.Fatalf("expected PGN to contain %q, got:\n%s", want, pgn)
		}
	}
}
