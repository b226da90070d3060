/*
pgn.go serializes the [Game] structure into a Portable Game Notation (PGN)
string; reading PGN is not supported. Functions in this file expect the
passed Game variables to be valid, and may panic if they aren't.

Exported PGN strings start with the Seven Tag Roster, in this order:
 1. Event (Example - ranked blitz game | normal rapid game);
 2. Site (URL to the game. Example - https://justchess.org/nf8KbSog);
 3. Date (the starting date of the game. Example - 2025.10.12);
 4. Round (? if players haven't play a match yet);
 5. White (Id of the white player);
 6. Black (Id of the black player);
 7. Result (the result of the game).
Any other entries of Game.Tags follow the roster.
*/

package chego

import (
	"fmt"
	"strings"
)

// pgnTagOrder is the Seven Tag Roster PGN requires up front, in order.
// Callers may add further tags to Game.Tags; those are appended after the
// roster in unspecified order.
var pgnTagOrder = [...]string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// pgnLineWidth is the column SerializePGN wraps movetext at, matching the
// common PGN export convention (see the format example below).
const pgnLineWidth = 80

/*
SerializePGN serializes the specified [Game] into a PGN string. A roster tag
missing from Game.Tags is written as "?", except Result, which is derived
from Game.Result. For a game still in progress after 1. e4 e5 2. Nf3, with
only the Event, White and Black tags set, it returns:

[Event "Test Game"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "Alice"]
[Black "Bob"]
[Result "*"]

1. e4 e5 2. Nf3
*
*/
func SerializePGN(g Game) string {
	var b strings.Builder

	tagged := make(map[string]bool, len(pgnTagOrder))
	for _, tag := range pgnTagOrder {
		value, ok := g.Tags[tag]
		if !ok {
			if tag == "Result" {
				value = g.pgnResultString()
			} else {
				value = "?"
			}
		}
		fmt.Fprintf(&b, "[%s %q]\n", tag, value)
		tagged[tag] = true
	}
	for tag, value := range g.Tags {
		if !tagged[tag] {
			fmt.Fprintf(&b, "[%s %q]\n", tag, value)
		}
	}
	b.WriteByte('\n')

	result := g.pgnResultString()
	writePGNMovetext(&b, g.moves)
	b.WriteString(result)
	b.WriteByte('\n')

	return b.String()
}

// writePGNMovetext writes moves as numbered move pairs, wrapping lines at
// pgnLineWidth the way exported PGN games conventionally do.
func writePGNMovetext(b *strings.Builder, moves []string) {
	lineLen := 0
	write := func(token string) {
		if lineLen > 0 && lineLen+1+len(token) > pgnLineWidth {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(token)
		lineLen += len(token)
	}

	for i, san := range moves {
		if i%2 == 0 {
			write(fmt.Sprintf("%d.", i/2+1))
		}
		write(san)
	}
	if len(moves) > 0 {
		b.WriteByte('\n')
	}
}

// pgnResultString maps g.Result to the PGN result token. Checkmate and
// timeout always end the game against the side to move (the checkmated or
// flagged side), so the winner is derived from g.position.ActiveColor.
// Resignation has no such board signal, so it reads Game.Tags["Result"] if
// the caller set one, defaulting to "*". Every draw, draw by agreement
// included, gives "1/2-1/2".
func (g *Game) pgnResultString() string {
	loses := g.position.ActiveColor
	switch g.Result {
	case ResultCheckmate, ResultTimeout:
		if loses == ColorWhite {
			return "0-1"
		}
		return "1-0"
	case ResultStalemate, ResultInsufficientMaterial, ResultFiftyMove,
		ResultThreefoldRepetition, ResultDrawByAgreement:
		return "1/2-1/2"
	case ResultResignation:
		if value, ok := g.Tags["Result"]; ok {
			return value
		}
		return "*"
	default:
		return "*"
	}
}
