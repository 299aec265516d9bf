package main

import "fmt"

type team string

const (
	white team = "white"
	black team = "black"
)

func parseTeam(text string) (team, error) {
	switch team(text) {
	case white, black:
		return team(text), nil
	}
	return "", fmt.Errorf("unknown team %q", text)
}

func (t team) opposite() team {
	if t == white {
		return black
	}
	return white
}

type kind int

const (
	pawn kind = iota
	knight
	bishop
	rook
	queen
	king
)

// piece is immutable. Moving a piece relocates board occupancy; the piece
// itself never changes.
type piece struct {
	kind kind
	team team
}

// emptySquare is the persisted marker for a square with no piece on it.
const emptySquare = "."

var kindLetters = map[kind]byte{
	pawn:   'p',
	knight: 'n',
	bishop: 'b',
	rook:   'r',
	queen:  'q',
	king:   'k',
}

// name is the persisted single-letter encoding: lowercase for white pieces,
// uppercase for black. The letters are a storage contract and must round-trip
// exactly.
func (p piece) name() string {
	letter := kindLetters[p.kind]
	if p.team == black {
		letter -= 'a' - 'A'
	}
	return string(letter)
}

func parsePiece(name string) (piece, error) {
	if len(name) != 1 {
		return piece{}, fmt.Errorf("unknown piece %q", name)
	}
	letter := name[0]
	t := white
	if letter >= 'A' && letter <= 'Z' {
		t = black
		letter += 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == letter {
			return piece{kind: k, team: t}, nil
		}
	}
	return piece{}, fmt.Errorf("unknown piece %q", name)
}

// value is the material worth used by scoring. The king carries no material
// value; losing it ends the game instead.
func (p piece) value() float64 {
	switch p.kind {
	case pawn:
		return 1
	case knight:
		return 2.5
	case bishop:
		return 3
	case rook:
		return 5
	case queen:
		return 9
	}
	return 0
}
