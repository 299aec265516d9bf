package main

import (
	"errors"
	"fmt"
)

var (
	errNoPieceAtSource = errors.New("no piece at source")
	errNotYourTurn     = errors.New("not your turn")
	errIllegalMove     = errors.New("illegal move")
)

// chessGame evaluates move requests against one board snapshot and the team
// to move. It is rebuilt from persisted state for every request and owns no
// state beyond that.
type chessGame struct {
	board chessBoard
	turn  team
}

func newChessGame(board chessBoard, turn team) *chessGame {
	return &chessGame{board: board, turn: turn}
}

// move applies one source->target request. On any failure the board and turn
// are left untouched.
func (g *chessGame) move(sourceText, targetText string) error {
	source, err := parsePosition(sourceText)
	if err != nil {
		return err
	}
	target, err := parsePosition(targetText)
	if err != nil {
		return err
	}
	mover, ok := g.board.pieceAt(source)
	if !ok {
		return fmt.Errorf("%w: %s", errNoPieceAtSource, source)
	}
	if mover.team != g.turn {
		return fmt.Errorf("%w: %s to move", errNotYourTurn, g.turn)
	}
	if !g.board.movable(mover, source, target) {
		return fmt.Errorf("%w: %s %s%s", errIllegalMove, mover.name(), source, target)
	}
	g.board.applyMove(source, target)
	g.turn = g.turn.opposite()
	return nil
}

func (g *chessGame) currentTurn() team {
	return g.turn
}

// isOn reports whether the game continues: false once either king has been
// captured off the board.
func (g *chessGame) isOn() bool {
	return g.board.hasKing(white) && g.board.hasKing(black)
}

func (g *chessGame) pieceNameAt(text string) (string, error) {
	pos, err := parsePosition(text)
	if err != nil {
		return "", err
	}
	return g.board.pieceNameAt(pos), nil
}
