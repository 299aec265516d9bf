package main

import (
	"github.com/montanaflynn/stats"
)

// doubledPawnValue replaces the pawn's normal value whenever two or more
// pawns of the same team share a file.
const doubledPawnValue = 0.5

// score holds the material total per team. It is derived from a board
// snapshot and never stored.
type score struct {
	White float64
	Black float64
}

func computeScore(board chessBoard) score {
	return score{
		White: teamScore(board, white),
		Black: teamScore(board, black),
	}
}

func teamScore(board chessBoard, t team) float64 {
	pawnsPerFile := make(map[byte]int)
	for pos, p := range board {
		if p.team == t && p.kind == pawn {
			pawnsPerFile[pos.file]++
		}
	}
	values := make([]float64, 0, len(board))
	for pos, p := range board {
		if p.team != t {
			continue
		}
		value := p.value()
		if p.kind == pawn && pawnsPerFile[pos.file] > 1 {
			value = doubledPawnValue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return 0
	}
	total, err := stats.Sum(stats.LoadRawData(values))
	if err != nil {
		return 0
	}
	return total
}
