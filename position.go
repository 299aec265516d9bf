package main

import (
	"errors"
	"fmt"
)

var errInvalidCoordinate = errors.New("invalid coordinate")

const (
	fileMin = byte('a')
	fileMax = byte('h')
	rankMin = 1
	rankMax = 8
)

// position is one square of the 8x8 board, addressed by file ('a'..'h') and
// rank (1..8). Values produced by parsePosition or translate are always in
// range.
type position struct {
	file byte
	rank int
}

func parsePosition(text string) (position, error) {
	if len(text) != 2 {
		return position{}, fmt.Errorf("%w: %q", errInvalidCoordinate, text)
	}
	file := text[0]
	rank := int(text[1] - '0')
	if file < fileMin || file > fileMax || rank < rankMin || rank > rankMax {
		return position{}, fmt.Errorf("%w: %q", errInvalidCoordinate, text)
	}
	return position{file: file, rank: rank}, nil
}

func (p position) String() string {
	return fmt.Sprintf("%c%d", p.file, p.rank)
}

// fileGap and rankGap are signed, measured from p towards that.
func (p position) fileGap(that position) int {
	return int(that.file) - int(p.file)
}

func (p position) rankGap(that position) int {
	return that.rank - p.rank
}

// translate offsets p by the given deltas; ok is false when the result would
// leave the board.
func (p position) translate(fileDelta, rankDelta int) (position, bool) {
	file := int(p.file) + fileDelta
	rank := p.rank + rankDelta
	if file < int(fileMin) || file > int(fileMax) || rank < rankMin || rank > rankMax {
		return position{}, false
	}
	return position{file: byte(file), rank: rank}, true
}
