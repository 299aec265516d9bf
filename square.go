package main

import (
	"gorm.io/gorm"
)

// Square square. One row per board square, 64 per room; empty squares carry
// the empty marker so a move only ever updates existing rows.
type Square struct {
	gorm.Model

	RoomID   uint   `gorm:"uniqueIndex:idx_room_position;not null"`
	Position string `gorm:"uniqueIndex:idx_room_position;type:varchar;size:2;not null"`
	Piece    string `gorm:"type:varchar;size:1;not null"`
}

func initialSquares(roomKey uint) []Square {
	board := initialChessBoard()
	squares := make([]Square, 0, 64)
	for file := fileMin; file <= fileMax; file++ {
		for rank := rankMin; rank <= rankMax; rank++ {
			pos := position{file: file, rank: rank}
			squares = append(squares, Square{
				RoomID:   roomKey,
				Position: pos.String(),
				Piece:    board.pieceNameAt(pos),
			})
		}
	}
	return squares
}

func getSquares(roomKey uint) ([]Square, error) {
	var squares []Square
	if err := db.Where(Square{RoomID: roomKey}).Order("position").Find(&squares).Error; err != nil {
		return nil, err
	}
	return squares, nil
}

// loadBoard rebuilds the sparse engine board from the persisted snapshot,
// skipping empty-marker rows.
func loadBoard(tx *gorm.DB, roomKey uint) (chessBoard, error) {
	var squares []Square
	if err := tx.Where(Square{RoomID: roomKey}).Find(&squares).Error; err != nil {
		return nil, err
	}
	board := make(chessBoard, len(squares))
	for _, square := range squares {
		if square.Piece == emptySquare {
			continue
		}
		pos, err := parsePosition(square.Position)
		if err != nil {
			return nil, err
		}
		p, err := parsePiece(square.Piece)
		if err != nil {
			return nil, err
		}
		board[pos] = p
	}
	return board, nil
}
