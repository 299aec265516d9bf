package main

// chessBoard maps occupied squares to their pieces; squares with no entry are
// empty. It holds at most one piece per square by construction.
type chessBoard map[position]piece

func (b chessBoard) pieceAt(pos position) (piece, bool) {
	p, ok := b[pos]
	return p, ok
}

// pieceNameAt is the persisted encoding of a square's occupant, or the empty
// marker.
func (b chessBoard) pieceNameAt(pos position) string {
	p, ok := b[pos]
	if !ok {
		return emptySquare
	}
	return p.name()
}

// pathClear walks the squares strictly between from and to along the straight
// line they imply. The endpoints themselves are not inspected.
func (b chessBoard) pathClear(from, to position) bool {
	fileStep := sign(from.fileGap(to))
	rankStep := sign(from.rankGap(to))
	cur, ok := from.translate(fileStep, rankStep)
	for ok && cur != to {
		if _, occupied := b[cur]; occupied {
			return false
		}
		cur, ok = cur.translate(fileStep, rankStep)
	}
	return true
}

// applyMove relocates the piece on from to to, capturing whatever sat there.
// Legality must already be established; applyMove performs no validation.
func (b chessBoard) applyMove(from, to position) {
	b[to] = b[from]
	delete(b, from)
}

func (b chessBoard) hasKing(t team) bool {
	for _, p := range b {
		if p.kind == king && p.team == t {
			return true
		}
	}
	return false
}

func sign(gap int) int {
	switch {
	case gap > 0:
		return 1
	case gap < 0:
		return -1
	}
	return 0
}

var backRank = []kind{rook, knight, bishop, queen, king, bishop, knight, rook}

func initialChessBoard() chessBoard {
	board := make(chessBoard, 32)
	for i, k := range backRank {
		file := fileMin + byte(i)
		board[position{file: file, rank: 1}] = piece{kind: k, team: white}
		board[position{file: file, rank: 8}] = piece{kind: k, team: black}
		board[position{file: file, rank: 2}] = piece{kind: pawn, team: white}
		board[position{file: file, rank: 7}] = piece{kind: pawn, team: black}
	}
	return board
}
