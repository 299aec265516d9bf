package main

// movable answers shape and path legality for the piece sitting on from. A
// destination held by the mover's own team is illegal for every kind; sliding
// kinds additionally need every square between from and to empty. Whether the
// move exposes the mover's own king is deliberately not considered: the game
// ends on king capture, not on check.
func (b chessBoard) movable(p piece, from, to position) bool {
	if from == to {
		return false
	}
	if occupant, ok := b[to]; ok && occupant.team == p.team {
		return false
	}
	fileGap := from.fileGap(to)
	rankGap := from.rankGap(to)
	switch p.kind {
	case king:
		return abs(fileGap) <= 1 && abs(rankGap) <= 1
	case knight:
		return abs(fileGap)*abs(rankGap) == 2
	case rook:
		return straightGap(fileGap, rankGap) && b.pathClear(from, to)
	case bishop:
		return diagonalGap(fileGap, rankGap) && b.pathClear(from, to)
	case queen:
		return (straightGap(fileGap, rankGap) || diagonalGap(fileGap, rankGap)) &&
			b.pathClear(from, to)
	case pawn:
		return b.pawnMovable(p.team, from, to, fileGap, rankGap)
	}
	return false
}

func straightGap(fileGap, rankGap int) bool {
	return (fileGap == 0) != (rankGap == 0)
}

func diagonalGap(fileGap, rankGap int) bool {
	return fileGap != 0 && abs(fileGap) == abs(rankGap)
}

// pawnMovable: straight moves only onto empty squares, one step always, two
// steps only from the team's starting rank with the intermediate square empty
// as well; diagonal moves only as captures of the opposing team.
func (b chessBoard) pawnMovable(t team, from, to position, fileGap, rankGap int) bool {
	forward, startRank := 1, 2
	if t == black {
		forward, startRank = -1, 7
	}
	if fileGap == 0 {
		if _, occupied := b[to]; occupied {
			return false
		}
		if rankGap == forward {
			return true
		}
		return rankGap == 2*forward && from.rank == startRank && b.pathClear(from, to)
	}
	if abs(fileGap) == 1 && rankGap == forward {
		occupant, ok := b[to]
		return ok && occupant.team != t
	}
	return false
}

func abs(gap int) int {
	if gap < 0 {
		return -gap
	}
	return gap
}
