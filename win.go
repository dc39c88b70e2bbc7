package camfour

// needed is how many pieces beside the origin make four in a row.
const needed = 3

// CheckWin reports whether the piece at (row, col), which must belong to
// who, completes four in a row. The origin is expected to be the piece that
// was just placed, so it is always the top of its column.
func (b *Board) CheckWin(row, col int, who Occupant) bool {
	if who == None || b.Owner(row, col) != who {
		return false
	}

	return b.verticalRun(row, col, who) ||
		b.horizontalRun(row, col, who) ||
		b.negativeDiagonalRun(row, col, who) ||
		b.positiveDiagonalRun(row, col, who)
}

// run walks up to steps cells from (row, col) in direction (dr, dc) and
// counts consecutive cells owned by who. It stops at the first mismatch or
// once needed is reached.
func (b *Board) run(row, col, dr, dc, steps int, who Occupant) int {
	count := 0
	for i := 1; i <= steps; i++ {
		if b.Cells[row+i*dr][col+i*dc].Occupant != who {
			break
		}

		count++
		if count == needed {
			break
		}
	}

	return count
}

// verticalRun only looks down. Nothing can sit above the newest piece.
func (b *Board) verticalRun(row, col int, who Occupant) bool {
	return b.run(row, col, -1, 0, row, who) == needed
}

// horizontalRun checks the left and right runs separately. They are not
// added together.
func (b *Board) horizontalRun(row, col int, who Occupant) bool {
	if b.run(row, col, 0, -1, col, who) == needed {
		return true
	}

	return b.run(row, col, 0, 1, Cols-1-col, who) == needed
}

// negativeDiagonalRun walks up-left and down-right.
func (b *Board) negativeDiagonalRun(row, col int, who Occupant) bool {
	upLeft := min(Rows-1-row, col)
	downRight := min(row, Cols-1-col)

	if b.run(row, col, 1, -1, upLeft, who) == needed {
		return true
	}

	return b.run(row, col, -1, 1, downRight, who) == needed
}

// positiveDiagonalRun walks down-left and up-right.
func (b *Board) positiveDiagonalRun(row, col int, who Occupant) bool {
	downLeft := min(row, col)
	upRight := min(Rows-1-row, Cols-1-col)

	if b.run(row, col, -1, -1, downLeft, who) == needed {
		return true
	}

	return b.run(row, col, 1, 1, upRight, who) == needed
}
