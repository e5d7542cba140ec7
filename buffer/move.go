package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// Rows is the page height for MovePage.
	Rows int
}

// Move returns the cursor after applying m to cur.
//
// The cursor may rest on the append row (Y == LineCount()). Horizontal moves
// wrap across row ends; after any move X is snapped to the target row.
func (d *Document) Move(cur Position, m Move) Position {
	cur = d.ClampCursor(cur)
	x, y := cur.X, cur.Y
	height := len(d.rows)

	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			if x > 0 {
				x--
			} else if y > 0 {
				y--
				x = d.rowLen(y)
			}
		case DirRight:
			if x < d.rowLen(y) {
				x++
			} else if y < height {
				y++
				x = 0
			}
		}
	case MoveLine:
		switch m.Dir {
		case DirUp:
			if y > 0 {
				y--
			}
		case DirDown:
			if y < height {
				y++
			}
		case DirHome:
			x = 0
		case DirEnd:
			x = d.rowLen(y)
		}
	case MovePage:
		rows := maxInt(m.Rows, 1)
		switch m.Dir {
		case DirUp:
			y = maxInt(y-rows, 0)
		case DirDown:
			y = minInt(y+rows, height)
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome:
			x, y = 0, 0
		case DirEnd:
			y = maxInt(height-1, 0)
			x = d.rowLen(y)
		}
	}

	return Position{X: minInt(x, d.rowLen(y)), Y: y}
}

func (d *Document) rowLen(y int) int {
	if y < 0 || y >= len(d.rows) {
		return 0
	}
	return d.rows[y].Len()
}

// ClampCursor snaps p into the document: Y into [0, LineCount()] and X into
// the target row.
func (d *Document) ClampCursor(p Position) Position {
	y := clampInt(p.Y, 0, len(d.rows))
	return Position{X: clampInt(p.X, 0, d.rowLen(y)), Y: y}
}
