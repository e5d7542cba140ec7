package buffer

// Position points into the document by (x, y): X is a grapheme index within
// row Y. Y == LineCount() is the append sentinel accepted by insert
// operations only.
type Position struct {
	X int
	Y int
}

// Size is the visible extent of a viewport in rows (Height) and grapheme
// columns (Width).
type Size struct {
	Width  int
	Height int
}

// SearchDirection selects the scan order of Find.
type SearchDirection uint8

const (
	Forward SearchDirection = iota
	Backward
)

func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ComparePos orders positions by row, then column.
func ComparePos(a, b Position) int {
	switch {
	case a.Y != b.Y:
		if a.Y < b.Y {
			return -1
		}
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
