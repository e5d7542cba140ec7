package buffer

// Scroll returns the viewport offset that keeps cursor visible in a window of
// the given size, moving offset by the minimum amount. Each axis is handled
// independently and never goes negative; an axis with a non-positive extent
// keeps its offset.
func Scroll(cursor Position, size Size, offset Position) Position {
	return Position{
		X: scrollAxis(cursor.X, size.Width, offset.X),
		Y: scrollAxis(cursor.Y, size.Height, offset.Y),
	}
}

func scrollAxis(cur, extent, off int) int {
	off = maxInt(off, 0)
	if extent <= 0 {
		return off
	}
	if cur < off {
		return maxInt(cur, 0)
	}
	if cur >= off+extent {
		return maxInt(cur-extent+1, 0)
	}
	return off
}
