package editor

// gutterWidth is the number of cells the line-number gutter occupies: the
// widest line number plus one separator column.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.doc.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	n := 0
	for lineCount > 0 {
		n++
		lineCount /= 10
	}
	return n
}
