package buffer

import (
	"fmt"
	"testing"
)

func rowsOf(d *Document) []string {
	out := make([]string, 0, d.LineCount())
	for y := 0; y < d.LineCount(); y++ {
		row, _ := d.Row(y)
		out = append(out, row.String())
	}
	return out
}

func assertRows(t *testing.T, d *Document, want ...string) {
	t.Helper()
	got := rowsOf(d)
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestFromText_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "\n", want: []string{""}},
		{text: "abc", want: []string{"abc"}},
		{text: "abc\n", want: []string{"abc"}},
		{text: "abc\n\n", want: []string{"abc", ""}},
		{text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{text: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		d := FromText(tc.text)
		if got := rowsOf(d); fmt.Sprintf("%q", got) != fmt.Sprintf("%q", tc.want) {
			t.Fatalf("FromText(%q): got %q, want %q", tc.text, got, tc.want)
		}
		if d.IsDirty() || d.Path() != "" {
			t.Fatalf("FromText(%q) must be clean and unnamed", tc.text)
		}
	}
}

func TestDocument_EmptyIsValid(t *testing.T) {
	d := New()
	if !d.IsEmpty() || d.LineCount() != 0 {
		t.Fatalf("new document: empty=%v lines=%d", d.IsEmpty(), d.LineCount())
	}
	if _, ok := d.Row(0); ok {
		t.Fatalf("row 0 of empty document must not exist")
	}
	if _, ok := d.Row(-1); ok {
		t.Fatalf("negative row must not exist")
	}
}

func TestDocument_InsertNewlineSplitsRow(t *testing.T) {
	d := FromText("abc\ndef")
	d.InsertNewline(Position{X: 1, Y: 0})
	assertRows(t, d, "a", "bc", "def")
	if !d.IsDirty() {
		t.Fatalf("newline must mark the document dirty")
	}
}

func TestDocument_InsertNewlineAtRowEnd(t *testing.T) {
	d := FromText("abc\ndef")
	d.Insert(Position{X: 3, Y: 0}, '\n')
	assertRows(t, d, "abc", "", "def")
}

func TestDocument_InsertNewlineAppendsAtSentinel(t *testing.T) {
	d := FromText("abc")
	d.InsertNewline(Position{X: 0, Y: 1})
	assertRows(t, d, "abc", "")
	d.InsertNewline(Position{X: 0, Y: 5})
	assertRows(t, d, "abc", "")
}

func TestDocument_DeleteAtRowEndMerges(t *testing.T) {
	d := FromText("a\nbc\ndef")
	d.Delete(Position{X: 1, Y: 0})
	assertRows(t, d, "abc", "def")
}

func TestDocument_DeleteAtEndOfLastRowIsNoop(t *testing.T) {
	d := FromText("abc\ndef")
	d.Delete(Position{X: 3, Y: 1})
	assertRows(t, d, "abc", "def")
	if d.IsDirty() {
		t.Fatalf("no-op delete must not mark the document dirty")
	}
}

func TestDocument_DeleteOutOfRangeIsNoop(t *testing.T) {
	d := FromText("abc")
	d.Delete(Position{X: 0, Y: 1})
	d.Delete(Position{X: 0, Y: -1})
	d.Delete(Position{X: 9, Y: 0})
	assertRows(t, d, "abc")
	if d.IsDirty() {
		t.Fatalf("out-of-range delete must not mark the document dirty")
	}
}

func TestDocument_DeleteGrapheme(t *testing.T) {
	d := FromText("a" + family + "b")
	d.Delete(Position{X: 1, Y: 0})
	assertRows(t, d, "ab")
	if !d.IsDirty() {
		t.Fatalf("delete must mark the document dirty")
	}
}

func TestDocument_NewlineThenMergeRestores(t *testing.T) {
	for _, text := range rowFixtures {
		n := NewRow(text).Len()
		for x := 0; x <= n; x++ {
			d := FromText(text + "\nnext")
			d.Insert(Position{X: x, Y: 0}, '\n')
			d.Delete(Position{X: x, Y: 0})
			row, _ := d.Row(0)
			if row.String() != text || d.LineCount() != 2 {
				t.Fatalf("%q newline/merge at %d: got %q", text, x, rowsOf(d))
			}
		}
	}
}

func TestDocument_InsertChar(t *testing.T) {
	d := FromText("ac")
	d.Insert(Position{X: 1, Y: 0}, 'b')
	assertRows(t, d, "abc")

	d.Insert(Position{X: 0, Y: 1}, 'z')
	assertRows(t, d, "abc", "z")

	d.Insert(Position{X: 0, Y: 3}, 'q')
	assertRows(t, d, "abc", "z")
}

func TestDocument_InsertIntoEmptyDocument(t *testing.T) {
	d := New()
	d.Insert(Position{}, 'h')
	d.Insert(Position{X: 1}, 'i')
	assertRows(t, d, "hi")
	if !d.IsDirty() {
		t.Fatalf("insert must mark the document dirty")
	}
}

func TestDocument_InsertOutOfRangeIsNoop(t *testing.T) {
	d := FromText("abc")
	d.Insert(Position{X: 0, Y: 2}, 'x')
	d.Insert(Position{X: 0, Y: -1}, 'x')
	assertRows(t, d, "abc")
	if d.IsDirty() {
		t.Fatalf("ignored insert must not mark the document dirty")
	}
}

func TestDocument_FindForward(t *testing.T) {
	d := FromText("abc\ndef")
	cases := []struct {
		query string
		from  Position
		want  Position
		ok    bool
	}{
		{query: "bc", from: Position{X: 0, Y: 0}, want: Position{X: 1, Y: 0}, ok: true},
		{query: "de", from: Position{X: 0, Y: 0}, want: Position{X: 0, Y: 1}, ok: true},
		{query: "de", from: Position{X: 2, Y: 1}, ok: false},
		{query: "bc", from: Position{X: 2, Y: 0}, ok: false},
		{query: "bc", from: Position{X: 0, Y: 2}, ok: false},
		{query: "", from: Position{}, ok: false},
	}
	for _, tc := range cases {
		got, ok := d.Find(tc.query, tc.from, Forward)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Find(%q,%v,Forward): got (%v,%v), want (%v,%v)", tc.query, tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDocument_FindBackward(t *testing.T) {
	d := FromText("abc\nxx\nabc")
	cases := []struct {
		from Position
		want Position
		ok   bool
	}{
		{from: Position{X: 3, Y: 2}, want: Position{X: 1, Y: 2}, ok: true},
		{from: Position{X: 2, Y: 2}, want: Position{X: 1, Y: 0}, ok: true},
		{from: Position{X: 1, Y: 1}, want: Position{X: 1, Y: 0}, ok: true},
		{from: Position{X: 2, Y: 0}, ok: false},
	}
	for _, tc := range cases {
		got, ok := d.Find("bc", tc.from, Backward)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Find(bc,%v,Backward): got (%v,%v), want (%v,%v)", tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDocument_HighlightAllKeepsWordForEdits(t *testing.T) {
	d := FromText("ab\ncd")
	d.HighlightAll("b")
	if d.SearchWord() != "b" {
		t.Fatalf("search word: got %q", d.SearchWord())
	}

	d.Insert(Position{X: 0, Y: 1}, 'b')
	row, _ := d.Row(1)
	if got := row.Highlighting(); got[0] != HighlightMatch {
		t.Fatalf("edited row lost match highlight: %v", got)
	}

	d.Insert(Position{X: 0, Y: 2}, 'b')
	row, _ = d.Row(2)
	if got := row.Highlighting(); got[0] != HighlightMatch {
		t.Fatalf("appended row lost match highlight: %v", got)
	}

	d.HighlightAll("")
	for y := 0; y < d.LineCount(); y++ {
		row, _ := d.Row(y)
		for _, h := range row.Highlighting() {
			if h == HighlightMatch {
				t.Fatalf("row %d still highlighted after clear", y)
			}
		}
	}
}

func TestDocument_Text(t *testing.T) {
	d := FromText("a\nb\n")
	if got := d.Text(); got != "a\nb" {
		t.Fatalf("text: got %q, want %q", got, "a\nb")
	}
}
