package motion

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

var (
	genText  = rapid.StringOfN(rapid.RuneFrom([]rune("ab  --._/αβ9")), 0, 24, -1)
	genClass = rapid.SampledFrom([]Class{Whitespace, NonAlphanumeric})
)

// Moving left and then right again never overshoots the starting position,
// except that move-right clamps to the end of the buffer when no further
// boundary exists.
func TestMoveLeftThenRightNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText.Draw(t, "text")
		class := genClass.Draw(t, "class")
		start := rapid.IntRange(0, utf8.RuneCountInString(text)).Draw(t, "start")

		b := newBuf(text, start)
		MoveWordLeft(b, class)
		if b.Cursor() < 0 || b.Cursor() > start {
			t.Fatalf("move left from %d landed at %d", start, b.Cursor())
		}

		MoveWordRight(b, class)
		if b.Cursor() > start && b.Cursor() != b.Len() {
			t.Fatalf("left then right from %d overshot to %d (len %d)", start, b.Cursor(), b.Len())
		}
		if b.Cursor() < 0 || b.Cursor() > b.Len() {
			t.Fatalf("cursor %d out of bounds (len %d)", b.Cursor(), b.Len())
		}
	})
}

// Deletion and move-left share one boundary computation: the number of
// runes deleted always equals the distance the cursor would have moved,
// and the text after the cursor is untouched.
func TestDeleteMatchesMoveLeftExtent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText.Draw(t, "text")
		class := genClass.Draw(t, "class")
		start := rapid.IntRange(0, utf8.RuneCountInString(text)).Draw(t, "start")

		moved := newBuf(text, start)
		MoveWordLeft(moved, class)
		dist := start - moved.Cursor()

		deleted := newBuf(text, start)
		_, wantAfter := deleted.SplitAtCursor()
		DeleteWordBefore(deleted, class)

		if got := utf8.RuneCountInString(text) - deleted.Len(); got != dist {
			t.Fatalf("deleted %d runes, move-left distance is %d", got, dist)
		}
		if _, after := deleted.SplitAtCursor(); after != wantAfter {
			t.Fatalf("suffix changed from %q to %q", wantAfter, after)
		}
	})
}
