package motion

import (
	"testing"

	"github.com/martinwickman/kittysearch/internal/lineedit"
)

// newBuf returns a buffer over text with the cursor at the given rune
// offset, or at the end when cursor is -1.
func newBuf(text string, cursor int) *lineedit.Buffer {
	b := lineedit.New(text)
	if cursor >= 0 {
		b.Home()
		b.Right(cursor)
	}
	return b
}

func TestDeleteWordBefore(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int // -1 = end
		class      Class
		wantText   string
		wantCursor int
	}{
		{"whitespace deletes previous word and its space", "hello world", -1, Whitespace, "hello", 5},
		{"whitespace consumes trailing space run first", "foo bar ", -1, Whitespace, "foo", 3},
		{"whitespace deletes to line start without spaces", "foo ", -1, Whitespace, "", 0},
		{"whitespace keeps earlier words", "a b c", -1, Whitespace, "a b", 3},
		{"whitespace mid buffer keeps suffix", "hello world", 5, Whitespace, " world", 0},
		{"whitespace empty before cursor is a no-op", "", -1, Whitespace, "", 0},
		{"token deletes trailing alphanumeric run", "foo-bar", -1, NonAlphanumeric, "foo-", 4},
		{"token deletes punctuation run at cursor", "foo-", -1, NonAlphanumeric, "foo", 3},
		{"token without boundary deletes to line start", "foo", -1, NonAlphanumeric, "", 0},
		{"token keeps one punctuation character", "foo--bar", -1, NonAlphanumeric, "foo-", 4},
		{"token behind leading punctuation", "--foo", -1, NonAlphanumeric, "-", 1},
		{"token empty before cursor is a no-op", "", -1, NonAlphanumeric, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuf(tt.text, tt.cursor)
			DeleteWordBefore(b, tt.class)
			if b.String() != tt.wantText {
				t.Errorf("text = %q, want %q", b.String(), tt.wantText)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.wantCursor)
			}
		})
	}
}

func TestMoveWordLeft(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		class  Class
		want   int
	}{
		{"whitespace lands on previous space", "hello world", -1, Whitespace, 5},
		{"whitespace at start is a no-op", "hello world", 0, Whitespace, 0},
		{"token stops after punctuation", "foo-bar", -1, NonAlphanumeric, 4},
		{"token crosses punctuation run", "foo-bar", 4, NonAlphanumeric, 3},
		{"token reaches line start", "foo", -1, NonAlphanumeric, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuf(tt.text, tt.cursor)
			MoveWordLeft(b, tt.class)
			if b.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.want)
			}
			if b.String() != tt.text {
				t.Errorf("text changed to %q", b.String())
			}
		})
	}
}

func TestMoveWordRight(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		class  Class
		want   int
	}{
		{"whitespace jumps past next space", "hello world", 0, Whitespace, 6},
		{"whitespace without further space goes to end", "hello world", 6, Whitespace, 11},
		{"whitespace at end is a no-op", "hello world", -1, Whitespace, 11},
		{"whitespace skips leading space run", "  foo bar", 0, Whitespace, 4},
		{"token stops before punctuation", "foo-bar", 0, NonAlphanumeric, 3},
		{"token crosses punctuation run", "foo-bar", 3, NonAlphanumeric, 4},
		{"token without boundary goes to end", "foo-bar", 4, NonAlphanumeric, 7},
		{"token at end is a no-op", "foo-bar", -1, NonAlphanumeric, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuf(tt.text, tt.cursor)
			MoveWordRight(b, tt.class)
			if b.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.want)
			}
		})
	}
}

func TestMotionsIdempotentAtBoundaries(t *testing.T) {
	for _, class := range []Class{Whitespace, NonAlphanumeric} {
		b := newBuf("one two-three", 0)
		MoveWordLeft(b, class)
		MoveWordLeft(b, class)
		if b.Cursor() != 0 {
			t.Errorf("class %d: cursor = %d after repeated left at start, want 0", class, b.Cursor())
		}

		b = newBuf("one two-three", -1)
		MoveWordRight(b, class)
		MoveWordRight(b, class)
		if b.Cursor() != b.Len() {
			t.Errorf("class %d: cursor = %d after repeated right at end, want %d", class, b.Cursor(), b.Len())
		}
	}
}
