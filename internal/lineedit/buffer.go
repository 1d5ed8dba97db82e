// Package lineedit implements the single-line input buffer backing the
// search prompt.
package lineedit

import "strings"

// Buffer holds one line of input text and a cursor position. The cursor is
// a rune offset in [0, Len()] and the text never contains a newline. All
// mutations clamp to those bounds.
type Buffer struct {
	text   []rune
	cursor int
}

// New returns a buffer seeded with text, cursor at the end.
func New(text string) *Buffer {
	b := &Buffer{}
	b.InsertText(text)
	return b
}

// String returns the buffer contents.
func (b *Buffer) String() string { return string(b.text) }

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.text) }

// Cursor returns the rune offset of the cursor.
func (b *Buffer) Cursor() int { return b.cursor }

// SplitAtCursor returns the text before and after the cursor.
func (b *Buffer) SplitAtCursor() (before, after string) {
	return string(b.text[:b.cursor]), string(b.text[b.cursor:])
}

// InsertText inserts s at the cursor and moves the cursor past it.
// Newlines are stripped: the buffer is strictly single-line.
func (b *Buffer) InsertText(s string) {
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	if s == "" {
		return
	}
	ins := []rune(s)
	tail := append([]rune(nil), b.text[b.cursor:]...)
	b.text = append(append(b.text[:b.cursor], ins...), tail...)
	b.cursor += len(ins)
}

// Backspace removes up to n runes before the cursor.
func (b *Buffer) Backspace(n int) {
	if n > b.cursor {
		n = b.cursor
	}
	if n <= 0 {
		return
	}
	b.text = append(b.text[:b.cursor-n], b.text[b.cursor:]...)
	b.cursor -= n
}

// Delete removes up to n runes after the cursor.
func (b *Buffer) Delete(n int) {
	if n > len(b.text)-b.cursor {
		n = len(b.text) - b.cursor
	}
	if n <= 0 {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+n:]...)
}

// Left moves the cursor up to n runes left.
func (b *Buffer) Left(n int) {
	if n <= 0 {
		return
	}
	b.cursor -= n
	if b.cursor < 0 {
		b.cursor = 0
	}
}

// Right moves the cursor up to n runes right.
func (b *Buffer) Right(n int) {
	if n <= 0 {
		return
	}
	b.cursor += n
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}

// Home moves the cursor to the start of the line.
func (b *Buffer) Home() { b.cursor = 0 }

// End moves the cursor past the last rune.
func (b *Buffer) End() { b.cursor = len(b.text) }

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}
