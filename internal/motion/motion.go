// Package motion computes word and token movements over a line buffer.
//
// Two delimiter classes exist. Whitespace treats every contiguous non-space
// run as one unit, like an editor's whole-word motions. NonAlphanumeric
// treats alphanumeric runs and punctuation runs as separate units, giving
// finer sub-word navigation.
package motion

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/martinwickman/kittysearch/internal/lineedit"
	"github.com/martinwickman/kittysearch/internal/textspan"
)

// Class selects which character runs bound a unit for a motion.
type Class int

const (
	// Whitespace delimits units by whitespace runs.
	Whitespace Class = iota
	// NonAlphanumeric delimits units by runs of characters that are neither
	// letters, digits nor underscore.
	NonAlphanumeric
)

// [^\p{L}\p{N}_] is the complement of a word character under unicode
// matching, so token motions agree across scripts.
var (
	spaceEnd      = regexp.MustCompile(`\s+$`)
	spaceStart    = regexp.MustCompile(`^\s+`)
	nonAlnum      = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	nonAlnumEnd   = regexp.MustCompile(`[^\p{L}\p{N}_]+$`)
	nonAlnumStart = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
)

// DeleteWordBefore deletes the unit immediately before the cursor.
// An empty run-up to the cursor is a no-op.
func DeleteWordBefore(b *lineedit.Buffer, class Class) {
	before, _ := b.SplitAtCursor()
	b.Backspace(extentBefore(before, class))
}

// MoveWordLeft moves the cursor to the boundary DeleteWordBefore would
// delete to, without changing the text.
func MoveWordLeft(b *lineedit.Buffer, class Class) {
	before, _ := b.SplitAtCursor()
	b.Left(extentBefore(before, class))
}

// MoveWordRight moves the cursor right past the next unit, or to the end
// of the buffer when no further boundary exists.
func MoveWordRight(b *lineedit.Buffer, class Class) {
	_, after := b.SplitAtCursor()
	b.Right(extentAfter(after, class))
}

// extentBefore returns how many runes lie between the cursor and the start
// of the previous unit in before.
func extentBefore(before string, class Class) int {
	total := utf8.RuneCountInString(before)

	if class == Whitespace {
		// Skip the whitespace run touching the cursor, then land on the
		// last literal space before it. No space means start of line.
		head := before
		if sp, err := textspan.Find(before, spaceEnd, true); err == nil {
			head = before[:sp.Start]
		} else if len(before) > 0 {
			head = before[:len(before)-1]
		}
		cut := strings.LastIndex(head, " ")
		if cut < 0 {
			return total
		}
		return utf8.RuneCountInString(before[cut:])
	}

	// A punctuation run touching the cursor is consumed as a unit of its own.
	if sp, err := textspan.Find(before, nonAlnumEnd, true); err == nil {
		return utf8.RuneCountInString(before[sp.Start:])
	}
	// Otherwise remove the alphanumeric run behind the previous punctuation
	// run, skipping exactly one boundary character so the punctuation stays.
	if sp, err := textspan.Find(before, nonAlnum, true); err == nil {
		return utf8.RuneCountInString(before[sp.Start:]) - 1
	}
	return total
}

// extentAfter returns how many runes the cursor moves right to pass the
// next unit in after.
func extentAfter(after string, class Class) int {
	total := utf8.RuneCountInString(after)

	if class == Whitespace {
		// Skip the whitespace run at the cursor, then land just past the
		// next literal space. No space means end of line.
		end := 0
		if sp, err := textspan.Find(after, spaceStart, false); err == nil {
			end = sp.End
		}
		idx := strings.Index(after[end:], " ")
		if idx < 0 {
			return total
		}
		return utf8.RuneCountInString(after[end:][:idx]) + 1
	}

	// A punctuation run at the cursor is crossed as a unit of its own.
	if sp, err := textspan.Find(after, nonAlnumStart, false); err == nil && sp.End > 0 {
		return utf8.RuneCountInString(after[:sp.End])
	}
	// Otherwise stop one rune short of the next punctuation run.
	if sp, err := textspan.Find(after, nonAlnum, false); err == nil {
		return utf8.RuneCountInString(after[:sp.End]) - 1
	}
	return total
}
