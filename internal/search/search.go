// Package search implements the interactive scrollback search session.
//
// The session is a single-threaded Bubble Tea model: keystrokes edit a
// one-line query, every text change re-highlights matches in the target
// windows through the kitty remote control channel, and up/down step
// between matches.
package search

import (
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/martinwickman/kittysearch/internal/kitty"
	"github.com/martinwickman/kittysearch/internal/lineedit"
	"github.com/martinwickman/kittysearch/internal/motion"
)

// markDebounce bounds subprocess churn while typing: identical text is not
// re-marked more often than this.
const markDebounce = 50 * time.Millisecond

// Mode selects how the query matches scrollback text.
type Mode int

const (
	// ModeText matches the query literally.
	ModeText Mode = iota
	// ModeRegex treats the query as a regular expression.
	ModeRegex
)

// String returns the kitty marker mode name.
func (m Mode) String() string {
	if m == ModeRegex {
		return "regex"
	}
	return "text"
}

// Prompt returns the prompt glyph shown for the mode.
func (m Mode) Prompt() string {
	if m == ModeRegex {
		return "~> "
	}
	return "=> "
}

// modeFromName maps a persisted mode name back to a Mode. Unknown names
// fall back to literal text.
func modeFromName(name string) Mode {
	if name == "regex" {
		return ModeRegex
	}
	return ModeText
}

// Outcome reports how the session ended.
type Outcome int

const (
	// OutcomePending means the session is still running.
	OutcomePending Outcome = iota
	// OutcomeAccepted means the search was committed with enter.
	OutcomeAccepted
	// OutcomeCancelled means the search was aborted.
	OutcomeCancelled
)

// ValueStore is the persisted key/value store for session state.
type ValueStore interface {
	GetString(key, def string) string
	Set(key string, value any)
	Save() error
}

// Model is the Bubble Tea model for one search session.
type Model struct {
	ctrl       kitty.Controller
	store      ValueStore
	targets    []int
	errMsg     string
	scrollMark string

	input      *lineedit.Buffer
	mode       Mode
	textMarked bool

	lastMarkText string
	lastMarkTime time.Time
	now          func() time.Time

	keys    KeyMap
	width   int
	outcome Outcome
}

// New builds a session over the given control channel and target windows.
// The previous search term and mode are restored from the store; a restored
// term starts marked, so the next printable key replaces it. errMsg, when
// non-empty, is shown below the prompt. scrollMark is the path of the
// companion kitten used for match navigation.
func New(ctrl kitty.Controller, store ValueStore, targets []int, errMsg, scrollMark string) Model {
	last := store.GetString("last_search", "")
	m := Model{
		ctrl:       ctrl,
		store:      store,
		targets:    targets,
		errMsg:     errMsg,
		scrollMark: scrollMark,
		input:      lineedit.New(last),
		mode:       modeFromName(store.GetString("mode", "text")),
		textMarked: last != "",
		now:        time.Now,
		keys:       DefaultKeyMap(),
	}
	return m.mark()
}

// Outcome reports how the session ended. Meaningful once the program has
// finished.
func (m Model) Outcome() Outcome { return m.outcome }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Search")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A restored term behaves as selected for exactly one key press.
	// Bubble Tea never delivers pure modifier presses, so any key clears it.
	wasMarked := m.textMarked
	m.textMarked = false

	switch {
	case key.Matches(msg, m.keys.Accept):
		return m.finish(false)
	case key.Matches(msg, m.keys.Cancel):
		return m.finish(true)
	case key.Matches(msg, m.keys.PrevMatch):
		m.navigate(false)
		return m, nil
	case key.Matches(msg, m.keys.NextMatch):
		m.navigate(true)
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == ModeText {
			m.mode = ModeRegex
		} else {
			m.mode = ModeText
		}
		m.store.Set("mode", m.mode.String())

	case key.Matches(msg, m.keys.Home):
		m.input.Home()
	case key.Matches(msg, m.keys.End):
		m.input.End()
	case key.Matches(msg, m.keys.Left):
		m.input.Left(1)
	case key.Matches(msg, m.keys.Right):
		m.input.Right(1)
	case key.Matches(msg, m.keys.Backspace):
		m.input.Backspace(1)
	case key.Matches(msg, m.keys.Delete):
		m.input.Delete(1)
	case key.Matches(msg, m.keys.ClearLine):
		m.input.Clear()

	case key.Matches(msg, m.keys.DeleteWord):
		motion.DeleteWordBefore(m.input, motion.Whitespace)
	case key.Matches(msg, m.keys.WordLeft):
		motion.MoveWordLeft(m.input, motion.Whitespace)
	case key.Matches(msg, m.keys.WordRight):
		motion.MoveWordRight(m.input, motion.Whitespace)

	case key.Matches(msg, m.keys.DeleteToken):
		motion.DeleteWordBefore(m.input, motion.NonAlphanumeric)
	case key.Matches(msg, m.keys.TokenLeft):
		motion.MoveWordLeft(m.input, motion.NonAlphanumeric)
	case key.Matches(msg, m.keys.TokenRight):
		motion.MoveWordRight(m.input, motion.NonAlphanumeric)

	default:
		text := printableText(msg)
		if text == "" {
			return m, nil
		}
		if wasMarked {
			m.input.Clear()
		}
		m.input.InsertText(text)
	}

	return m.mark(), nil
}

// printableText returns the text a key press inserts, or "" for
// non-printable keys and alt chords.
func printableText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	default:
		return ""
	}
}

// navigate jumps every target window to the previous or next match via the
// companion scroll-mark kitten. Local state does not change.
func (m Model) navigate(forward bool) {
	for _, id := range m.targets {
		_ = kitty.ScrollToMark(m.ctrl, id, forward, m.scrollMark)
	}
}

// mark refreshes the match highlight in every target window, debounced so
// fast typing does not spawn a subprocess per keystroke. An empty query
// removes the highlight instead.
func (m Model) mark() Model {
	if len(m.targets) == 0 {
		return m
	}

	text := m.input.String()
	now := m.now()
	if text == m.lastMarkText && now.Sub(m.lastMarkTime) < markDebounce {
		return m
	}
	m.lastMarkText = text
	m.lastMarkTime = now

	if text == "" {
		m.removeMark()
		return m
	}

	mt := matchType(text, m.mode)
	for _, id := range m.targets {
		if err := kitty.CreateMarker(m.ctrl, id, mt, text); err != nil {
			// A bad pattern in regex mode makes create-marker fail; fall
			// back to clearing any stale highlight.
			m.removeMark()
			break
		}
	}
	return m
}

func (m Model) removeMark() {
	for _, id := range m.targets {
		_ = kitty.RemoveMarker(m.ctrl, id)
	}
}

// matchType builds the kitty marker type token. Smart case: an entirely
// lowercase query matches case-insensitively.
func matchType(text string, mode Mode) string {
	if isLower(text) {
		return "i" + mode.String()
	}
	return mode.String()
}

// isLower reports whether the text has at least one cased character and no
// upper- or title-case ones. A query without letters is not lowercase, so
// all-digit searches stay case-sensitive.
func isLower(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// finish persists session state, clears highlights and quits. Cancelling
// additionally scrolls every target back to the bottom, undoing any
// navigation the search did.
func (m Model) finish(cancelled bool) (tea.Model, tea.Cmd) {
	m.store.Set("last_search", m.input.String())
	m.store.Set("mode", m.mode.String())
	_ = m.store.Save()

	m.removeMark()

	if cancelled {
		for _, id := range m.targets {
			_ = kitty.ScrollToEnd(m.ctrl, id)
		}
		m.outcome = OutcomeCancelled
	} else {
		m.outcome = OutcomeAccepted
	}
	return m, tea.Quit
}
