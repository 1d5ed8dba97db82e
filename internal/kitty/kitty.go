// Package kitty drives the kitty terminal through its remote control
// protocol ("kitty @ ...").
package kitty

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Controller is the remote control channel to the host terminal.
type Controller interface {
	// Invoke runs a remote control command, discarding its output.
	Invoke(args ...string) error
	// Output runs a remote control command and returns its stdout.
	Output(args ...string) ([]byte, error)
}

// Remote is a Controller that shells out to the kitty binary.
type Remote struct{}

var _ Controller = Remote{}

// Invoke runs "kitty @ <args...>".
func (Remote) Invoke(args ...string) error {
	cmd := exec.Command("kitty", append([]string{"@"}, args...)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("kitty @ %s failed: %s", args[0], strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("kitty @ %s failed: %w", args[0], err)
	}
	return nil
}

// Output runs "kitty @ <args...>" and returns its stdout.
func (Remote) Output(args ...string) ([]byte, error) {
	out, err := exec.Command("kitty", append([]string{"@"}, args...)...).Output()
	if err != nil {
		return nil, fmt.Errorf("kitty @ %s failed: %w", args[0], err)
	}
	return out, nil
}

// MatchArg returns the --match selector for a window id.
func MatchArg(windowID int) string { return fmt.Sprintf("--match=id:%d", windowID) }

// markerGroup is the marker group used for search highlights. kitty styles
// groups 1-3 differently; the overlay only needs one.
const markerGroup = "1"

// CreateMarker highlights every occurrence of text in the given window.
// matchType is a kitty marker type: "text", "itext", "regex" or "iregex".
func CreateMarker(c Controller, windowID int, matchType, text string) error {
	return c.Invoke("create-marker", MatchArg(windowID), matchType, markerGroup, text)
}

// RemoveMarker clears search highlights from the given window.
func RemoveMarker(c Controller, windowID int) error {
	return c.Invoke("remove-marker", MatchArg(windowID))
}

// ScrollToEnd scrolls the given window back to the bottom of its scrollback.
func ScrollToEnd(c Controller, windowID int) error {
	return c.Invoke("scroll-window", MatchArg(windowID), "end")
}

// ScrollToMark runs the companion scroll-mark kitten in the given window,
// jumping to the previous marker, or the next one when forward is set.
func ScrollToMark(c Controller, windowID int, forward bool, helper string) error {
	args := []string{"kitten", MatchArg(windowID), helper}
	if forward {
		args = append(args, "next")
	}
	return c.Invoke(args...)
}

// ResizeSelf shrinks the kitten's own window down to the input row.
func ResizeSelf(c Controller) error {
	return c.Invoke("resize-window", "--self", "--axis=vertical", "--increment", "-100")
}
