package kitty

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Window is one kitty window inside a tab.
type Window struct {
	ID        int  `json:"id"`
	IsFocused bool `json:"is_focused"`
}

// Tab groups the windows of one kitty tab.
type Tab struct {
	Windows []Window `json:"windows"`
}

// OSWindow is one top-level kitty OS window.
type OSWindow struct {
	Tabs []Tab `json:"tabs"`
}

// ErrWindowNotFound reports that a window id is absent from the ls tree.
var ErrWindowNotFound = errors.New("window id not found")

// ListWindows enumerates the full window tree via "kitty @ ls".
func ListWindows(c Controller) ([]OSWindow, error) {
	out, err := c.Output("ls")
	if err != nil {
		return nil, err
	}

	var tree []OSWindow
	if err := json.Unmarshal(out, &tree); err != nil {
		return nil, fmt.Errorf("parsing kitty @ ls output: %w", err)
	}
	return tree, nil
}

// TabTargets returns the ids of every non-focused window in the tab
// containing windowID. The focused window is excluded: that is the one the
// kitten itself runs in.
func TabTargets(tree []OSWindow, windowID int) ([]int, error) {
	tab := findTab(tree, windowID)
	if tab == nil {
		return nil, ErrWindowNotFound
	}

	var ids []int
	for _, w := range tab.Windows {
		if !w.IsFocused {
			ids = append(ids, w.ID)
		}
	}
	return ids, nil
}

func findTab(tree []OSWindow, windowID int) *Tab {
	for i := range tree {
		for j := range tree[i].Tabs {
			for _, w := range tree[i].Tabs[j].Windows {
				if w.ID == windowID {
					return &tree[i].Tabs[j]
				}
			}
		}
	}
	return nil
}
