package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/martinwickman/kittysearch/internal/cache"
	"github.com/martinwickman/kittysearch/internal/kitty"
	"github.com/martinwickman/kittysearch/internal/search"
)

func main() {
	scrollMark := flag.String("scroll-mark", defaultScrollMark(), "path to the scroll-mark kitten used for match navigation")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kittysearch must be run from a terminal")
		os.Exit(1)
	}

	ctrl := kitty.Remote{}

	// Shrink the kitten's own window down to the input row.
	_ = kitty.ResizeSelf(ctrl)

	targets, errMsg := resolveTargets(ctrl, flag.Args())

	store, err := cache.New("search")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(search.New(ctrl, store, targets, errMsg, *scrollMark))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(search.Model); ok && m.Outcome() == search.OutcomeCancelled {
		os.Exit(1)
	}
}

// resolveTargets maps the kitten's positional arguments to target window
// ids: the launching window's id, optionally widened to every non-focused
// window of its tab. Failures degrade to an empty target set plus a message
// for the UI; the search box still runs.
func resolveTargets(ctrl kitty.Controller, args []string) (ids []int, errMsg string) {
	if len(args) < 1 {
		return nil, "Error: window id must be provided as the first argument."
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 {
		return nil, "Error: window id must be provided as the first argument."
	}

	if !kitty.InsideKitty() {
		return nil, "Error: kitty remote control is not available here."
	}

	if len(args) > 1 && args[1] == "--all-windows" {
		tree, err := kitty.ListWindows(ctrl)
		if err != nil {
			return nil, "Error: could not list kitty windows."
		}
		ids, err = kitty.TabTargets(tree, id)
		if err != nil {
			return nil, "Error: could not find the window id provided."
		}
		return ids, ""
	}

	return []int{id}, ""
}

// defaultScrollMark locates the companion scroll-mark kitten in the kitty
// config directory.
func defaultScrollMark() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scroll-mark.py"
	}
	return filepath.Join(dir, "kitty", "scroll-mark.py")
}
