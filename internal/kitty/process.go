package kitty

import (
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// InsideKitty reports whether this process was launched by kitty. The
// environment variables are the fast path; the process tree walk covers
// wrappers that scrub the environment. The walk is bounded so a re-parented
// process cannot loop.
func InsideKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("KITTY_LISTEN_ON") != "" {
		return true
	}

	pid := os.Getppid()
	for depth := 0; depth < 10 && pid > 1; depth++ {
		proc, err := ps.FindProcess(pid)
		if err != nil || proc == nil {
			return false
		}
		if strings.Contains(strings.ToLower(proc.Executable()), "kitty") {
			return true
		}
		pid = proc.PPid()
	}
	return false
}
