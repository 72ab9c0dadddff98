// Package ui routes long output (chiefly help text) to the terminal,
// through $PAGER or through the built-in interactive viewer.
//
// SECURITY NOTE: the pager path intentionally executes the command named
// by $PAGER. This is standard behavior for CLI tools (similar to git,
// less, man) and requires local access to exploit.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	pagerDisabled bool
	pagerMu       sync.RWMutex
)

// DisablePager disables paging globally (used by a --no-pager flag).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

func isPagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

// isBypassPager returns true if the pager command means "bypass pager".
func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled -> direct output
//  2. stdout not a TTY -> direct output
//  3. $PAGER env var -> uses env pager, "cat" bypasses
//  4. Default: the built-in interactive viewer
func Pager(title, content string) {
	if isPagerDisabled() {
		fmt.Print(content)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(content)
		return
	}

	if envPager := os.Getenv("PAGER"); envPager != "" {
		if isBypassPager(envPager) {
			fmt.Print(content)
			return
		}
		runPagerCmd(envPager, content)
		return
	}

	if err := Browse(title, content); err != nil {
		fmt.Print(content)
	}
}

// runPagerCmd parses a pager command string (e.g., "less -R") and
// executes it, falling back to direct output on error.
func runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		fmt.Print(content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Print(content)
	}
}
