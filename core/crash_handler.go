// Package core holds process-wide panic handling for the terminal UI
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashRestore registers the terminal restore run before a crash report, typically screen.Fini
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	// Restore at most once even if several goroutines crash together
	crashRestore = nil
	crashMu.Unlock()

	if restore != nil {
		restore()
	}

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Recover is deferred at the top of main and of every goroutine touching the screen
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
