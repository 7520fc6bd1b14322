//go:build !windows

package main

import (
	"os"
	"syscall"
)

// buildSignals abort a running build. SIGHUP covers a closed terminal.
var buildSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
