//go:build windows

package main

import "os"

// buildSignals abort a running build. Only os.Interrupt is delivered on
// Windows.
var buildSignals = []os.Signal{os.Interrupt}
