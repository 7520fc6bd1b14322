package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled when one of buildSignals is
// received, so an interrupted build stops scheduling posts and returns.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, buildSignals...)
}
