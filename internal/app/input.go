package app

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalInput is an Input for terminal runs: the display is always open and
// an exit is requested once SIGINT or SIGTERM arrives.
type SignalInput struct {
	ch   chan os.Signal
	done bool
}

// NewSignalInput starts listening for termination signals.
func NewSignalInput() *SignalInput {
	in := &SignalInput{ch: make(chan os.Signal, 1)}
	signal.Notify(in.ch, syscall.SIGINT, syscall.SIGTERM)
	return in
}

// IsOpen always reports true; a terminal has no window to close.
func (s *SignalInput) IsOpen() bool { return true }

// ExitRequested reports whether a termination signal has been received.
func (s *SignalInput) ExitRequested() bool {
	if s.done {
		return true
	}
	select {
	case <-s.ch:
		s.done = true
	default:
	}
	return s.done
}

// Stop releases the signal subscription.
func (s *SignalInput) Stop() { signal.Stop(s.ch) }
