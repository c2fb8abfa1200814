package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/OlaoluwaM/scaffy/pkg/constants"
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// SignalError is the cancellation cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received " + e.Signal.String()
}

// Number returns the signal number, or 0 when it is not a POSIX signal.
func (e *SignalError) Number() int {
	if sig, ok := e.Signal.(syscall.Signal); ok {
		return int(sig)
	}
	return 0
}

// WithSignals returns a context cancelled with a *SignalError on SIGINT or
// SIGTERM. Call stop to release the signal handler.
func WithSignals(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancelCause(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigs:
			cancel(&SignalError{Signal: sig})
		case <-done:
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		close(done)
		cancel(nil)
	}
}

// ExitCode maps the outcome of a command to a process exit code.
func ExitCode(ctx context.Context, err error) int {
	var sigErr *SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		return constants.ExitSignalBase + sigErr.Number()
	}

	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if isUnknownCommand(err) {
		return constants.ExitUnknownCommand
	}
	return constants.ExitGeneral
}

// isUnknownCommand recognizes cobra's error for an unrecognized subcommand.
func isUnknownCommand(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command ")
}
