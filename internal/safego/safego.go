package safego

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/daytone/daytone/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// Run executes fn and converts panics into logged errors.
// Runtime-fatal errors (concurrent map writes) are not recoverable.
func Run(name string, fn func()) {
	if name == "" {
		name = "goroutine"
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		logging.Error("panic in %s: %v\n%s", name, r, stack)
		panicHandlerMu.RLock()
		handler := panicHandler
		panicHandlerMu.RUnlock()
		if handler != nil {
			func() {
				defer func() { _ = recover() }()
				handler(name, r, stack)
			}()
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// GoErr runs fn in a new goroutine with panic recovery and logs a returned
// error. Context cancellation is treated as a clean exit.
func GoErr(name string, fn func() error) {
	Go(name, func() {
		if err := fn(); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error("%s exited: %v", name, err)
		}
	})
}
