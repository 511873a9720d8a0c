package safego

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRun_NoPanic(t *testing.T) {
	var called bool
	Run("test", func() {
		called = true
	})
	if !called {
		t.Fatalf("expected function to be called")
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	Run("test-panic", func() {
		panic("test panic")
	})
}

func TestRun_CallsPanicHandler(t *testing.T) {
	var (
		mu           sync.Mutex
		handlerName  string
		handlerValue any
	)

	SetPanicHandler(func(name string, recovered any, stack []byte) {
		mu.Lock()
		handlerName = name
		handlerValue = recovered
		mu.Unlock()
	})
	defer SetPanicHandler(nil)

	Run("store-watcher", func() {
		panic("oops")
	})

	mu.Lock()
	defer mu.Unlock()
	if handlerName != "store-watcher" {
		t.Fatalf("expected name store-watcher, got %q", handlerName)
	}
	if handlerValue != "oops" {
		t.Fatalf("expected recovered value oops, got %v", handlerValue)
	}
}

func TestRun_DefaultName(t *testing.T) {
	var got string
	SetPanicHandler(func(name string, _ any, _ []byte) { got = name })
	defer SetPanicHandler(nil)

	Run("", func() { panic("x") })
	if got != "goroutine" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestRun_HandlerPanicIsContained(t *testing.T) {
	SetPanicHandler(func(string, any, []byte) { panic("handler") })
	defer SetPanicHandler(nil)

	Run("nested", func() { panic("first") })
}

func TestGoErr_RunsInBackground(t *testing.T) {
	done := make(chan struct{})
	GoErr("worker", func() error {
		defer close(done)
		return context.Canceled
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected goroutine to run")
	}
}

func TestGoErr_RecoversPanic(t *testing.T) {
	recovered := make(chan string, 1)
	SetPanicHandler(func(name string, _ any, _ []byte) { recovered <- name })
	defer SetPanicHandler(nil)

	GoErr("boom", func() error {
		panic(errors.New("bad"))
	})

	select {
	case name := <-recovered:
		if name != "boom" {
			t.Fatalf("expected boom, got %q", name)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected panic handler to fire")
	}
}
