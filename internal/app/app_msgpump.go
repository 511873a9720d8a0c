package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/safego"
)

const externalMsgBuffer = 64

// SetMsgSender connects messages raised outside the Bubbletea loop, such
// as store change notifications, to the running program.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil {
		return
	}
	if a.externalMsgs == nil {
		a.externalMsgs = make(chan tea.Msg, externalMsgBuffer)
	}
	a.externalOnce.Do(func() {
		a.externalSender = send
		safego.Go("external-msgs", a.drainExternalMsgs)
	})
}

func (a *App) enqueueExternalMsg(msg tea.Msg) {
	if msg == nil || a.externalMsgs == nil {
		return
	}
	select {
	case a.externalMsgs <- msg:
	default:
		a.logExternalDrop()
	}
}

func (a *App) drainExternalMsgs() {
	for {
		select {
		case <-a.done():
			return
		case msg := <-a.externalMsgs:
			if msg == nil || a.externalSender == nil {
				continue
			}
			a.externalSender(msg)
		}
	}
}

func (a *App) done() <-chan struct{} {
	if a.ctx == nil {
		return nil
	}
	return a.ctx.Done()
}

func (a *App) logExternalDrop() {
	now := time.Now().UnixNano()
	last := a.externalDropLastLog.Load()
	if now-last < int64(time.Second) {
		return
	}
	if !a.externalDropLastLog.CompareAndSwap(last, now) {
		return
	}
	logging.Warn("External message queue full; dropping store notifications")
}
