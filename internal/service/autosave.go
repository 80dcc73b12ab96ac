package service

import (
	"sync"
	"time"

	"manasfit-be/internal/dto"
)

// autoSaver keeps at most one pending save request. Scheduling again
// replaces the request and restarts the delay.
type autoSaver struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending *dto.AutoSaveMessage
	fire    func(dto.AutoSaveMessage)
	stopped bool
	// gen identifies the live timer; a timer that fired before being
	// replaced sees a newer gen and does nothing.
	gen uint64
}

func newAutoSaver(delay time.Duration, fire func(dto.AutoSaveMessage)) *autoSaver {
	return &autoSaver{delay: delay, fire: fire}
}

func (a *autoSaver) Schedule(req dto.AutoSaveMessage) {
	if a == nil || a.delay <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.pending = &req
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.delay, func() { a.run(gen) })
}

func (a *autoSaver) run(gen uint64) {
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return
	}
	req := a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()

	if req != nil {
		a.fire(*req)
	}
}

// Stop cancels the pending request. Later Schedule calls are ignored.
func (a *autoSaver) Stop() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	a.pending = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
