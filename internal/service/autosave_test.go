package service

import (
	"sync"
	"testing"
	"time"

	"manasfit-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestAutoSaver_CollapsesBursts(t *testing.T) {
	var mu sync.Mutex
	var fired []dto.AutoSaveMessage
	saver := newAutoSaver(40*time.Millisecond, func(req dto.AutoSaveMessage) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, req)
	})
	defer saver.Stop()

	for _, id := range []string{"a", "b", "c", "d"} {
		saver.Schedule(dto.AutoSaveMessage{SessionId: id})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, fired, 1)
	assert.Equal(t, "d", fired[0].SessionId)
}

func TestAutoSaver_StaleTimerKeepsNewRequestDebounced(t *testing.T) {
	fired := make(chan dto.AutoSaveMessage, 2)
	saver := newAutoSaver(50*time.Millisecond, func(req dto.AutoSaveMessage) { fired <- req })
	defer saver.Stop()

	saver.Schedule(dto.AutoSaveMessage{SessionId: "a"})
	saver.mu.Lock()
	first := saver.gen
	saver.mu.Unlock()
	saver.Schedule(dto.AutoSaveMessage{SessionId: "b"})

	// The first timer fired just before it was replaced.
	saver.run(first)

	select {
	case req := <-fired:
		t.Fatalf("request %q fired before its delay", req.SessionId)
	default:
	}

	select {
	case req := <-fired:
		assert.Equal(t, "b", req.SessionId)
	case <-time.After(time.Second):
		t.Fatal("auto-save never fired")
	}
}

func TestAutoSaver_StopCancelsPending(t *testing.T) {
	called := make(chan struct{}, 1)
	saver := newAutoSaver(20*time.Millisecond, func(dto.AutoSaveMessage) { called <- struct{}{} })

	saver.Schedule(dto.AutoSaveMessage{SessionId: "a"})
	saver.Stop()
	saver.Schedule(dto.AutoSaveMessage{SessionId: "b"})

	select {
	case <-called:
		t.Fatal("auto-save fired after Stop")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestAutoSaver_DisabledWithoutDelay(t *testing.T) {
	saver := newAutoSaver(0, func(dto.AutoSaveMessage) { t.Fatal("should not fire") })
	saver.Schedule(dto.AutoSaveMessage{SessionId: "a"})
	time.Sleep(10 * time.Millisecond)
}

func TestKeyedMutex_ReleasesKeys(t *testing.T) {
	k := newKeyedMutex()
	unlock := k.Lock("s1")
	assert.Len(t, k.locks, 1)
	unlock()
	assert.Empty(t, k.locks)
}
