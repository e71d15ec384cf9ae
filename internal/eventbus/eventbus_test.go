package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan SelectionChangedEvent, 1)
	b.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		if ev, ok := e.(SelectionChangedEvent); ok {
			got <- ev
		}
	})

	b.Publish(SelectionChangedEvent{Indexes: []int{1, 2}})

	select {
	case ev := <-got:
		assert.Equal(t, []int{1, 2}, ev.Indexes)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var scans, errs atomic.Int32
	b.Subscribe(EventScanRequested, func(DomainEvent) { scans.Add(1) })
	b.Subscribe(EventError, func(DomainEvent) { errs.Add(1) })

	b.Publish(ScanRequestedEvent{Dir: "/tmp"})
	b.Publish(ScanRequestedEvent{Dir: "/tmp"})

	require.Eventually(t, func() bool { return scans.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, errs.Load())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var kept, dropped atomic.Int32
	b.Subscribe(EventScanStarted, func(DomainEvent) { kept.Add(1) })
	unsubscribe := b.Subscribe(EventScanStarted, func(DomainEvent) { dropped.Add(1) })
	unsubscribe()

	b.Publish(ScanStartedEvent{Dir: "."})

	require.Eventually(t, func() bool { return kept.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, dropped.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { calls.Add(1) })

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ErrorEvent{Message: "second"})

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	var calls atomic.Int32
	b.Subscribe(EventConfigSaved, func(DomainEvent) { calls.Add(1) })
	b.Close()
	b.Close()

	assert.NotPanics(t, func() { b.Publish(ConfigSavedEvent{}) })
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
