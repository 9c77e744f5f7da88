package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/pkg/eventbus"
)

type createdEvent struct {
	ID string
}

func newTestBus() eventbus.EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(log)
}

func TestPublish_InvokesMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	var got []string
	bus.Subscribe(func(e createdEvent) {
		got = append(got, e.ID)
	})

	bus.Publish(createdEvent{ID: "i-1"})
	bus.Publish(createdEvent{ID: "i-2"})

	require.Equal(t, []string{"i-1", "i-2"}, got)
}

func TestPublish_SkipsNonMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.Subscribe(func(s string) { called = true })

	bus.Publish(createdEvent{ID: "i-1"})
	require.False(t, called)
}

func TestPublish_RecoversFromHandlerPanic(t *testing.T) {
	bus := newTestBus()

	bus.Subscribe(func(e createdEvent) { panic("boom") })

	require.NotPanics(t, func() {
		bus.Publish(createdEvent{ID: "i-1"})
	})
}

func TestUnsubscribe(t *testing.T) {
	bus := newTestBus()

	handler := func(e createdEvent) {}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	require.Equal(t, 0, bus.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		require.True(t, eventbus.MatchSignature(func(e createdEvent) {}, []interface{}{createdEvent{}}))
	})
	t.Run("arity mismatch", func(t *testing.T) {
		require.False(t, eventbus.MatchSignature(func(e createdEvent, n int) {}, []interface{}{createdEvent{}}))
	})
	t.Run("not a function", func(t *testing.T) {
		require.False(t, eventbus.MatchSignature(42, []interface{}{createdEvent{}}))
	})
}
