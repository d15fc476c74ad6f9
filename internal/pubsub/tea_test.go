package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(LinkedEvent, "Student Ada added to course Calculus")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "Student Ada added to course Calculus", event.Payload)
	require.Equal(t, LinkedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := ListenCmd(ctx, make(chan Event[string]))()

	require.Nil(t, msg, "should return nil when context cancelled")
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	msg := ListenCmd(context.Background(), ch)()

	require.Nil(t, msg, "should return nil when channel closed")
}

func TestContinuousListener_ReceivesSequentialEvents(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener[int](ctx, broker)
	broker.Publish(CreatedEvent, 1)
	broker.Publish(LinkedEvent, 2)

	first, ok := listener.Listen()().(Event[int])
	require.True(t, ok)
	require.Equal(t, 1, first.Payload)

	second, ok := listener.Listen()().(Event[int])
	require.True(t, ok)
	require.Equal(t, 2, second.Payload)
	require.Equal(t, LinkedEvent, second.Type)
}
