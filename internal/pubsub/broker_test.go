package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, unsub1 := b.Subscribe("leaderboard")
	ch2, unsub2 := b.Subscribe("leaderboard")
	defer unsub1()
	defer unsub2()

	b.Publish("leaderboard", []byte("hello"))

	assert.Equal(t, []byte("hello"), recv(t, ch1))
	assert.Equal(t, []byte("hello"), recv(t, ch2))
}

func TestRetainedMessageDeliveredOnSubscribe(t *testing.T) {
	b := NewBroker()

	b.Publish("leaderboard", []byte("old"))
	b.Publish("leaderboard", []byte("latest"))

	ch, unsub := b.Subscribe("leaderboard")
	defer unsub()

	// Only the latest message is retained.
	assert.Equal(t, []byte("latest"), recv(t, ch))
	select {
	case msg := <-ch:
		t.Fatalf("unexpected extra message %q", msg)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()

	ch, unsub := b.Subscribe("leaderboard")
	unsub()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	b.Publish("leaderboard", []byte("x"))
}

func TestTopicsAreIndependent(t *testing.T) {
	b := NewBroker()

	ch, unsub := b.Subscribe("a")
	defer unsub()

	b.Publish("b", []byte("other"))

	select {
	case msg := <-ch:
		t.Fatalf("message leaked across topics: %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishJSON(t *testing.T) {
	b := NewBroker()

	ch, unsub := b.Subscribe("leaderboard")
	defer unsub()

	b.PublishJSON("leaderboard", map[string]string{"handle": "tourist"})

	msg := recv(t, ch)
	require.JSONEq(t, `{"handle":"tourist"}`, string(msg))
}
