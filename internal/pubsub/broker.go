// Package pubsub is a small in-memory broker feeding the live leaderboard
// websocket. Each topic retains only its latest message, which new
// subscribers receive immediately so a freshly connected client starts from
// the current state instead of an empty stream.
package pubsub

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// TopicLeaderboard carries verification events that change the leaderboard.
const TopicLeaderboard = "leaderboard"

type Broker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan []byte // topic -> subscriber channels
	retained    map[string][]byte        // topic -> last published message
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan []byte),
		retained:    make(map[string][]byte),
	}
}

// Subscribe registers a subscriber on a topic. The retained message, if any,
// is delivered first. The returned function unsubscribes and closes the
// channel.
func (b *Broker) Subscribe(topic string) (<-chan []byte, func()) {
	b.mu.Lock()

	ch := make(chan []byte, 16)
	if msg, ok := b.retained[topic]; ok {
		ch <- msg
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.subscribers[topic]
		for i, sub := range subs {
			if sub == ch {
				b.subscribers[topic] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
		zap.S().Debugf("unsubscribed from topic %s", topic)
	}

	zap.S().Debugf("new subscription to topic %s", topic)
	return ch, unsubscribe
}

// Publish replaces the topic's retained message and broadcasts to live
// subscribers without blocking: a slow subscriber just misses the message.
func (b *Broker) Publish(topic string, msg []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.retained[topic] = msg

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
		}
	}
}

// PublishJSON marshals v and publishes it. Marshal failures are logged and
// dropped.
func (b *Broker) PublishJSON(topic string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		zap.S().Errorf("failed to marshal message for topic %s: %v", topic, err)
		return
	}
	b.Publish(topic, data)
}
