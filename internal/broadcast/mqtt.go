// Package broadcast mirrors published mood styles onto an MQTT topic so
// lights and other displays can follow the mood.
package broadcast

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/iburimskiy/mood-ambience/internal/mood"
)

// Publisher is the part of mqtt.Client the broadcaster uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Message is the JSON document published for each style.
type Message struct {
	mood.Style
	Vars map[string]string `json:"vars"`
	At   time.Time         `json:"at"`
}

// AckTimeout bounds how long the worker waits for the broker to confirm
// a publish before moving on.
const AckTimeout = 2 * time.Second

// Broadcaster is a mood.StyleSink that publishes to MQTT. A single worker
// goroutine owns the client; styles queued while it waits on the broker
// are coalesced so only the newest is sent.
type Broadcaster struct {
	client Publisher
	topic  string
	qos    byte

	queue chan []byte
	done  chan struct{}
}

// New returns a broadcaster publishing retained messages to <prefix>/style.
// Close must be called to stop its worker.
func New(client Publisher, prefix string) *Broadcaster {
	b := &Broadcaster{
		client: client,
		topic:  prefix + "/style",
		queue:  make(chan []byte, 1),
		done:   make(chan struct{}),
	}
	go b.run()
	return b
}

// Topic returns the topic styles are published on.
func (b *Broadcaster) Topic() string { return b.topic }

// Encode builds the payload for s.
func Encode(s mood.Style, at time.Time) ([]byte, error) {
	return json.Marshal(Message{Style: s, Vars: s.Vars(), At: at.UTC()})
}

// PublishStyle queues s without waiting for the broker. A payload still
// queued from an earlier call is replaced. It must not be called after Close.
func (b *Broadcaster) PublishStyle(s mood.Style) {
	payload, err := Encode(s, time.Now())
	if err != nil {
		slog.Error("encode style", "error", err)
		return
	}
	for {
		select {
		case b.queue <- payload:
			return
		default:
		}
		select {
		case <-b.queue:
		default:
		}
	}
}

func (b *Broadcaster) run() {
	defer close(b.done)
	for payload := range b.queue {
		token := b.client.Publish(b.topic, b.qos, true, payload)
		if !token.WaitTimeout(AckTimeout) {
			slog.Warn("publish style timed out", "topic", b.topic, "timeout", AckTimeout)
			continue
		}
		if err := token.Error(); err != nil {
			slog.Warn("publish style", "topic", b.topic, "error", err)
			continue
		}
		slog.Debug("publish", "topic", b.topic, "payload", string(payload))
	}
}

// Close flushes the queued style and stops the worker.
func (b *Broadcaster) Close() {
	close(b.queue)
	<-b.done
}

// Connect dials broker and returns a connected client.
func Connect(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID(clientID)
	opts.SetKeepAlive(2 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetConnectTimeout(5 * time.Second)
	opts.SetAutoReconnect(true)

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect %s: %w", broker, token.Error())
	}
	return c, nil
}
