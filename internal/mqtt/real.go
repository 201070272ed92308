package mqtt

import (
	"fmt"
	"log"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/aymanmw1/streetlight/internal/logic"
)

// bufferCapacity bounds the number of messages held while disconnected.
// Transitions happen at most twice a day, so this mostly holds heartbeats.
const bufferCapacity = 64

// RealPublisher publishes to an actual MQTT broker. The connection is
// established in the background and retried; messages published while
// disconnected are buffered and replayed once the connection comes up.
type RealPublisher struct {
	client paho.Client

	mu  sync.Mutex
	buf *queue
}

// NewRealPublisher creates a publisher for the given broker and starts
// connecting.
func NewRealPublisher(broker string) *RealPublisher {
	p := &RealPublisher{buf: newQueue(bufferCapacity)}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("streetlight").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(paho.Client) { p.replay() })

	p.client = paho.NewClient(opts)
	p.client.Connect()
	return p
}

// PublishTransition sends a sunrise/sunset event to the MQTT broker.
func (p *RealPublisher) PublishTransition(event logic.TransitionEvent, at time.Time) error {
	payload, err := FormatTransitionPayload(event, at)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// QoS 0 (at-most-once), not retained
	return p.publish(Topic, 0, false, payload)
}

// PublishSystem sends a system lifecycle event to the MQTT broker.
func (p *RealPublisher) PublishSystem(event SystemEvent) error {
	payload, err := FormatSystemPayload(event)
	if err != nil {
		return fmt.Errorf("format system payload: %w", err)
	}

	// QoS 1 (at-least-once) — shutdown events should not be lost
	return p.publish(TopicSystem, 1, event.Retained, payload)
}

// IsConnected reports whether the broker connection is up.
func (p *RealPublisher) IsConnected() bool {
	return p.client.IsConnectionOpen()
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000) // 1 second timeout
	return nil
}

func (p *RealPublisher) publish(topic string, qos byte, retained bool, payload []byte) error {
	p.mu.Lock()
	if !p.client.IsConnectionOpen() {
		p.buf.push(bufferedMsg{topic: topic, payload: payload, qos: qos, retained: retained})
		n := p.buf.len()
		p.mu.Unlock()
		log.Printf("mqtt: disconnected, buffered message (%d pending)", n)
		return nil
	}
	p.mu.Unlock()

	token := p.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// replay flushes buffered messages after a (re)connect.
func (p *RealPublisher) replay() {
	p.mu.Lock()
	msgs := p.buf.drainAll()
	p.mu.Unlock()

	if len(msgs) == 0 {
		return
	}
	for _, m := range msgs {
		token := p.client.Publish(m.topic, m.qos, m.retained, m.payload)
		token.WaitTimeout(5 * time.Second)
	}
	log.Printf("mqtt: replayed %d buffered messages", len(msgs))
}
