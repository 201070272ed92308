package mqtt

import "log"

// bufferedMsg stores a serialized MQTT message for replay after reconnection.
type bufferedMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// queue is a bounded FIFO that holds messages while the broker is
// unreachable. The oldest message is dropped on overflow. Not safe for
// concurrent use — the publisher synchronizes.
type queue struct {
	msgs    []bufferedMsg
	max     int
	dropped bool // true once any message was dropped since the last drain
}

func newQueue(max int) *queue {
	return &queue{max: max}
}

func (q *queue) push(m bufferedMsg) {
	if len(q.msgs) >= q.max {
		if !q.dropped {
			log.Printf("mqtt: buffer full (%d messages), dropping oldest", q.max)
			q.dropped = true
		}
		copy(q.msgs, q.msgs[1:])
		q.msgs[len(q.msgs)-1] = m
		return
	}
	q.msgs = append(q.msgs, m)
}

func (q *queue) drainAll() []bufferedMsg {
	if len(q.msgs) == 0 {
		return nil
	}
	out := q.msgs
	q.msgs = nil
	q.dropped = false
	return out
}

func (q *queue) len() int {
	return len(q.msgs)
}
