package mqtt

import (
	"fmt"
	"testing"
)

func msg(i int) bufferedMsg {
	return bufferedMsg{topic: Topic, payload: []byte(fmt.Sprintf("m%d", i))}
}

func TestQueuePushDrain(t *testing.T) {
	q := newQueue(4)
	for i := 0; i < 3; i++ {
		q.push(msg(i))
	}
	if q.len() != 3 {
		t.Fatalf("len: got %d, want 3", q.len())
	}

	out := q.drainAll()
	if len(out) != 3 {
		t.Fatalf("drained: got %d, want 3", len(out))
	}
	for i, m := range out {
		if string(m.payload) != fmt.Sprintf("m%d", i) {
			t.Errorf("message %d: got %s", i, m.payload)
		}
	}
	if q.len() != 0 {
		t.Errorf("len after drain: got %d, want 0", q.len())
	}
}

func TestQueueDrainEmpty(t *testing.T) {
	q := newQueue(4)
	if out := q.drainAll(); out != nil {
		t.Errorf("drain of empty queue: got %v, want nil", out)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := newQueue(3)
	for i := 0; i < 5; i++ {
		q.push(msg(i))
	}
	if q.len() != 3 {
		t.Fatalf("len: got %d, want 3", q.len())
	}

	out := q.drainAll()
	want := []string{"m2", "m3", "m4"}
	for i, w := range want {
		if string(out[i].payload) != w {
			t.Errorf("message %d: got %s, want %s", i, out[i].payload, w)
		}
	}
}

func TestQueueOverflowFlagResetsOnDrain(t *testing.T) {
	q := newQueue(1)
	q.push(msg(0))
	q.push(msg(1)) // drop
	if !q.dropped {
		t.Fatal("dropped flag should be set after overflow")
	}
	q.drainAll()
	if q.dropped {
		t.Error("dropped flag should reset after drain")
	}
}

func TestQueuePreservesMessageFields(t *testing.T) {
	q := newQueue(2)
	q.push(bufferedMsg{topic: TopicSystem, payload: []byte("x"), qos: 1, retained: true})

	out := q.drainAll()
	if len(out) != 1 {
		t.Fatalf("drained: got %d, want 1", len(out))
	}
	m := out[0]
	if m.topic != TopicSystem || m.qos != 1 || !m.retained {
		t.Errorf("fields not preserved: %+v", m)
	}
}
