package synth

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

type eventKind uint8

const (
	eventParam eventKind = iota + 1
	eventGate
)

type event struct {
	kind  eventKind
	param Param
	gate  bool
	value float32
}

// QueueSlots is the ring capacity of a Queue.
const QueueSlots = 32

// Queue is a fixed-size single-producer, single-consumer event ring.
//
// It implements Engine for the producer side: sends never block and are
// dropped (and counted) when the ring is full. The consumer side drains it
// into the real engine from its own context. No allocations.
type Queue struct {
	_       [0]func() // prevent accidental copying.
	head    atomic.Uint32
	tail    atomic.Uint32
	dropped atomic.Uint32
	slots   [QueueSlots]event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) trySend(ev event) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= QueueSlots {
		q.dropped.Add(1)
		return false
	}
	q.slots[head%QueueSlots] = ev
	q.head.Store(head + 1)
	return true
}

func (q *Queue) tryRecv() (event, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return event{}, false
	}
	ev := q.slots[tail%QueueSlots]
	q.tail.Store(tail + 1)
	return ev, true
}

// SetParameter enqueues a parameter change.
func (q *Queue) SetParameter(p Param, v float32) {
	q.trySend(event{kind: eventParam, param: p, value: v})
}

// SetGate enqueues a gate change.
func (q *Queue) SetGate(on bool) {
	q.trySend(event{kind: eventGate, gate: on})
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.head.Load() - q.tail.Load())
}

// Dropped returns how many events were discarded because the ring was full.
func (q *Queue) Dropped() uint32 {
	return q.dropped.Load()
}

// Pump delivers every queued event to dst and returns how many were delivered.
// It must only be called from the consumer context.
func (q *Queue) Pump(dst Engine) int {
	n := 0
	for {
		ev, ok := q.tryRecv()
		if !ok {
			return n
		}
		switch ev.kind {
		case eventParam:
			dst.SetParameter(ev.param, ev.value)
		case eventGate:
			dst.SetGate(ev.gate)
		}
		n++
	}
}

// Run pumps events into dst until ctx is done.
func (q *Queue) Run(ctx context.Context, dst Engine) {
	for {
		select {
		case <-ctx.Done():
			q.Pump(dst)
			return
		default:
		}
		if q.Pump(dst) == 0 {
			// Nothing pending; give the poll loop the CPU.
			runtime.Gosched()
			time.Sleep(time.Millisecond)
		}
	}
}
