// Package aco - message passing between workers and the coordinator.
//
// A Message carries exactly one TourResult, tagged with the sending worker
// and the iteration it belongs to. Transport is the point-to-point contract;
// Mailbox is the in-process implementation used by Solve.
//
// Mailbox keeps one FIFO per sender. Send never blocks. Recv(ctx, w) blocks
// until the oldest undelivered message of worker w is available, so the
// coordinator's ascending per-worker receive order is the per-iteration
// barrier: iteration k+1 cannot start until every worker reported k.
package aco

import (
	"context"
	"fmt"
	"sync"

	"github.com/gammazero/deque"
)

// Message is one report on the wire.
type Message struct {
	Worker    int        `json:"worker"`
	Iteration int        `json:"iteration"`
	Result    TourResult `json:"result"`
}

// Transport delivers worker reports to the coordinator.
type Transport interface {
	// Send enqueues msg from msg.Worker to the coordinator.
	Send(ctx context.Context, msg Message) error

	// Recv blocks until the next message from worker is available, ctx is
	// done, or the transport is closed.
	Recv(ctx context.Context, worker int) (Message, error)

	// Close releases blocked receivers; later calls fail with ErrTransportClosed.
	Close() error
}

// Mailbox is an in-memory Transport for a fixed set of workers 1..n.
// Safe for concurrent use by any number of senders and one receiver per worker.
type Mailbox struct {
	mu     sync.Mutex
	queues []deque.Deque[Message] // index = worker id − 1
	ready  []chan struct{}        // one-slot wakeups, index = worker id − 1
	closed bool
	done   chan struct{}
}

var _ Transport = (*Mailbox)(nil)

// NewMailbox returns a Mailbox for workers 1..workers.
func NewMailbox(workers int) (*Mailbox, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers=%d: %w", workers, ErrInvalidConfiguration)
	}
	m := &Mailbox{
		queues: make([]deque.Deque[Message], workers),
		ready:  make([]chan struct{}, workers),
		done:   make(chan struct{}),
	}
	for i := range m.ready {
		m.ready[i] = make(chan struct{}, 1)
	}

	return m, nil
}

// Workers returns the number of sender slots.
func (m *Mailbox) Workers() int { return len(m.queues) }

func (m *Mailbox) slot(worker int) (int, error) {
	if worker <= CoordinatorID || worker > len(m.queues) {
		return 0, fmt.Errorf("worker %d of %d: %w", worker, len(m.queues), ErrUnexpectedSender)
	}

	return worker - 1, nil
}

// Send implements Transport.
func (m *Mailbox) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send from worker %d: %w: %w", msg.Worker, ErrCommunicationFailure, err)
	}
	i, err := m.slot(msg.Worker)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrTransportClosed
	}
	m.queues[i].PushBack(msg)
	m.mu.Unlock()

	select { // wake the receiver if it is parked; a pending wakeup is enough
	case m.ready[i] <- struct{}{}:
	default:
	}

	return nil
}

// Recv implements Transport.
func (m *Mailbox) Recv(ctx context.Context, worker int) (Message, error) {
	i, err := m.slot(worker)
	if err != nil {
		return Message{}, err
	}

	for {
		m.mu.Lock()
		if m.queues[i].Len() > 0 {
			msg := m.queues[i].PopFront()
			m.mu.Unlock()
			if msg.Worker != worker {
				return Message{}, fmt.Errorf("want worker %d, got %d: %w", worker, msg.Worker, ErrUnexpectedSender)
			}
			return msg, nil
		}
		closed := m.closed
		m.mu.Unlock()
		if closed {
			return Message{}, ErrTransportClosed
		}

		select {
		case <-m.ready[i]:
		case <-m.done:
		case <-ctx.Done():
			return Message{}, fmt.Errorf("recv from worker %d: %w: %w", worker, ErrCommunicationFailure, ctx.Err())
		}
	}
}

// Close implements Transport. Messages already queued stay receivable.
func (m *Mailbox) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}

	return nil
}
