package notify

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// Local keeps the pending schedule in memory and fires a timer per
// notification, handing the message to a Sender at trigger time. The schedule
// does not survive a restart; callers rebuild it on startup.
type Local struct {
	sender  Sender
	mu      sync.Mutex
	pending map[int]*pendingEntry
}

type pendingEntry struct {
	notification Notification
	timer        *time.Timer
}

func NewLocal(sender Sender) *Local {
	return &Local{sender: sender, pending: make(map[int]*pendingEntry)}
}

func (l *Local) Available() bool {
	return l.sender != nil
}

// Pending returns the currently scheduled notifications ordered by id.
func (l *Local) Pending(ctx context.Context) ([]Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notification, 0, len(l.pending))
	for _, entry := range l.pending {
		out = append(out, entry.notification)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Schedule arms one timer per notification. A notification reusing a pending
// id replaces the previous entry.
func (l *Local) Schedule(ctx context.Context, batch []Notification) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range batch {
		if entry, ok := l.pending[n.ID]; ok {
			entry.timer.Stop()
		}
		n := n
		timer := time.AfterFunc(time.Until(n.At), func() { l.deliver(n) })
		l.pending[n.ID] = &pendingEntry{notification: n, timer: timer}
	}
	return nil
}

// Cancel stops and forgets the notifications with the given ids.
func (l *Local) Cancel(ctx context.Context, ids []int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range ids {
		if entry, ok := l.pending[id]; ok {
			entry.timer.Stop()
			delete(l.pending, id)
		}
	}
	return nil
}

// Stop cancels every pending timer. Used on shutdown.
func (l *Local) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, entry := range l.pending {
		entry.timer.Stop()
		delete(l.pending, id)
	}
}

func (l *Local) deliver(n Notification) {
	l.mu.Lock()
	delete(l.pending, n.ID)
	l.mu.Unlock()

	if err := l.sender.Send(n.Title, n.Body); err != nil {
		log.Printf("[warn] enviar notificação %d: %v", n.ID, err)
	}
}
