// Package notify models the local-notification contract: a batch schedule of
// dated messages that can be queried and cancelled by id.
package notify

import (
	"context"
	"time"
)

// Notification is a single scheduled reminder.
type Notification struct {
	ID    int
	Title string
	Body  string
	At    time.Time
}

// Gateway is the scheduling contract. Outside a configured delivery channel
// Available returns false and callers must treat scheduling as a no-op.
type Gateway interface {
	Available() bool
	Pending(ctx context.Context) ([]Notification, error)
	Schedule(ctx context.Context, batch []Notification) error
	Cancel(ctx context.Context, ids []int) error
}

// Sender delivers a notification once its trigger time fires.
type Sender interface {
	Send(title, body string) error
}

// Disabled is the gateway used when no delivery channel is configured.
type Disabled struct{}

func (Disabled) Available() bool                                 { return false }
func (Disabled) Pending(context.Context) ([]Notification, error) { return nil, nil }
func (Disabled) Schedule(context.Context, []Notification) error  { return nil }
func (Disabled) Cancel(context.Context, []int) error             { return nil }
