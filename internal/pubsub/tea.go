package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener bridges a broker subscription into Bubble Tea. After handling an
// Event[T] in Update, return Listen() again to keep receiving.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen waits for the next event. The command yields nil once the context is
// done or the subscription is closed, which ends the listen loop.
func (l *Listener[T]) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			return nil
		case ev, ok := <-l.ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}
