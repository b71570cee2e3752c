// Package notify implements the single-slot transient message banner.
//
// Only one message is visible at a time. Each Notify replaces the current
// message and restarts the dismissal timer, so the latest message is
// always hidden DefaultDelay after it was shown.
package notify

import (
	"sync"
	"time"
)

const DefaultDelay = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Message struct {
	// ID increases with every Notify call.
	ID      uint64
	Text    string
	Kind    Kind
	Visible bool
}

type Notifier interface {
	Notify(text string, kind Kind)
}

type Center struct {
	delay time.Duration

	mu        sync.Mutex
	current   Message
	timer     *time.Timer
	listeners []func(Message)
	closed    bool
}

// NewCenter returns a Center hiding messages after delay. A non-positive
// delay falls back to DefaultDelay.
func NewCenter(delay time.Duration) *Center {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Center{delay: delay}
}

var _ Notifier = (*Center)(nil)

func (c *Center) Notify(text string, kind Kind) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = Message{ID: c.current.ID + 1, Text: text, Kind: kind, Visible: true}
	id := c.current.ID
	c.timer = time.AfterFunc(c.delay, func() { c.dismiss(id) })
	msg, listeners := c.current, c.listenersLocked()
	c.mu.Unlock()

	emit(listeners, msg)
}

func (c *Center) dismiss(id uint64) {
	c.mu.Lock()
	// a newer message owns the slot
	if c.closed || c.current.ID != id || !c.current.Visible {
		c.mu.Unlock()
		return
	}
	c.current.Visible = false
	c.timer = nil
	msg, listeners := c.current, c.listenersLocked()
	c.mu.Unlock()

	emit(listeners, msg)
}

// Current returns the message in the slot; Visible is false once dismissed.
func (c *Center) Current() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// OnChange registers fn to be called on every show and dismiss.
func (c *Center) OnChange(fn func(Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Close stops the pending timer. Later calls to Notify are ignored.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.closed = true
}

func (c *Center) listenersLocked() []func(Message) {
	out := make([]func(Message), len(c.listeners))
	copy(out, c.listeners)
	return out
}

func emit(listeners []func(Message), msg Message) {
	for _, fn := range listeners {
		fn(msg)
	}
}
