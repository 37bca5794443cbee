// Package notify keeps the user-visible notification feed. Each entry
// expires on its own single-shot timer, like the toasts it backs.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Success Kind = "success"
	Info    Kind = "info"
	Error   Kind = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

const _defaultTTL = 6 * time.Second

type Center struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = _defaultTTL
	}
	return &Center{ttl: ttl}
}

// Push adds a notification and schedules its expiry. An explicit dismiss
// before the timer fires just makes the timer a no-op.
func (c *Center) Push(kind Kind, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.Dismiss(n.ID)
	})

	return n
}

func (c *Center) Successf(format string, args ...any) { c.Push(Success, fmt.Sprintf(format, args...)) }
func (c *Center) Infof(format string, args ...any)    { c.Push(Info, fmt.Sprintf(format, args...)) }
func (c *Center) Errorf(format string, args ...any)   { c.Push(Error, fmt.Sprintf(format, args...)) }

func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
