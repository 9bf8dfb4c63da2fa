// Package chatcache holds the in-memory chat session cache used by the
// assistant endpoint. Sessions idle longer than the TTL are swept by an
// hourly janitor.
package chatcache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session survives before the janitor
// removes it.
const DefaultTTL = 720 * time.Hour

// Session tracks one chat conversation's activity.
type Session struct {
	ID           string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
	MessageCount int       `json:"message_count"`
	TotalTokens  int       `json:"total_tokens"`
}

// Cache is a coarse-locked session map.
type Cache struct {
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCache builds an empty cache. A non-positive ttl falls back to
// DefaultTTL.
func NewCache(ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:      ttl,
		logger:   logger.With("component", "chatcache"),
		now:      time.Now,
		sessions: map[string]*Session{},
	}
}

// Create registers a new session and returns it.
func (c *Cache) Create() *Session {
	now := c.now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastActive: now,
	}
	c.mu.Lock()
	c.sessions[s.ID] = s
	c.mu.Unlock()
	return s
}

// Get returns a copy of the session, or false when unknown.
func (c *Cache) Get(id string) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Touch records activity on a session, bumping its message count and
// token total. Unknown ids are ignored.
func (c *Cache) Touch(id string, tokens int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok {
		return
	}
	s.LastActive = c.now()
	s.MessageCount++
	s.TotalTokens += tokens
}

// Len returns the number of cached sessions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many
// were dropped.
func (c *Cache) Sweep() int {
	cutoff := c.now().Add(-c.ttl)
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for id, s := range c.sessions {
		if s.LastActive.Before(cutoff) {
			delete(c.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		c.logger.Info("Swept idle chat sessions", "count", removed)
	}
	return removed
}

// StartJanitor launches the periodic sweep loop.
func (c *Cache) StartJanitor(ctx context.Context, interval time.Duration) {
	if c.cancel != nil {
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
	c.logger.Info("Chat session janitor started", "interval", interval, "ttl", c.ttl)
}

// StopJanitor halts the sweep loop and waits for it to exit.
func (c *Cache) StopJanitor() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}
