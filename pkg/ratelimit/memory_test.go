package ratelimit

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryLimiter(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		capacity int
		actions  func(l *MemoryLimiter, clock *fakeClock, t *testing.T)
	}{
		{
			name:     "allows up to limit",
			limit:    3,
			capacity: 10,
			actions: func(l *MemoryLimiter, _ *fakeClock, t *testing.T) {
				for i := 1; i <= 3; i++ {
					d, _ := l.Allow(context.Background(), "ip")
					if !d.Allowed || d.Remaining != 3-i {
						t.Errorf("hit %d: expected allowed with remaining=%d, got %+v", i, 3-i, d)
					}
				}
				if d, _ := l.Allow(context.Background(), "ip"); d.Allowed || d.Remaining != 0 {
					t.Errorf("expected fourth hit to be rejected, got %+v", d)
				}
			},
		},
		{
			name:     "window resets",
			limit:    1,
			capacity: 10,
			actions: func(l *MemoryLimiter, clock *fakeClock, t *testing.T) {
				l.Allow(context.Background(), "ip")
				if d, _ := l.Allow(context.Background(), "ip"); d.Allowed {
					t.Errorf("expected second hit to be rejected")
				}
				clock.advance(time.Minute)
				if d, _ := l.Allow(context.Background(), "ip"); !d.Allowed {
					t.Errorf("expected hit in new window to be allowed")
				}
			},
		},
		{
			name:     "keys are independent",
			limit:    1,
			capacity: 10,
			actions: func(l *MemoryLimiter, _ *fakeClock, t *testing.T) {
				l.Allow(context.Background(), "api:1.1.1.1")
				if d, _ := l.Allow(context.Background(), "auth:1.1.1.1"); !d.Allowed {
					t.Errorf("expected other key to be allowed")
				}
			},
		},
		{
			name:     "evicts least recently seen over capacity",
			limit:    5,
			capacity: 2,
			actions: func(l *MemoryLimiter, _ *fakeClock, t *testing.T) {
				l.Allow(context.Background(), "a")
				l.Allow(context.Background(), "b")
				l.Allow(context.Background(), "a")
				l.Allow(context.Background(), "c")
				if l.Size() != 2 {
					t.Errorf("expected size 2, got %d", l.Size())
				}
				if _, ok := l.table["b"]; ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if _, ok := l.table["a"]; !ok {
					t.Errorf("expected key 'a' to stay")
				}
			},
		},
		{
			name:     "sweep removes expired windows",
			limit:    5,
			capacity: 10,
			actions: func(l *MemoryLimiter, clock *fakeClock, t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				l.Start(ctx)

				l.Allow(context.Background(), "old")
				clock.advance(30 * time.Second)
				l.Allow(context.Background(), "new")
				clock.advance(31 * time.Second)

				l.sweep()

				if l.Size() != 1 {
					t.Errorf("expected only the live window to remain, got %d", l.Size())
				}
				if _, ok := l.table["new"]; !ok {
					t.Errorf("expected key 'new' to remain")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
			l := NewMemoryLimiter(tt.limit, time.Minute, tt.capacity)
			l.now = clock.now
			tt.actions(l, clock, t)
		})
	}
}
