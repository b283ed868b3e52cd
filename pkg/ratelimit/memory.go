package ratelimit

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = time.Minute

type window struct {
	key     string
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps windows in process. The table is bounded by capacity;
// the least recently seen key is evicted first.
type MemoryLimiter struct {
	limit    int
	window   time.Duration
	capacity int

	mu    sync.Mutex
	ll    *list.List
	table map[string]*list.Element
	now   func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration, capacity int) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		window:   window,
		capacity: capacity,
		ll:       list.New(),
		table:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if ele, ok := l.table[key]; ok {
		w := ele.Value.(*window)
		if !now.Before(w.resetAt) {
			w.count = 0
			w.resetAt = now.Add(l.window)
		}
		w.count++
		l.ll.MoveToFront(ele)
		return decide(w.count, l.limit, w.resetAt), nil
	}

	w := &window{key: key, count: 1, resetAt: now.Add(l.window)}
	l.table[key] = l.ll.PushFront(w)

	if l.capacity > 0 && l.ll.Len() > l.capacity {
		l.removeOldest()
	}
	return decide(w.count, l.limit, w.resetAt), nil
}

func (l *MemoryLimiter) removeOldest() {
	ele := l.ll.Back()
	if ele != nil {
		l.removeElement(ele)
	}
}

func (l *MemoryLimiter) removeElement(e *list.Element) {
	l.ll.Remove(e)
	w := e.Value.(*window)
	delete(l.table, w.key)
}

func (l *MemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ll.Len()
}

// Start runs the janitor that drops expired windows until ctx is done.
func (l *MemoryLimiter) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (l *MemoryLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for e := l.ll.Back(); e != nil; {
		prev := e.Prev()
		if w := e.Value.(*window); !now.Before(w.resetAt) {
			l.removeElement(e)
		}
		e = prev
	}
}
