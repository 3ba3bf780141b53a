package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var _ fiber.Storage = (*Limiter)(nil)

type entry struct {
	value    []byte
	expireAt time.Time
}

// Limiter хранилище окон ограничения запросов для fiber limiter:
// не более limit запросов на ключ в фиксированном окне window
type Limiter struct {
	mu      sync.Mutex
	entries map[string]entry
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]entry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// Get истекшая запись считается отсутствующей
func (l *Limiter) Get(key string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok || l.expired(e) {
		return nil, nil
	}
	return e.value, nil
}

// Set exp == 0 - без срока
func (l *Limiter) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	e := entry{value: append([]byte(nil), val...)}
	if exp > 0 {
		e.expireAt = l.now().Add(exp)
	}
	l.mu.Lock()
	l.entries[key] = e
	l.mu.Unlock()
	return nil
}

func (l *Limiter) Delete(key string) error {
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()
	return nil
}

func (l *Limiter) Reset() error {
	l.mu.Lock()
	l.entries = make(map[string]entry)
	l.mu.Unlock()
	return nil
}

func (l *Limiter) Close() error {
	return nil
}

func (l *Limiter) expired(e entry) bool {
	return !e.expireAt.IsZero() && !l.now().Before(e.expireAt)
}

// Sweep удаляет истекшие окна
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, e := range l.entries {
		if l.expired(e) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// StartSweep периодическая очистка до завершения контекста
func (l *Limiter) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := l.Sweep(); removed != 0 {
					log.WithField("removed", removed).Debug("очищены истекшие окна ограничения запросов")
				}
			}
		}
	}()
}
