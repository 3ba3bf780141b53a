package retry

import (
	"context"
	"time"
)

// Policy повтор операции с паузой между попытками
type Policy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
	// Retryable nil - повторяем при любой ошибке
	Retryable func(err error) bool
}

// Linear пауза step * номер попытки
func Linear(step time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return step * time.Duration(attempt)
	}
}

// SleepContext пауза, прерываемая отменой контекста
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do вызывает op до MaxAttempts раз (attempt начинается с 1), возвращает ошибку последней попытки.
// После последней попытки паузы нет.
func (p Policy) Do(ctx context.Context, op func(attempt int) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op(attempt)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		if p.Backoff != nil {
			if sleepErr := sleep(ctx, p.Backoff(attempt)); sleepErr != nil {
				return err
			}
		}
	}
	return err
}
