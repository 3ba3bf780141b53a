package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

// BaseImpl периодический запуск задачи с начальной задержкой
type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run блокирует до отмены контекста, паника в задаче не останавливает воркер
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			i.RunOnce(ctx, jobFunc)
			timer.Reset(i.runInterval)
		}
	}
}

// RunOnce один запуск задачи, возвращает false при панике
func (i BaseImpl) RunOnce(ctx context.Context, jobFunc func(ctx context.Context)) (ok bool) {
	logger := i.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
			ok = false
		}
	}()
	started := time.Now()
	logger.Debug("Задача запущена")
	jobFunc(ctx)
	logger.WithField("duration", time.Since(started).String()).Debug("Задача выполнена")
	return true
}
