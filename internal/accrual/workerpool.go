package accrual

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=accrual

var ErrPoolClosed = errors.New("worker pool is closed")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines.
type WorkerPool struct {
	pool   chan Task
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.pool)
	wp.mu.Unlock()

	wp.wg.Wait()
}
