package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSerializerClosed is returned for tasks submitted after Close.
var ErrSerializerClosed = errors.New("cart mutation serializer is closed")

type serializerResult struct {
	value interface{}
	err   error
}

type serializerTask struct {
	run  func() (interface{}, error)
	done chan serializerResult
}

// CartMutationSerializer funnels every cart mutation through one worker
// goroutine, so at most one mutation is in flight system-wide and tasks run
// in submission order. A failing or panicking task never stops the worker.
type CartMutationSerializer struct {
	mu     sync.RWMutex
	closed bool
	tasks  chan serializerTask
	idle   chan struct{}
}

// NewCartMutationSerializer starts the worker. buffer bounds how many
// mutations may queue before submitters block.
func NewCartMutationSerializer(buffer int) *CartMutationSerializer {
	s := &CartMutationSerializer{
		tasks: make(chan serializerTask, buffer),
		idle:  make(chan struct{}),
	}
	go s.worker()
	return s
}

func (s *CartMutationSerializer) worker() {
	defer close(s.idle)
	for task := range s.tasks {
		value, err := runProtected(task.run)
		task.done <- serializerResult{value: value, err: err}
	}
}

// runProtected converts a panic inside one task into an error, so the next
// queued task still runs.
func runProtected(fn func() (interface{}, error)) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cart mutation panicked: %v", r)
		}
	}()
	return fn()
}

// Do submits fn and blocks until it has run to completion, or until ctx ends
// while the task is still queued. The returned values are fn's own.
func (s *CartMutationSerializer) Do(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	task := serializerTask{run: fn, done: make(chan serializerResult, 1)}

	// The read lock keeps Close from closing the task channel mid-send.
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrSerializerClosed
	}
	select {
	case s.tasks <- task:
		s.mu.RUnlock()
	case <-ctx.Done():
		s.mu.RUnlock()
		return nil, ctx.Err()
	}

	res := <-task.done
	return res.value, res.err
}

// Close stops accepting new tasks and waits for queued ones to finish.
func (s *CartMutationSerializer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.tasks)
	s.mu.Unlock()
	<-s.idle
}
