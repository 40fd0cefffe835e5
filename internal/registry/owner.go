package registry

import (
	"context"
	"errors"
	"sync"
)

// ErrOwnerStopped is returned by Do after Stop.
var ErrOwnerStopped = errors.New("registry owner stopped")

// Owner is a single goroutine that runs queued closures in order. All registry
// state is touched only from inside those closures.
type Owner struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// NewOwner starts the owner goroutine.
func NewOwner() *Owner {
	o := &Owner{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	o.wg.Add(1)
	go o.run()
	return o
}

func (o *Owner) run() {
	defer o.wg.Done()
	for {
		select {
		case fn := <-o.queue:
			fn()
		case <-o.done:
			return
		}
	}
}

// Post queues fn without waiting for it. It is dropped after Stop.
func (o *Owner) Post(fn func()) {
	select {
	case o.queue <- fn:
	case <-o.done:
	}
}

// Do runs fn on the owner goroutine and waits for it to return.
// Do must not be called from inside the owner goroutine.
func (o *Owner) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}
	select {
	case o.queue <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-o.done:
		return ErrOwnerStopped
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-o.done:
		return ErrOwnerStopped
	}
}

// Stop ends the owner goroutine. Queued closures that have not started are discarded.
func (o *Owner) Stop() {
	o.once.Do(func() { close(o.done) })
	o.wg.Wait()
}
