// Package schedule runs periodic background jobs behind a stoppable handle.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Poller runs a job on a fixed interval until stopped.
type Poller struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Every starts calling job every interval. The first call happens after one
// interval; jobs never overlap. Stopping prevents future runs but lets a run
// that is already in flight finish.
func Every(interval time.Duration, job func(ctx context.Context)) *Poller {
	p := &Poller{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.loop(job)
	return p
}

func (p *Poller) loop(job func(ctx context.Context)) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			job(context.Background())
		}
	}
}

// Interval returns the polling period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Stop prevents further runs. It is safe to call more than once.
func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// Done is closed once the poller has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
