package sched

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/gesturekit/internal/log"
)

// AnimateFunc is called on the loop goroutine for each coalesced
// animation tick, with the loop's monotonic now in seconds.
type AnimateFunc func(now float64)

// Loop serializes input tasks and animation ticks onto one goroutine.
// Tasks run in post order; animation requests coalesce so at most one
// tick fires per frame interval no matter how many were requested.
type Loop struct {
	// Configuration
	queueSize int
	interval  time.Duration
	onAnimate AnimateFunc
	logger    *log.Logger

	// State
	mu      sync.Mutex // protects queue creation/destruction
	queue   chan func()
	done    chan struct{}
	running atomic.Bool
	pending atomic.Bool
	wg      sync.WaitGroup
	epoch   time.Time

	// Stats
	posted   atomic.Uint64
	executed atomic.Uint64
	ticks    atomic.Uint64
	dropped  atomic.Uint64
	panicked atomic.Uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the task queue size.
func WithQueueSize(size int) Option {
	return func(l *Loop) {
		if size > 0 {
			l.queueSize = size
		}
	}
}

// WithFrameInterval sets the animation tick interval.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger sets the loop logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger.WithComponent("sched")
		}
	}
}

// NewLoop creates a Loop delivering animation ticks to onAnimate.
func NewLoop(onAnimate AnimateFunc, opts ...Option) *Loop {
	l := &Loop{
		queueSize: 1024,
		interval:  time.Second / 60,
		onAnimate: onAnimate,
		logger:    log.Null,
		epoch:     time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the loop's monotonic clock in seconds.
func (l *Loop) Now() float64 {
	return time.Since(l.epoch).Seconds()
}

// Start launches the loop goroutine.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return ErrAlreadyRunning
	}

	l.queue = make(chan func(), l.queueSize)
	l.done = make(chan struct{})
	l.running.Store(true)

	l.wg.Add(1)
	go l.run(l.queue, l.done)
	return nil
}

// Stop shuts the loop down, draining queued tasks until ctx expires.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		return ErrNotRunning
	}
	l.running.Store(false)
	close(l.done)
	l.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post enqueues fn for serial execution on the loop goroutine.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return nil
	}
	if !l.running.Load() {
		return ErrNotRunning
	}
	select {
	case l.queue <- fn:
		l.posted.Add(1)
		return nil
	default:
		l.dropped.Add(1)
		return ErrQueueFull
	}
}

// RequestAnimate schedules an animation tick. Requests between ticks
// coalesce into one callback. Safe to call from the loop goroutine
// itself, which is how a dispatcher keeps a fling animating.
func (l *Loop) RequestAnimate() {
	l.pending.Store(true)
}

// Stats reports loop counters: posted, executed, ticks, dropped.
func (l *Loop) Stats() (posted, executed, ticks, dropped uint64) {
	return l.posted.Load(), l.executed.Load(), l.ticks.Load(), l.dropped.Load()
}

func (l *Loop) run(queue chan func(), done chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case fn := <-queue:
			l.exec(fn)
		case <-ticker.C:
			if l.pending.Swap(false) && l.onAnimate != nil {
				l.ticks.Add(1)
				l.exec(func() { l.onAnimate(l.Now()) })
			}
		case <-done:
			// Drain remaining tasks before exiting.
			for {
				select {
				case fn := <-queue:
					l.exec(fn)
				default:
					return
				}
			}
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.panicked.Add(1)
			l.logger.Error("task panic: %v\n%s", r, debug.Stack())
		}
	}()
	l.executed.Add(1)
	fn()
}
