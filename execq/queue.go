// Package execq provides a serial task queue backed by a single worker
// goroutine. Tasks run one at a time, in submission order; a task which
// panics is logged and does not take the worker down. A Queue is the
// standard executor for binding futures to.
package execq

import (
	"runtime"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brendoncarroll/go-futures"
)

var _ futures.Executor = &Queue{}

type Queue struct {
	name  string
	log   *logrus.Logger
	clock clockwork.Clock

	mu    sync.Mutex
	tasks []func()

	wake      chan struct{}
	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}
	gid       uint64 // the worker's goroutine id, written once before New returns
}

// New starts the worker goroutine and returns a Queue ready for Submit.
func New(opts ...Option) *Queue {
	q := &Queue{
		log:    logrus.StandardLogger(),
		clock:  clockwork.NewRealClock(),
		wake:   make(chan struct{}, 1),
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	ready := make(chan uint64)
	go q.run(ready)
	q.gid = <-ready
	return q
}

// Submit enqueues fn to run on the worker. It does not block: the backlog
// grows as needed. After Close, tasks are dropped with a warning instead.
func (q *Queue) Submit(fn func()) {
	q.mu.Lock()
	if q.isClosed() {
		q.mu.Unlock()
		q.log.WithField("queue", q.name).Warn("task submitted after close, dropping")
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// SubmitAfter submits fn once d has elapsed on the queue's clock. The
// delay is kept off the worker; ordering relative to other tasks is just
// the submission order at expiry.
func (q *Queue) SubmitAfter(d time.Duration, fn func()) {
	go func() {
		q.clock.Sleep(d)
		q.Submit(fn)
	}()
}

// InContext reports whether the calling goroutine is the queue's worker.
func (q *Queue) InContext() bool {
	return q.gid == goroutineID()
}

// Close stops intake and blocks until the tasks already submitted have
// run. Close is idempotent. Calling it from the queue's own worker returns
// an error instead of deadlocking.
func (q *Queue) Close() error {
	if q.InContext() {
		return errors.New("execq: Close called from the queue's own worker")
	}
	q.closeOnce.Do(func() {
		close(q.closed)
		select {
		case q.wake <- struct{}{}:
		default:
		}
	})
	<-q.done
	return nil
}

// Done is closed when the worker has exited.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) isClosed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}

func (q *Queue) run(ready chan<- uint64) {
	defer close(q.done)
	ready <- goroutineID()
	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.isClosed() {
			q.mu.Unlock()
			<-q.wake
			q.mu.Lock()
		}
		if len(q.tasks) == 0 {
			// closed, and the backlog is drained
			q.mu.Unlock()
			return
		}
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()
		for _, fn := range batch {
			q.runTask(fn)
		}
	}
}

// runTask recovers a panicking task, logs it, and keeps the worker alive.
func (q *Queue) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.WithFields(logrus.Fields{
				"queue": q.name,
				"panic": r,
			}).Error("task panicked")
		}
	}()
	fn()
}

// goroutineID parses the calling goroutine's id out of the runtime stack
// header, "goroutine 123 [running]:". There is no public API for this; the
// header format has been stable across releases.
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]
	s = s[len("goroutine "):]
	var id uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
