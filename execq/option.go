package execq

import (
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type Option func(q *Queue)

func WithLogger(l *logrus.Logger) Option {
	return func(q *Queue) {
		q.log = l
	}
}

// WithClock sets the clock used by SubmitAfter. Tests pass a fake clock
// so that delays can be advanced by hand.
func WithClock(clock clockwork.Clock) Option {
	return func(q *Queue) {
		q.clock = clock
	}
}

// WithName sets a name which appears in log entries about the queue.
func WithName(name string) Option {
	return func(q *Queue) {
		q.name = name
	}
}
