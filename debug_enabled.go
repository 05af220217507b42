//go:build futures_debug

package futures

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// watchPromise installs a finalizer which reports promises collected
// before anyone resolved them. A promise dropped without resolving leaves
// every holder of its future waiting forever, and nothing else in the
// program will ever notice.
func watchPromise[T any](p *Promise[T]) {
	_, file, line, _ := runtime.Caller(2)
	runtime.SetFinalizer(p, func(p *Promise[T]) {
		if !p.future.IsDone() {
			log.WithFields(logrus.Fields{
				"file": file,
				"line": line,
			}).Warn("promise collected before it was resolved")
		}
	})
}
