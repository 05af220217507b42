package futures

// Executor is a serial task queue. Every Future is bound to exactly one
// Executor and all of its callbacks run there.
//
// Implementations must run submitted tasks one at a time, in submission
// order, and must establish a happens-before edge between Submit and the
// task running. The execq package provides an Executor backed by a
// dedicated goroutine.
type Executor interface {
	// Submit enqueues fn and returns without waiting for it to run.
	Submit(fn func())
	// InContext reports whether the calling goroutine is currently running
	// a task on this executor.
	InContext() bool
}
