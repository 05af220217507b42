package futures

// callback is one deferred completion step. Running a callback may resolve
// other futures; instead of running their callbacks recursively, it hands them
// back to the caller.
type callback func() callbackList

// callbackList is an ordered collection of callbacks. Most futures only ever
// get one callback, so the first entry is inlined and the slice stays nil.
type callbackList struct {
	first callback
	more  []callback
}

func (l *callbackList) append(cb callback) {
	if l.first == nil {
		l.first = cb
	} else {
		l.more = append(l.more, cb)
	}
}

// run invokes every callback in l and every callback those produce,
// oldest first. Chains of any length run in constant stack space.
func (l callbackList) run() {
	if l.first == nil {
		return
	}
	if l.more == nil {
		// A chain of single registrations stays on this path and never
		// allocates a queue.
		cb := l.first
		for cb != nil {
			next := cb()
			if next.more != nil {
				next.runQueued()
				return
			}
			cb = next.first
		}
		return
	}
	l.runQueued()
}

// runQueued drains a FIFO work queue, appending produced callbacks at the
// tail. Fan-out runs in level order; each chain keeps its own order.
func (l callbackList) runQueued() {
	queue := make([]callback, 0, 1+len(l.more))
	queue = append(queue, l.first)
	queue = append(queue, l.more...)
	for len(queue) > 0 {
		cb := queue[0]
		queue = queue[1:]
		out := cb()
		if out.first != nil {
			queue = append(queue, out.first)
			queue = append(queue, out.more...)
		}
	}
}
