package buffer

import "context"

// Unbounded creates a channel buffer that grows as needed, so producers
// never block on a slow consumer. It returns a write-only channel to feed
// data in and a read-only channel to read data out.
//
// initialCap: The starting size of the backing slice.
// hardLimit: The maximum number of items to hold; beyond it the oldest
// item is dropped and onDrop (if non-nil) is called with the limit.
//
// The buffer stops when ctx is done, or flushes and closes out when in is
// closed.
//
// Usage:
//
//	in, out := buffer.Unbounded[tea.Msg](ctx, 256, 50000, nil)
//	in <- msg
//	msg := <-out
func Unbounded[T any](ctx context.Context, initialCap, hardLimit int, onDrop func(limit int)) (chan<- T, <-chan T) {
	in := make(chan T, 10)
	out := make(chan T, 10)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Enable the out case only when there is something to send
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case <-ctx.Done():
				return

			case val, ok := <-in:
				if !ok {
					for _, item := range queue {
						select {
						case out <- item:
						case <-ctx.Done():
							return
						}
					}
					return
				}

				if len(queue) >= hardLimit {
					if onDrop != nil {
						onDrop(hardLimit)
					}
					var zero T
					queue[0] = zero
					queue = queue[1:]
				}
				queue = append(queue, val)

			case downstream <- next:
				var zero T
				queue[0] = zero
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
