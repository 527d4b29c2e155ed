package frame

// Commands buffers work that must run after every system of the frame has
// executed, such as presenting the settled state.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued functions in order and resets the buffer.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
