// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import "code.hybscloud.com/atomix"

// DefaultStackSize is the stack hint for plain fibers.
const DefaultStackSize = 64 << 10

// Fiber is one stackful execution context. It owns its machine context and
// task closure exclusively; its chain index is fixed at construction and
// never changes. Once finished, a fiber never becomes unfinished.
type Fiber struct {
	chain     *Chain
	ctx       *machineContext
	task      func()
	err       *TaskError
	stackSize int
	index     int
	serial    Serial
	finished  bool

	// released is set by Close to cancel a suspended fiber; observed by
	// the fiber side after its next wakeup.
	released atomix.Uint32
}

// New creates a fiber running task with the default stack hint and
// registers it at the top of the chain. Registration happens here, not at
// first resume; the index records the nesting depth at creation time.
func (c *Chain) New(task func()) *Fiber {
	return c.NewSized(task, DefaultStackSize)
}

// NewSized creates a fiber with an explicit stack hint. The hint is fixed
// at construction; the runtime grows the actual stack on demand, so the
// hint is advisory and kept as a tunable rather than a hard bound.
func (c *Chain) NewSized(task func(), stackSize int) *Fiber {
	if len(c.list) == 0 {
		panic("fiber: use of closed chain")
	}
	if task == nil {
		panic("fiber: nil task")
	}
	if stackSize <= 0 {
		panic("fiber: non-positive stack size")
	}
	f := &Fiber{
		chain:     c,
		task:      task,
		stackSize: stackSize,
		index:     len(c.list),
		serial:    nextSerial(),
	}
	f.ctx = newMachineContext(f.run)
	c.list = append(c.list, f)
	return f
}

// Resume switches execution into the fiber and suspends the caller until
// the fiber yields, finishes, or fails. Returns ErrFinished, without
// touching the chain, if the task has already completed or failed. A task
// failure is delivered exactly once, as a *TaskError, by the Resume during
// which it escaped.
//
// Only the fiber's immediate parent entry may resume it; anything else is
// a lifecycle violation and panics.
func (f *Fiber) Resume() error {
	if f.finished {
		return ErrFinished
	}
	c := f.chain
	if c.cur != f.index-1 {
		panic("fiber: resume from outside the immediate parent")
	}
	c.cur = f.index
	f.ctx.enter()
	if f.err != nil {
		err := f.err
		f.err = nil
		return err
	}
	return nil
}

// Finished reports whether the task has run to completion or failed.
func (f *Fiber) Finished() bool { return f.finished }

// Index returns the fiber's fixed position in the chain.
func (f *Fiber) Index() int { return f.index }

// Serial returns the serial number assigned at construction.
func (f *Fiber) Serial() Serial { return f.serial }

// StackSize returns the stack hint fixed at construction.
func (f *Fiber) StackSize() int { return f.stackSize }

// Close releases the fiber and pops its chain entry. Closing any fiber
// other than the top live entry, closing the running fiber, or closing
// twice is a lifecycle violation and panics.
//
// A suspended unfinished fiber is canceled first: it is woken once and
// unwound, running any deferred functions on its stack, before the entry
// is popped.
func (f *Fiber) Close() {
	c := f.chain
	if f.index == 0 {
		panic("fiber: close of the root context")
	}
	if len(c.list)-1 != f.index || c.list[f.index] != f {
		panic("fiber: close out of LIFO order")
	}
	if c.cur == f.index {
		panic("fiber: close of the running fiber")
	}
	caller := c.cur
	if !f.finished {
		f.released.Store(1)
		c.cur = f.index
		f.ctx.enter()
	}
	c.list = c.list[:f.index]
	c.cur = caller
}

// run is the entry trampoline. It executes the task exactly once, captures
// an escaping panic into the failure slot, marks the fiber finished, and
// restores the current index before the final switch out. The cancellation
// sentinel is swallowed here.
func (f *Fiber) run() {
	defer func() {
		if r := recover(); r != nil && r != errReleased {
			f.err = newTaskError(r)
		}
		f.finished = true
		f.chain.cur = f.index - 1
	}()
	if f.released.Load() != 0 {
		return
	}
	f.task()
}
