// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Chain is the call-chain registry: the ordered sequence of live fibers in
// nesting order, with a permanent root sentinel at index 0 representing the
// original execution context, plus the current index pointing at the entry
// actively executing.
//
// Entries are appended only by fiber construction and removed only by
// closing the last entry. The chain is what routes a yield to the
// immediate resumer of the running fiber rather than to the root, which is
// what makes fibers-within-fibers work.
//
// A Chain must be confined to one logical flow of control. It holds no
// locks; sharing one across concurrently running goroutines is undefined.
type Chain struct {
	list []*Fiber
	cur  int
}

// NewChain creates a call chain seeded with its root sentinel.
func NewChain() *Chain {
	c := &Chain{}
	root := &Fiber{
		chain:    c,
		finished: true,
		serial:   nextSerial(),
	}
	c.list = []*Fiber{root}
	return c
}

// Yield suspends the currently running fiber and returns control to its
// immediate resumer, which need not be the root. Returns ErrNotInFiber
// when no fiber is running above the root.
//
// Yield returns nil when the fiber is next resumed, at the point
// immediately after the call.
func (c *Chain) Yield() error {
	if len(c.list) <= 1 || c.cur == 0 {
		return ErrNotInFiber
	}
	f := c.list[c.cur]
	c.cur = f.index - 1
	f.ctx.leave()
	if f.released.Load() != 0 {
		panic(errReleased)
	}
	return nil
}

// Current returns the fiber actively executing, or nil when the root
// context is executing.
func (c *Chain) Current() *Fiber {
	if c.cur == 0 {
		return nil
	}
	return c.list[c.cur]
}

// Live returns the number of live fibers on the chain, root excluded.
func (c *Chain) Live() int {
	return len(c.list) - 1
}

// Close tears the chain down. All fibers must already be closed; a chain
// with live entries is a lifecycle violation and panics. The chain must
// not be used afterwards.
func (c *Chain) Close() {
	if len(c.list) > 1 {
		panic("fiber: chain closed with live fibers")
	}
	c.list = nil
}
