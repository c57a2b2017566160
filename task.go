// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// DefaultBoundStackSize is the stack hint for fibers carrying a bound
// argument tuple.
const DefaultBoundStackSize = 2 << 20

// New1 creates a fiber whose task takes one bound argument. The argument
// is captured by value at construction and delivered exactly once, on
// first execution. Lifecycle, chain, and error semantics are identical to
// Chain.New.
func New1[A any](c *Chain, task func(A), a A) *Fiber {
	return c.NewSized(func() { task(a) }, DefaultBoundStackSize)
}

// New2 creates a fiber whose task takes two bound arguments.
func New2[A, B any](c *Chain, task func(A, B), a A, b B) *Fiber {
	return c.NewSized(func() { task(a, b) }, DefaultBoundStackSize)
}

// New3 creates a fiber whose task takes three bound arguments.
func New3[A, B, C any](c *Chain, task func(A, B, C), a A, b B, cc C) *Fiber {
	return c.NewSized(func() { task(a, b, cc) }, DefaultBoundStackSize)
}
