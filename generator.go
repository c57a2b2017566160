// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import "iter"

// Generator is a typed value-passing layer over a fiber. The producer
// calls emit, which stores the value in a slot on the generator and yields;
// the consumer drains one value per Next. Values travel through the slot,
// never through the context switch itself.
type Generator[V any] struct {
	fib *Fiber
	v   V
	ok  bool
	err error
}

// NewGenerator creates a fiber running fn and returns its consumer handle.
// fn's emit suspends the producer until the next Next call.
func NewGenerator[V any](c *Chain, fn func(emit func(V))) *Generator[V] {
	g := &Generator[V]{}
	g.fib = c.New(func() {
		fn(func(v V) {
			g.v = v
			g.ok = true
			if err := c.Yield(); err != nil {
				panic(err)
			}
		})
	})
	return g
}

// Next resumes the producer until it emits, finishes, or fails.
// Returns (value, true) for an emitted value; (zero, false) once the
// producer has finished or failed, after which Err reports any failure.
func (g *Generator[V]) Next() (V, bool) {
	var zero V
	if g.err != nil || g.fib.Finished() {
		return zero, false
	}
	g.ok = false
	if err := g.fib.Resume(); err != nil {
		g.err = err
		return zero, false
	}
	if !g.ok {
		return zero, false
	}
	return g.v, true
}

// Err returns the producer's failure, if any, observed by Next.
func (g *Generator[V]) Err() error { return g.err }

// Fiber returns the underlying fiber.
func (g *Generator[V]) Fiber() *Fiber { return g.fib }

// Close closes the underlying fiber, canceling the producer if it is still
// suspended. Subject to the chain's LIFO discipline.
func (g *Generator[V]) Close() {
	g.fib.Close()
}

// Seq returns a range view over the remaining values. Breaking out of the
// range leaves the producer suspended; the generator must still be closed.
func (g *Generator[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := g.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
