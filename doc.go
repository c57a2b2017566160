// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fiber provides stackful cooperative coroutines with explicit
// resume/yield control transfer and arbitrary nesting.
//
// A [Fiber] is an independent execution context with its own call stack.
// Control enters a fiber with [Fiber.Resume] and returns to the resumer
// with [Chain.Yield], a normal task return, or a task panic. A fiber may
// itself create and resume further fibers; the [Chain] records the nesting
// order so that yield always returns to the immediate resumer, not to the
// root.
//
// # Architecture
//
//   - Call chain: a [Chain] owns an ordered list of live fibers with a root
//     sentinel at index 0 and a current index pointing at the executing
//     entry. Fibers register at construction time and must be closed in
//     strict LIFO order.
//   - Context switching: a build-time backend behind a uniform capability
//     surface. The default backend swaps execution states directly on the
//     Go runtime's coroutine primitive; the fiber_handoff backend parks one
//     goroutine per fiber on bounded lock-free SPSC token queues
//     ([code.hybscloud.com/lfq]) with adaptive backoff
//     ([code.hybscloud.com/iox]).
//   - Error handling: a panic escaping a task never crosses a raw switch.
//     It is captured into a [TaskError] and delivered exactly once as the
//     error result of the resume that observed it.
//
// # API Topologies
//
//   - Lifecycle: [NewChain], [Chain.New], [Chain.NewSized], [Fiber.Resume],
//     [Chain.Yield], [Fiber.Finished], [Fiber.Close], [Chain.Close].
//   - Bound arguments: [New1], [New2], [New3] capture a typed argument
//     tuple at construction and deliver it once on first execution.
//   - Generators: [NewGenerator], [Generator.Next], [Generator.Seq] pass
//     typed values through slots beside the switch.
//   - Effect bridge: [Spawn], [SpawnExpr], [Exec] run
//     [code.hybscloud.com/kont] computations as fibers, suspending at every
//     effect operation.
//
// # Concurrency
//
// A chain is strictly single-threaded cooperative multitasking: at most one
// fiber (or the root) executes at any instant, switches are synchronous and
// strictly nested, and nothing is locked. A chain and its fibers must not
// be shared across concurrently running goroutines.
//
// # Example
//
//	c := fiber.NewChain()
//	f := c.New(func() {
//		c.Yield()
//	})
//	f.Resume() // runs until the yield
//	f.Resume() // runs to completion
//	f.Close()
package fiber
