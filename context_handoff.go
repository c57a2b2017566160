// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build fiber_handoff

package fiber

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Portable backend: one goroutine per fiber, parked on a pair of bounded
// lock-free SPSC token queues. A switch is a token handoff: produce on one
// queue, await on the other. Exactly one token is ever outstanding per
// queue; capacity 4 keeps each ring buffer within a single cache line.
const handoffCapacity = 4

// token is the pre-allocated handoff value, avoiding per-switch escape.
var token struct{}

// machineContext is one stored executable state. resumeQ carries control
// from the resumer into the fiber goroutine; yieldQ carries it back.
type machineContext struct {
	resumeQ lfq.SPSC[struct{}]
	yieldQ  lfq.SPSC[struct{}]
}

// newMachineContext binds entry to a fresh goroutine parked until the
// first enter. When entry returns, the goroutine performs the final
// handoff and exits.
func newMachineContext(entry func()) *machineContext {
	m := &machineContext{}
	m.resumeQ.Init(handoffCapacity)
	m.yieldQ.Init(handoffCapacity)
	go func() {
		m.await(&m.resumeQ)
		entry()
		m.produce(&m.yieldQ)
	}()
	return m
}

// enter hands a resume token to the fiber goroutine and waits for it to
// yield, finish, or fail.
func (m *machineContext) enter() {
	m.produce(&m.resumeQ)
	m.await(&m.yieldQ)
}

// leave hands a yield token back to the resumer and waits for the next
// resume token.
func (m *machineContext) leave() {
	m.produce(&m.yieldQ)
	m.await(&m.resumeQ)
}

// produce enqueues one token, backing off on iox.ErrWouldBlock.
func (m *machineContext) produce(q *lfq.SPSC[struct{}]) {
	var bo iox.Backoff
	for q.Enqueue(&token) != nil {
		bo.Wait()
	}
}

// await dequeues one token, backing off on iox.ErrWouldBlock.
func (m *machineContext) await(q *lfq.SPSC[struct{}]) {
	var bo iox.Backoff
	for {
		if _, err := q.Dequeue(); err == nil {
			return
		}
		bo.Wait()
	}
}
