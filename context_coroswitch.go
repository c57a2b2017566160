// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !fiber_handoff

package fiber

import (
	"unsafe"
)

// Default backend: execution states are swapped directly on the Go
// runtime's coroutine primitive. A switch transfers the execution point
// only; no scheduler round-trip, no channel, no parked goroutine.

var _ unsafe.Pointer

// coroutine is the runtime's opaque coroutine instance.
type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)

// machineContext is one stored executable state. The runtime handle always
// designates "the other side" of the pair, so enter and leave are the same
// swap issued from opposite sides.
type machineContext struct {
	c *coroutine
}

// newMachineContext binds entry to a fresh execution context. The first
// enter begins executing entry from the top of its private stack; when
// entry returns, the runtime switches back to the last resumer.
func newMachineContext(entry func()) *machineContext {
	m := &machineContext{}
	m.c = newcoro(func(*coroutine) {
		entry()
	})
	return m
}

// enter saves the caller's execution state and restores the fiber side,
// resuming wherever it last suspended. Returns when the fiber side calls
// leave or its entry function returns.
func (m *machineContext) enter() {
	coroswitch(m.c)
}

// leave saves the fiber side's execution state and restores the resumer.
// Returns at the next enter.
func (m *machineContext) leave() {
	coroswitch(m.c)
}
