// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrFinished is returned by Resume when the fiber's task has already
	// completed or already delivered a failure.
	ErrFinished = errors.New("fiber: already finished")

	// ErrNotInFiber is returned by Yield when the call chain has no active
	// fiber above the root.
	ErrNotInFiber = errors.New("fiber: not in a fiber")

	// errReleased unwinds a canceled fiber. The trampoline swallows it;
	// callers never observe it.
	errReleased = errors.New("fiber: fiber released")
)

// TaskError is a panic that escaped a fiber's task body. The fiber is
// marked finished at the point of the panic; the error is delivered as the
// result of the Resume call that observed it, never through a raw context
// switch.
type TaskError struct {
	value any
	stack []byte
}

func newTaskError(v any) *TaskError {
	return &TaskError{
		value: v,
		stack: debug.Stack(),
	}
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("fiber: task failure: %v", e.value)
}

// Value returns the original panic value.
func (e *TaskError) Value() any { return e.value }

// Unwrap returns the panic value if it was an error, nil otherwise.
func (e *TaskError) Unwrap() error {
	err, ok := e.value.(error)
	if !ok {
		return nil
	}
	return err
}

// ErrorWithStack formats the failure together with the stack captured on
// the fiber's own stack at panic time.
func (e *TaskError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", e.value, e.stack)
}
