// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/fiber"
)

// mustResume resumes f and fails the test on any error.
func mustResume(tb testing.TB, f *fiber.Fiber) {
	tb.Helper()
	if err := f.Resume(); err != nil {
		tb.Fatalf("resume: %v", err)
	}
}

// mustYield yields from inside a task and panics on error, surfacing the
// failure through the resumer as a TaskError.
func mustYield(c *fiber.Chain) {
	if err := c.Yield(); err != nil {
		panic(err)
	}
}

// must panics on error. For use inside tasks, where t.Fatalf would Goexit
// the wrong goroutine; the panic surfaces through Resume as a TaskError.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// drain resumes f until it finishes, returning the number of resumes.
func drain(tb testing.TB, f *fiber.Fiber) int {
	tb.Helper()
	n := 0
	for !f.Finished() {
		mustResume(tb, f)
		n++
	}
	return n
}

// expectPanic runs fn and fails the test unless it panics with a value
// whose string form contains want.
func expectPanic(tb testing.TB, want string, fn func()) {
	tb.Helper()
	defer func() {
		r := recover()
		if r == nil {
			tb.Fatalf("expected panic containing %q, got none", want)
		}
		if s, ok := r.(string); !ok || !strings.Contains(s, want) {
			tb.Fatalf("panic got %v, want substring %q", r, want)
		}
	}()
	fn()
}
