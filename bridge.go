// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"code.hybscloud.com/kont"
)

// Proc is an effectful computation running as a fiber. The computation
// suspends the fiber at every effect operation; the resumer inspects Op,
// answers with Reply, and drives with Resume. The pending operation and
// the resumption value travel through slots on the Proc, beside the
// context switch.
type Proc[R any] struct {
	fib    *Fiber
	op     kont.Operation
	reply  kont.Resumed
	result R
	done   bool
}

// Spawn runs a Cont-world computation as a fiber on the chain.
func Spawn[R any](c *Chain, m kont.Eff[R]) *Proc[R] {
	p := &Proc[R]{}
	p.fib = c.New(func() {
		result, susp := kont.Step(m)
		p.drive(c, result, susp)
	})
	return p
}

// SpawnExpr runs an Expr-world computation as a fiber on the chain.
func SpawnExpr[R any](c *Chain, m kont.Expr[R]) *Proc[R] {
	p := &Proc[R]{}
	p.fib = c.New(func() {
		result, susp := kont.StepExpr(m)
		p.drive(c, result, susp)
	})
	return p
}

// drive yields at each effect suspension and resumes the computation with
// the reply slot's value until completion. Runs on the fiber side.
func (p *Proc[R]) drive(c *Chain, result R, susp *kont.Suspension[R]) {
	for susp != nil {
		p.op = susp.Op()
		if err := c.Yield(); err != nil {
			panic(err)
		}
		v := p.reply
		p.op = nil
		p.reply = nil
		result, susp = susp.Resume(v)
	}
	p.result = result
	p.done = true
}

// Resume switches into the computation until its next effect suspension,
// completion, or failure. Same contract as Fiber.Resume.
func (p *Proc[R]) Resume() error {
	return p.fib.Resume()
}

// Op returns the effect operation the computation is suspended on, or nil
// when it is not suspended on one.
func (p *Proc[R]) Op() kont.Operation { return p.op }

// Reply stores the resumption value for the pending operation. It is
// consumed by the next Resume.
func (p *Proc[R]) Reply(v kont.Resumed) { p.reply = v }

// Result returns the computation's final value and whether it completed.
func (p *Proc[R]) Result() (R, bool) { return p.result, p.done }

// Finished reports whether the underlying fiber has finished or failed.
func (p *Proc[R]) Finished() bool { return p.fib.Finished() }

// Fiber returns the underlying fiber.
func (p *Proc[R]) Fiber() *Fiber { return p.fib }

// Close closes the underlying fiber, subject to the chain's LIFO
// discipline.
func (p *Proc[R]) Close() {
	p.fib.Close()
}

// Exec runs a Cont-world computation as a fiber to completion, answering
// every effect operation with dispatch. Returns the computation's result,
// or the *TaskError if it failed.
func Exec[R any](c *Chain, m kont.Eff[R], dispatch func(kont.Operation) kont.Resumed) (R, error) {
	p := Spawn(c, m)
	defer p.Close()
	return execProc(p, dispatch)
}

// ExecExpr runs an Expr-world computation as a fiber to completion,
// answering every effect operation with dispatch.
func ExecExpr[R any](c *Chain, m kont.Expr[R], dispatch func(kont.Operation) kont.Resumed) (R, error) {
	p := SpawnExpr(c, m)
	defer p.Close()
	return execProc(p, dispatch)
}

func execProc[R any](p *Proc[R], dispatch func(kont.Operation) kont.Resumed) (R, error) {
	for {
		if err := p.Resume(); err != nil {
			var zero R
			return zero, err
		}
		if p.Finished() {
			r, _ := p.Result()
			return r, nil
		}
		p.Reply(dispatch(p.Op()))
	}
}
