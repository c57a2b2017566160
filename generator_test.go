// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"errors"
	"reflect"
	"testing"

	"code.hybscloud.com/fiber"
)

func TestGeneratorDrain(t *testing.T) {
	skipRace(t)
	c := fiber.NewChain()
	g := fiber.NewGenerator(c, func(emit func(int)) {
		for i := 1; i <= 3; i++ {
			emit(i)
		}
	})
	var got []int
	for {
		v, ok := g.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("drained %v, want [1 2 3]", got)
	}
	if err := g.Err(); err != nil {
		t.Fatalf("err got %v, want nil", err)
	}
	// Exhausted: further calls stay false.
	if _, ok := g.Next(); ok {
		t.Fatalf("Next true after exhaustion")
	}
	g.Close()
	c.Close()
}

func TestGeneratorSeq(t *testing.T) {
	skipRace(t)
	c := fiber.NewChain()
	g := fiber.NewGenerator(c, func(emit func(string)) {
		emit("a")
		emit("b")
		emit("c")
	})
	var got []string
	for v := range g.Seq() {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("partial range got %v, want [a b]", got)
	}
	g.Close() // producer still suspended: canceled here
	c.Close()
}

func TestGeneratorErr(t *testing.T) {
	skipRace(t)
	c := fiber.NewChain()
	g := fiber.NewGenerator(c, func(emit func(int)) {
		emit(1)
		panic("producer failure")
	})
	if v, ok := g.Next(); !ok || v != 1 {
		t.Fatalf("first value got (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := g.Next(); ok {
		t.Fatalf("Next true after producer failure")
	}
	var te *fiber.TaskError
	if !errors.As(g.Err(), &te) {
		t.Fatalf("err got %v, want *TaskError", g.Err())
	}
	g.Close()
	c.Close()
}

// TestGeneratorNested runs a generator whose producer consumes an inner
// generator, checking value routing across nesting levels.
func TestGeneratorNested(t *testing.T) {
	skipRace(t)
	c := fiber.NewChain()
	outer := fiber.NewGenerator(c, func(emit func(int)) {
		inner := fiber.NewGenerator(c, func(emit func(int)) {
			emit(10)
			emit(20)
		})
		for {
			v, ok := inner.Next()
			if !ok {
				break
			}
			emit(v + 1)
		}
		inner.Close()
	})
	var got []int
	for v := range outer.Seq() {
		got = append(got, v)
	}
	if !reflect.DeepEqual(got, []int{11, 21}) {
		t.Fatalf("nested values got %v, want [11 21]", got)
	}
	outer.Close()
	c.Close()
}
