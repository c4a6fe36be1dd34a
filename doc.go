// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fun provides generic function combinators and a tail-call
// trampoline in Go.
//
// The combinators ([Identity], [Const], [Compose], [Apply], [Flip], [On],
// [Fix]) are ordinary higher-order free functions with no hidden state.
// The trampoline ([Step], [Run]) evaluates a logically recursive
// computation with an iterative loop, keeping stack usage constant
// regardless of recursion depth.
//
// # Combinators
//
//   - [Identity]: returns its argument; identity of [Compose]
//   - [Const]: constant function ignoring its argument
//   - [Compose]: left-to-right composition — Compose(f, g)(x) == g(f(x))
//   - [Apply]: reverse application — Apply(a, f) == f(a)
//   - [Flip]: swaps the arguments of a binary function
//   - [On]: lifts a binary function through a projection
//   - [Fix]: fixed-point operator for anonymous recursion
//
// # Trampoline
//
// A trampolined computation is expressed as a step function that returns a
// [Step]: [Done] with the final value, or [Continue] with the input for the
// next step. [Run] iterates the step function until Done, using the loop's
// own control structure instead of recursive calls — deep chains never grow
// the native call stack.
//
//   - [Step]: two-variant step result ([Done] / [Continue])
//   - [StepFunc]: caller-supplied step function
//   - [Run]: iterative evaluator
//   - [MatchStep]: pattern matching on a Step
//   - [MapStep]: functor map over the Done payload
//
// Run performs no recovery and enforces no iteration bound: a panic in the
// step function unwinds out unchanged, and a step function that never
// returns Done loops forever, exactly as unbounded recursion would.
//
// # Example
//
//	sum := fun.Run([2]int{10, 0}, func(s [2]int) fun.Step[[2]int, int] {
//	    n, acc := s[0], s[1]
//	    if n == 0 {
//	        return fun.Done[[2]int](acc)
//	    }
//	    return fun.Continue[[2]int, int]([2]int{n - 1, acc + n})
//	})
//	// sum == 55
package fun
