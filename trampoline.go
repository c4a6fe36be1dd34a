// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// StepFunc advances a trampolined computation by one logical step.
// It returns either [Done] with the final value or [Continue] with the
// input for the next step.
type StepFunc[I, A any] func(I) Step[I, A]

// Run evaluates a trampolined computation to completion.
//
// It calls step with initial. If the result is [Done], the payload is
// returned immediately. If it is [Continue], step is called again with the
// carried input, driven by the loop's own control structure rather than
// recursive calls — Run never invokes itself, which bounds stack usage to
// O(1) regardless of chain length. Each iteration's Step is consumed before
// the next begins, so an unbounded chain needs O(1) space.
//
// step is called exactly once per iteration. A panic inside step unwinds
// out of Run unmodified; no further iterations occur. If step always
// returns Continue, Run never returns — the caller guarantees eventual
// termination, exactly as with unbounded recursion.
//
// Example:
//
//	countdown := func(n int) fun.Step[int, string] {
//	    if n == 0 {
//	        return fun.Done[int]("base")
//	    }
//	    return fun.Continue[int, string](n - 1)
//	}
//	result := fun.Run(5, countdown)
//	// result == "base"
func Run[I, A any](initial I, step StepFunc[I, A]) A {
	in := initial
	for {
		s := step(in)
		if s.done {
			return s.value
		}
		in = s.next
	}
}
