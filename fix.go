// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// Fix is the fixed-point operator for anonymous recursion.
// The function f receives the recursive reference self and returns the
// function body; Fix ties the knot so the body can call itself without
// a named declaration.
//
//	factorial := fun.Fix(func(self func(int) int) func(int) int {
//	    return func(n int) int {
//	        if n <= 1 {
//	            return 1
//	        }
//	        return n * self(n-1)
//	    }
//	})
//
// Recursion through Fix uses the native call stack. For recursion that
// must not grow the stack, express the computation as a [StepFunc] and
// evaluate it with [Run].
func Fix[A, B any](f func(self func(A) B) func(A) B) func(A) B {
	var self func(A) B
	self = func(a A) B {
		return f(self)(a)
	}
	return self
}
