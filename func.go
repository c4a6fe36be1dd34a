// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// Identity returns its argument unchanged.
// It is the left and right identity of [Compose]. Its utility is only
// apparent in conjunction with higher-order functions.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that always returns a, irrespective of the
// returned function's argument.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Apply is reverse application: the value comes first, the function second.
// Apply(a, f) == f(a). It reads left to right when threading a value
// through a chain of transformations.
func Apply[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Flip swaps the argument order of a binary function.
// Flip(f)(b, a) == f(a, b).
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
