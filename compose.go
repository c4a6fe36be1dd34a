// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// Compose is left-to-right function composition.
// Compose(f, g)(x) == g(f(x)).
//
// [Identity] is the left and right identity of Compose, and Compose is
// associative, so composed pipelines can be regrouped freely.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
