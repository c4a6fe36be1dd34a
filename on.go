// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// On lifts a binary function through a unary projection.
// On(combine, project)(x, y) == combine(project(x), project(y)).
//
// The common use is building comparison functions from key extractors:
//
//	byLen := fun.On(func(a, b int) int { return a - b }, func(s string) int {
//	    return len(s)
//	})
//	slices.SortFunc(words, byLen)
func On[A, B, C any](combine func(B, B) C, project func(A) B) func(A, A) C {
	return func(x, y A) C {
		return combine(project(x), project(y))
	}
}
