// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun_test

import (
	"testing"

	"code.hybscloud.com/fun"
)

func TestFixFactorial(t *testing.T) {
	factorial := fun.Fix(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n <= 1 {
				return 1
			}
			return n * self(n-1)
		}
	})
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, c := range cases {
		if got := factorial(c.n); got != c.want {
			t.Errorf("factorial(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestFixFibonacci(t *testing.T) {
	fib := fun.Fix(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n < 2 {
				return n
			}
			return self(n-1) + self(n-2)
		}
	})
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for n, w := range want {
		if got := fib(n); got != w {
			t.Errorf("fib(%d) = %v, want %v", n, got, w)
		}
	}
}

func TestFixTypeChange(t *testing.T) {
	// Knot-tying works across distinct input and output types.
	stars := fun.Fix(func(self func(int) string) func(int) string {
		return func(n int) string {
			if n == 0 {
				return ""
			}
			return "*" + self(n-1)
		}
	})
	if got := stars(4); got != "****" {
		t.Errorf("stars(4) = %q, want \"****\"", got)
	}
}
