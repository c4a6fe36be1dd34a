// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun_test

import (
	"code.hybscloud.com/fun"
	"testing"
)

// countTo16 is a named function so the measurement excludes closure capture.
func countTo16(n int) fun.Step[int, int] {
	if n >= 16 {
		return fun.Done[int](n)
	}
	return fun.Continue[int, int](n + 1)
}

func TestRunAllocations(t *testing.T) {
	// The evaluator owns no heap state: Step values over value types
	// stay on the stack, so a full run performs zero allocations.
	allocs := testing.AllocsPerRun(100, func() {
		_ = fun.Run(0, countTo16)
	})
	if allocs > 0 {
		t.Errorf("Run(countTo16) allocs = %v; want 0", allocs)
	}
}
