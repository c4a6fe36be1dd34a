// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fun

// Step is the result of one trampoline iteration: either Done with the
// final value, or Continue with the next input for the step function.
//
// A Step is produced by one invocation of the step function and consumed
// by the next iteration of [Run] (or, for Done, returned to the caller).
// The zero value is Continue of the zero input; construct Steps with
// [Done] and [Continue] rather than relying on it.
type Step[I, A any] struct {
	done  bool
	value A
	next  I
}

// Done creates a terminal Step carrying the final value.
func Done[I, A any](v A) Step[I, A] {
	return Step[I, A]{done: true, value: v}
}

// Continue creates a non-terminal Step carrying the next input.
func Continue[I, A any](next I) Step[I, A] {
	return Step[I, A]{done: false, next: next}
}

// IsDone returns true if this is a Done value.
func (s Step[I, A]) IsDone() bool {
	return s.done
}

// Value returns the Done payload and true, or zero and false.
func (s Step[I, A]) Value() (A, bool) {
	if s.done {
		return s.value, true
	}
	var zero A
	return zero, false
}

// Next returns the Continue payload and true, or zero and false.
func (s Step[I, A]) Next() (I, bool) {
	if !s.done {
		return s.next, true
	}
	var zero I
	return zero, false
}

// MatchStep pattern matches on the Step, calling onContinue or onDone.
func MatchStep[I, A, T any](s Step[I, A], onContinue func(I) T, onDone func(A) T) T {
	if s.done {
		return onDone(s.value)
	}
	return onContinue(s.next)
}

// MapStep applies a function to the Done payload.
// Continue values pass through with the input unchanged.
func MapStep[I, A, B any](s Step[I, A], f func(A) B) Step[I, B] {
	if s.done {
		return Done[I](f(s.value))
	}
	return Continue[I, B](s.next)
}
