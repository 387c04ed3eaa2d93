// Copyright (c) 2025 The opstat Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package opstat

import (
	"sync"

	"go.uber.org/atomic"
)

// A source maintains the derived-observer membership of a statistic as a
// copy-on-write snapshot: add and remove serialize on a mutex and publish
// a fresh slice, while the event-emitting hot path loads the current
// snapshot with a single atomic read and iterates it lock-free. A snapshot
// is never mutated after it is published.
type source[T comparable] struct {
	mu        sync.Mutex // guards mutation, not iteration
	observers atomic.Pointer[[]Observer[T]]
}

// AddDerived registers an observer. Membership has set semantics: adding
// an observer that is already registered is a no-op.
func (s *source[T]) AddDerived(observer Observer[T]) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snapshot()
	for _, o := range cur {
		if o == observer {
			return
		}
	}
	next := make([]Observer[T], len(cur)+1)
	copy(next, cur)
	next[len(cur)] = observer
	s.observers.Store(&next)
}

// RemoveDerived deregisters an observer. Removal is best-effort with
// respect to in-flight events: an emission that loaded its snapshot just
// before removal may still deliver one event to the removed observer.
func (s *source[T]) RemoveDerived(observer Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snapshot()
	for i, o := range cur {
		if o == observer {
			next := make([]Observer[T], 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			s.observers.Store(&next)
			return
		}
	}
}

// Derived returns the current membership in registration order. The
// returned slice is the live snapshot; callers must not modify it.
func (s *source[T]) Derived() []Observer[T] {
	return s.snapshot()
}

func (s *source[T]) snapshot() []Observer[T] {
	p := s.observers.Load()
	if p == nil {
		return nil
	}
	return *p
}
