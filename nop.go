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

// Nop returns a no-op Operation: events are discarded, counts stay zero,
// and observers are never retained or notified. It lets call sites disable
// instrumentation without nil checks.
func Nop[T comparable]() Operation[T] { return nop[T]{} }

type nop[T comparable] struct{}

func (nop[T]) Begin()                        {}
func (nop[T]) End(T, ...int64)               {}
func (nop[T]) Name() string                  { return "" }
func (nop[T]) Tags() []string                { return nil }
func (nop[T]) Properties() map[string]any    { return nil }
func (nop[T]) Outcomes() []T                 { return nil }
func (nop[T]) Count(T) (int64, error)        { return 0, nil }
func (nop[T]) Sum(...T) (int64, error)       { return 0, nil }
func (nop[T]) Total() int64                  { return 0 }
func (nop[T]) Statistic(...T) (Value, error) { return zeroValue{}, nil }
func (nop[T]) AddDerived(Observer[T])        {}
func (nop[T]) RemoveDerived(Observer[T])     {}
func (nop[T]) Derived() []Observer[T]        { return nil }
func (nop[T]) String() string                { return "{}" }
