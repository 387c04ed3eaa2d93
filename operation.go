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
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/perfkit/opstat/internal/striped"
)

// New constructs an Operation statistic over the given closed outcome set.
// The set must be non-empty and free of duplicates; it is fixed for the
// lifetime of the statistic, with exactly one accumulator created per
// outcome.
func New[T comparable](opts Opts, outcomes []T) (Operation[T], error) {
	if err := multierr.Append(opts.validate(), validateOutcomes(outcomes)); err != nil {
		return nil, err
	}

	index := make(map[T]int, len(outcomes))
	counts := make([]*striped.Adder, len(outcomes))
	for i, out := range outcomes {
		index[out] = i
		counts[i] = striped.New()
	}
	return &operation[T]{
		name:     opts.Name,
		tags:     opts.copyTags(),
		props:    opts.copyProperties(),
		outcomes: slices.Clone(outcomes),
		index:    index,
		counts:   counts,
		logger:   opts.logger(),
	}, nil
}

// Must constructs an Operation statistic. It panics if it encounters an
// error.
func Must[T comparable](opts Opts, outcomes []T) Operation[T] {
	op, err := New(opts, outcomes)
	if err != nil {
		panic(fmt.Sprintf("failed to create statistic with options %+v: %v", opts, err))
	}
	return op
}

type operation[T comparable] struct {
	source[T]

	name     string
	tags     []string
	props    map[string]any
	outcomes []T
	index    map[T]int
	counts   []*striped.Adder
	logger   *zap.Logger
}

var _ Operation[int] = (*operation[int])(nil)

func (o *operation[T]) Name() string { return o.name }

func (o *operation[T]) Tags() []string { return slices.Clone(o.tags) }

func (o *operation[T]) Properties() map[string]any {
	props := make(map[string]any, len(o.props))
	for k, v := range o.props {
		props[k] = v
	}
	return props
}

func (o *operation[T]) Outcomes() []T { return slices.Clone(o.outcomes) }

func (o *operation[T]) Count(result T) (int64, error) {
	i, ok := o.index[result]
	if !ok {
		return 0, o.notAnOutcome(result)
	}
	return o.counts[i].Load(), nil
}

func (o *operation[T]) Sum(results ...T) (int64, error) {
	adders, err := o.adders(results)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, a := range adders {
		total += a.Load()
	}
	return total, nil
}

func (o *operation[T]) Total() int64 {
	var total int64
	for _, a := range o.counts {
		total += a.Load()
	}
	return total
}

func (o *operation[T]) Statistic(results ...T) (Value, error) {
	adders, err := o.adders(results)
	if err != nil {
		return nil, err
	}
	return liveValue(func() int64 {
		var total int64
		for _, a := range adders {
			total += a.Load()
		}
		return total
	}), nil
}

// adders resolves a subset of outcomes to their accumulators, dropping
// duplicates so that repeated outcomes are not double-counted.
func (o *operation[T]) adders(results []T) ([]*striped.Adder, error) {
	adders := make([]*striped.Adder, 0, len(results))
	seen := make(map[T]struct{}, len(results))
	for _, r := range results {
		i, ok := o.index[r]
		if !ok {
			return nil, o.notAnOutcome(r)
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		adders = append(adders, o.counts[i])
	}
	return adders, nil
}

// Begin relays the start of an operation to every currently registered
// derived observer. It never touches a counter.
func (o *operation[T]) Begin() {
	for _, obs := range o.Derived() {
		o.emitBegin(obs)
	}
}

// End records a completion: the outcome's accumulator is incremented
// first, then the event is relayed to every currently registered derived
// observer with the parameter values passed through unmodified. Passing a
// value outside the statistic's outcome set is a programming error and
// panics.
func (o *operation[T]) End(result T, values ...int64) {
	i, ok := o.index[result]
	if !ok {
		panic(o.notAnOutcome(result).Error())
	}
	o.counts[i].Inc()
	for _, obs := range o.Derived() {
		o.emitEnd(obs, result, values)
	}
}

// A panicking observer is isolated so that its siblings still receive the
// event; the failure is reported through the logger instead of the caller.
func (o *operation[T]) emitBegin(obs Observer[T]) {
	defer o.recoverObserver()
	obs.Begin()
}

func (o *operation[T]) emitEnd(obs Observer[T], result T, values []int64) {
	defer o.recoverObserver()
	obs.End(result, values...)
}

func (o *operation[T]) recoverObserver() {
	if r := recover(); r != nil {
		o.logger.Error("Derived observer panicked during event delivery.",
			zap.String("statistic", o.name),
			zap.Any("panic", r))
	}
}

func (o *operation[T]) notAnOutcome(result T) error {
	return fmt.Errorf("%v is not an outcome of statistic %q", result, o.name)
}

// String renders the current per-outcome counts in construction order. The
// format is for humans and logs, not for machines.
func (o *operation[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, out := range o.outcomes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v=%d", out, o.counts[i].Load())
	}
	sb.WriteByte('}')
	return sb.String()
}
