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
	"sync"

	"go.uber.org/zap"
)

// A Registry is a named collection of statistics, usually scoped to a
// single subsystem. It enforces name uniqueness, layers its own tags onto
// every statistic registered through it, and supplies the logger used to
// report misbehaving derived observers.
type Registry struct {
	mu         sync.RWMutex
	names      []string // registration order, for deterministic dumps
	statistics map[string]fmt.Stringer

	tags   []string
	logger *zap.Logger
}

// A RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// Tagged adds constant tags to a Registry. All statistics registered
// through the Registry inherit its tags.
func Tagged(tags ...string) RegistryOption {
	return func(r *Registry) {
		r.tags = append(r.tags, tags...)
	}
}

// Logger sets the logger handed to every statistic registered through the
// Registry. Statistics that set Opts.Logger themselves keep their own.
func Logger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry constructs a new Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		statistics: make(map[string]fmt.Stringer),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register constructs an Operation statistic over the given outcome set
// and adds it to the Registry. Registration fails if the Registry already
// holds a statistic with the same name.
//
// Register is a free function rather than a method because Go methods
// cannot introduce type parameters.
func Register[T comparable](r *Registry, opts Opts, outcomes []T) (Operation[T], error) {
	opts.Tags = append(slices.Clone(opts.Tags), r.tags...)
	if opts.Logger == nil {
		opts.Logger = r.logger
	}
	op, err := New(opts, outcomes)
	if err != nil {
		return nil, err
	}
	if err := r.add(op.Name(), op); err != nil {
		return nil, err
	}
	return op, nil
}

// MustRegister constructs and registers an Operation statistic. It panics
// if it encounters an error.
func MustRegister[T comparable](r *Registry, opts Opts, outcomes []T) Operation[T] {
	op, err := Register(r, opts, outcomes)
	if err != nil {
		panic(fmt.Sprintf("failed to register statistic with options %+v: %v", opts, err))
	}
	return op
}

// Names returns the names of all registered statistics in registration
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// String renders every registered statistic on its own line, in
// registration order. The format is for humans and logs, not for machines.
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	for _, name := range r.names {
		fmt.Fprintf(&sb, "%s: %s\n", name, r.statistics[name].String())
	}
	return sb.String()
}

func (r *Registry) add(name string, s fmt.Stringer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.statistics[name]; ok {
		return fmt.Errorf("statistic %q is already registered", name)
	}
	r.statistics[name] = s
	r.names = append(r.names, name)
	return nil
}
