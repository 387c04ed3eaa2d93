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
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var errNoName = errors.New("statistic name must not be empty")

// Opts configure an individual statistic.
type Opts struct {
	// Name identifies the statistic, e.g. "cache_get".
	Name string
	// Tags is a set of free-form strings describing the statistic.
	// Duplicates are dropped.
	Tags []string
	// Properties is an opaque key-value context attached to the statistic.
	Properties map[string]any
	// Logger receives reports of misbehaving derived observers. Defaults
	// to a no-op logger.
	Logger *zap.Logger
}

func (o Opts) validate() error {
	if o.Name == "" {
		return errNoName
	}
	return nil
}

// copyTags returns the tag set as a sorted, deduplicated copy.
func (o Opts) copyTags() []string {
	tags := slices.Clone(o.Tags)
	slices.Sort(tags)
	return slices.Compact(tags)
}

func (o Opts) copyProperties() map[string]any {
	props := make(map[string]any, len(o.Properties))
	for k, v := range o.Properties {
		props[k] = v
	}
	return props
}

func (o Opts) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// validateOutcomes checks the outcome set a statistic is constructed over:
// it must be non-empty and free of duplicates. All violations are reported
// at once.
func validateOutcomes[T comparable](outcomes []T) error {
	var err error
	if len(outcomes) == 0 {
		err = multierr.Append(err, errors.New("statistic must have at least one outcome"))
	}
	seen := make(map[T]struct{}, len(outcomes))
	for _, out := range outcomes {
		if _, ok := seen[out]; ok {
			err = multierr.Append(err, fmt.Errorf("duplicate outcome %v", out))
			continue
		}
		seen[out] = struct{}{}
	}
	return err
}
