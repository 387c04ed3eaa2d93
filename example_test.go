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

package opstat_test

import (
	"fmt"

	"github.com/perfkit/opstat"
)

type lookupOutcome int

const (
	lookupHit lookupOutcome = iota
	lookupMiss
)

func (o lookupOutcome) String() string {
	if o == lookupHit {
		return "HIT"
	}
	return "MISS"
}

func Example() {
	stat := opstat.Must(opstat.Opts{
		Name: "cache_get",
		Tags: []string{"store"},
	}, []lookupOutcome{lookupHit, lookupMiss})

	for i := 0; i < 3; i++ {
		stat.Begin()
		stat.End(lookupHit)
	}
	stat.Begin()
	stat.End(lookupMiss, 125 /* latency in microseconds */)

	hits, _ := stat.Count(lookupHit)
	fmt.Println(hits, stat.Total())
	fmt.Println(stat)
	// Output:
	// 3 4
	// {HIT=3, MISS=1}
}
