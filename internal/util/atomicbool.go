//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"sync/atomic"
)

// StopFlag is an atomic cancellation flag; engine.Pool keeps one for a
// parallel search (its workers stop through their own search's flag, not
// this one). Any goroutine may Load it; all operations are atomic. Built directly on
// sync/atomic.Bool rather than a hand-rolled uint32, since the standard
// library has carried a native atomic Bool since Go 1.19.
type StopFlag struct{ v atomic.Bool }

// NewStopFlag creates a StopFlag with the given initial value.
func NewStopFlag(initial bool) *StopFlag {
	f := &StopFlag{}
	f.v.Store(initial)
	return f
}

// Load atomically reads the flag.
func (f *StopFlag) Load() bool { return f.v.Load() }

// CAS is an atomic compare-and-swap.
func (f *StopFlag) CAS(old, new bool) bool { return f.v.CompareAndSwap(old, new) }

// Store atomically sets the flag.
func (f *StopFlag) Store(new bool) { f.v.Store(new) }

// Swap sets the given value and returns the previous value.
func (f *StopFlag) Swap(new bool) bool { return f.v.Swap(new) }

// Toggle atomically negates the flag and returns the previous value.
func (f *StopFlag) Toggle() bool {
	for {
		old := f.Load()
		if f.CAS(old, !old) {
			return old
		}
	}
}
