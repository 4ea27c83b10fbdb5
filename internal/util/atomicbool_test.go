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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopFlagInitial(t *testing.T) {
	f := NewStopFlag(false)
	assert.False(t, f.Load())

	f2 := NewStopFlag(true)
	assert.True(t, f2.Load())
}

func TestStopFlagStoreAndLoad(t *testing.T) {
	f := NewStopFlag(false)
	f.Store(true)
	assert.True(t, f.Load())
	f.Store(false)
	assert.False(t, f.Load())
}

func TestStopFlagSwap(t *testing.T) {
	f := NewStopFlag(false)
	old := f.Swap(true)
	assert.False(t, old)
	assert.True(t, f.Load())
}

func TestStopFlagCAS(t *testing.T) {
	f := NewStopFlag(false)
	assert.True(t, f.CAS(false, true))
	assert.True(t, f.Load())
	assert.False(t, f.CAS(false, true))
}

func TestStopFlagToggle(t *testing.T) {
	f := NewStopFlag(false)
	assert.False(t, f.Toggle())
	assert.True(t, f.Load())
	assert.True(t, f.Toggle())
	assert.False(t, f.Load())
}

func TestStopFlagConcurrentToggle(t *testing.T) {
	f := NewStopFlag(false)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Toggle()
		}()
	}
	wg.Wait()
	// an even number of toggles returns the flag to its starting value
	assert.False(t, f.Load())
}
