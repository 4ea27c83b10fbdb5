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

// Package engine implements a lazy-SMP worker pool: several independent
// alpha-beta searches run concurrently against the same position, each
// in its own goroutine with its own Position, move generators, pv
// tables and history/killer state, sharing only a transposition table.
// Workers do not share a stop flag: the pool stops them together by
// calling each worker's own StopSearch.
package engine

import (
	"github.com/chesscorps/corvid/internal/search"
)

// worker owns one lazy-SMP search lane. Everything it touches besides
// the pool's shared transposition table - its position, its move
// generators, its pv tables, its history and killer state - belongs to
// this worker alone; search.Search already isolates all of that per
// instance, so a worker is little more than a labeled handle to one.
type worker struct {
	id int
	s  *search.Search
}

func newWorker(id int) *worker {
	return &worker{id: id, s: search.NewSearch()}
}

// depthFor computes this worker's depth target for the lazy-SMP
// staggering scheme given the pool's base limits: the first worker
// searches the requested depth, odd-indexed workers search one ply
// deeper so their transposition table entries are already seeded by
// the time the main line reaches that depth.
func (w *worker) depthFor(sl search.Limits) search.Limits {
	if w.id > 0 && w.id%2 == 1 && sl.Depth > 0 {
		sl.Depth++
	}
	return sl
}
