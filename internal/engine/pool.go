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

package engine

import (
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesscorps/corvid/internal/config"
	myLogging "github.com/chesscorps/corvid/internal/logging"
	"github.com/chesscorps/corvid/internal/position"
	"github.com/chesscorps/corvid/internal/search"
	"github.com/chesscorps/corvid/internal/tt"
	. "github.com/chesscorps/corvid/internal/types"
	"github.com/chesscorps/corvid/internal/uciInterface"
	"github.com/chesscorps/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

// Pool runs Threads independent search.Search instances concurrently
// against the same root position. Every worker probes and stores into
// one shared Table; nothing else is shared, so no worker can corrupt
// another's move generation, pv or history state. Resize is not safe
// to call while a search is in flight - stop the pool first exactly
// like resizing the single-threaded search's hash table.
//
// Workers do not hold a UciHandler of their own: only the pool reports
// to the UCI user interface, once per StartSearch, with the aggregated
// winner. Otherwise every worker would print its own "bestmove" and
// "info" lines for what the UCI side expects to be a single search.
type Pool struct {
	log *logging.Logger

	tt       *tt.Table
	workers  []*worker
	stopFlag *util.StopFlag

	resultMu   sync.Mutex
	lastResult *search.Result
	// searching is held from StartSearch until lastResult is recorded
	searching sync.WaitGroup

	uciHandlerPtr uciInterface.UciDriver
}

// NewPool creates a pool of threads workers sharing a transposition
// table sized ttSizeInMB.
func NewPool(threads int, ttSizeInMB int) *Pool {
	p := &Pool{log: myLogging.GetLog(), stopFlag: util.NewStopFlag(false)}
	p.Resize(threads, ttSizeInMB)
	return p
}

// Threads reports how many workers are currently configured.
func (p *Pool) Threads() int { return len(p.workers) }

// SetUciHandler installs the UCI handler results are reported to.
func (p *Pool) SetUciHandler(h uciInterface.UciDriver) {
	p.uciHandlerPtr = h
}

// GetUciHandlerPtr returns the current UciHandler or nil if none is set.
func (p *Pool) GetUciHandlerPtr() uciInterface.UciDriver {
	return p.uciHandlerPtr
}

// Resize replaces the worker set with n workers sharing a freshly sized
// transposition table. Must not be called while a search is running.
func (p *Pool) Resize(threads int, ttSizeInMB int) {
	if threads < 1 {
		threads = 1
	}
	p.tt = tt.NewTable(ttSizeInMB)
	p.workers = make([]*worker, threads)
	for i := 0; i < threads; i++ {
		p.workers[i] = newWorker(i)
		p.workers[i].s.UseSharedTT(p.tt)
	}
	p.log.Infof("Lazy-SMP pool sized to %d worker(s), %d MB shared hash", threads, ttSizeInMB)
}

// SetThreads resizes the pool to n workers, keeping the current hash
// size. Ignored with a warning while a search is running.
func (p *Pool) SetThreads(n int) {
	if p.IsSearching() {
		msg := "Can't change Threads while searching."
		p.sendInfoString(msg)
		p.log.Warning(msg)
		return
	}
	p.Resize(n, p.tt.SizeInMB())
}

// IsReady warms up every worker (opening book, shared hash) and then
// signals the uciHandler that the pool is ready to search.
func (p *Pool) IsReady() {
	var wg sync.WaitGroup
	for _, w := range p.workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.s.Initialize()
		}()
	}
	wg.Wait()
	if p.uciHandlerPtr != nil {
		p.uciHandlerPtr.SendReadyOk()
	} else {
		p.log.Debug("uci >> readyok")
	}
}

// arrival pairs a worker's finished Result with the order it landed in,
// so the tie-break rule can prefer whichever worker finished first.
type arrival struct {
	seq    int
	result search.Result
}

// StartSearch launches every worker's full iterative-deepening search
// against p and sl in the background and reports the aggregated
// winner to the UCI handler once every worker has returned. Mirrors
// search.Search.StartSearch's contract: returns once workers are
// launched, not once they finish.
func (p *Pool) StartSearch(pos position.Position, sl search.Limits) {
	p.searching.Add(1)
	p.stopFlag.Store(false)
	for _, w := range p.workers {
		w.s.StartSearch(pos, w.depthFor(sl))
	}
	go func() {
		defer p.searching.Done()
		result := p.search()
		p.resultMu.Lock()
		p.lastResult = result
		p.resultMu.Unlock()
		if p.uciHandlerPtr != nil {
			p.uciHandlerPtr.SendResult(result.BestMove, result.PonderMove)
		}
	}()
}

// WaitWhileSearching blocks until no worker is still searching and the
// aggregated result of the last StartSearch has been recorded.
func (p *Pool) WaitWhileSearching() {
	p.searching.Wait()
	for _, w := range p.workers {
		w.s.WaitWhileSearching()
	}
}

// LastSearchResult returns a copy of the aggregated result of the most
// recently completed StartSearch call.
func (p *Pool) LastSearchResult() search.Result {
	p.resultMu.Lock()
	defer p.resultMu.Unlock()
	return *p.lastResult
}

// search waits for every started worker to finish and returns the
// aggregated best result using the lazy-SMP tie-break rule: prefer the
// deepest completed iteration; among equal depths prefer an exact score
// over a fail-low/fail-high bound; among two exact results at equal
// depth prefer whichever arrived first.
func (p *Pool) search() *search.Result {
	n := len(p.workers)
	results := make(chan arrival, n)

	var seqMu sync.Mutex
	seq := 0
	nextSeq := func() int {
		seqMu.Lock()
		defer seqMu.Unlock()
		seq++
		return seq
	}

	var wg sync.WaitGroup
	for _, w := range p.workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.s.WaitWhileSearching()
			results <- arrival{seq: nextSeq(), result: w.s.LastSearchResult()}
		}()
	}

	wg.Wait()
	close(results)

	var best *arrival
	for a := range results {
		a := a
		if best == nil || betterResult(a, *best) {
			best = &a
		}
	}
	return &best.result
}

// betterResult reports whether candidate should replace current as the
// pool's aggregated best result.
func betterResult(candidate, current arrival) bool {
	if candidate.result.SearchDepth != current.result.SearchDepth {
		return candidate.result.SearchDepth > current.result.SearchDepth
	}
	candExact := candidate.result.Bound == EXACT
	currExact := current.result.Bound == EXACT
	if candExact != currExact {
		return candExact
	}
	return candidate.seq < current.seq
}

// StopSearch signals every worker to stop its current search as
// quickly as possible and waits for all of them to return.
func (p *Pool) StopSearch() {
	p.stopFlag.Store(true)
	var wg sync.WaitGroup
	for _, w := range p.workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.s.StopSearch()
		}()
	}
	wg.Wait()
}

// PonderHit forwards a ponderhit to every worker currently pondering.
func (p *Pool) PonderHit() {
	for _, w := range p.workers {
		w.s.PonderHit()
	}
}

// IsSearching reports whether any worker is still searching.
func (p *Pool) IsSearching() bool {
	for _, w := range p.workers {
		if w.s.IsSearching() {
			return true
		}
	}
	return false
}

// NewGame resets every worker for a new game and clears the shared
// transposition table.
func (p *Pool) NewGame() {
	p.tt.ClearHash()
	for _, w := range p.workers {
		w.s.NewGame()
	}
}

// ClearHash clears the shared transposition table. Ignored with a
// warning while a search is running.
func (p *Pool) ClearHash() {
	if p.IsSearching() {
		msg := "Can't clear hash while searching."
		p.sendInfoString(msg)
		p.log.Warning(msg)
		return
	}
	p.tt.ClearHash()
	p.sendInfoString("Hash cleared")
}

// ResizeCache resizes and clears the shared transposition table to the
// size currently configured in config.Settings.Search.TTSize. Ignored
// with a warning while a search is running.
func (p *Pool) ResizeCache() {
	if p.IsSearching() {
		msg := "Can't resize hash while searching."
		p.sendInfoString(msg)
		p.log.Warning(msg)
		return
	}
	sizeInMByte := config.Settings.Search.TTSize
	if sizeInMByte == 0 {
		sizeInMByte = 64
	}
	p.Resize(len(p.workers), sizeInMByte)
	p.sendInfoString(out.Sprintf("Hash resized: %s", p.tt.String()))
}

func (p *Pool) sendInfoString(msg string) {
	if p.uciHandlerPtr != nil {
		p.uciHandlerPtr.SendInfoString(msg)
	}
}
