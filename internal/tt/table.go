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

package tt

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/chesscorps/corvid/internal/logging"
	. "github.com/chesscorps/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximal memory usage of the table.
	MaxSizeInMB = 65_536
	// slotSize is the size in bytes of a single atomic slot.
	slotSize = uint64(unsafe.Sizeof(atomic.Uint64{}))
)

// Table is a lock-free, two-table transposition cache safe for concurrent
// Probe/Store from any number of search goroutines. The always-replace
// table absorbs every store so a search never loses a result to a
// younger, shallower one; the depth-preferred table only gives up a slot
// to an entry that searched deeper or whose occupant is stale.
//
// Resize and ClearHash are NOT safe to call while any goroutine might be
// probing or storing - callers must quiesce all search workers first,
// exactly like the single-table design this replaces.
type Table struct {
	log *logging.Logger

	alwaysReplace  []atomic.Uint64
	depthPreferred []atomic.Uint64
	mask           uint64
	entriesPerHalf uint64
	sizeInByte     uint64

	generation atomic.Uint32

	puts    atomic.Uint64
	probes  atomic.Uint64
	hits    atomic.Uint64
	misses  atomic.Uint64
	stores  atomic.Uint64
	rejects atomic.Uint64
}

// NewTable creates a Table sized to at most sizeInMByte of memory, split
// evenly between the always-replace and depth-preferred halves.
func NewTable(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize replaces both tables with fresh, empty ones sized for the given
// memory budget. All prior entries are lost.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	totalBytes := uint64(sizeInMByte) * MB
	halfBytes := totalBytes / 2

	entriesPerHalf := uint64(0)
	if halfBytes >= slotSize {
		entriesPerHalf = 1 << uint64(math.Floor(math.Log2(float64(halfBytes/slotSize))))
	}
	t.entriesPerHalf = entriesPerHalf
	if entriesPerHalf == 0 {
		t.mask = 0
	} else {
		t.mask = entriesPerHalf - 1
	}
	t.sizeInByte = 2 * entriesPerHalf * slotSize

	t.alwaysReplace = make([]atomic.Uint64, entriesPerHalf)
	t.depthPreferred = make([]atomic.Uint64, entriesPerHalf)
	t.generation.Store(0)
	t.puts.Store(0)
	t.probes.Store(0)
	t.hits.Store(0)
	t.misses.Store(0)
	t.stores.Store(0)
	t.rejects.Store(0)

	t.log.Info(out.Sprintf("TT Size %d MByte, capacity %d entries per table (requested %d MByte)",
		t.sizeInByte/MB, entriesPerHalf, sizeInMByte))
}

// NewSearch advances the replacement generation. Call once at the start of
// every new root search so depth-preferred entries from the previous
// search are treated as stale and can be overwritten even at equal depth.
func (t *Table) NewSearch() {
	next := (t.generation.Load() + 1) % uint32(maxAge+1)
	t.generation.Store(next)
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key, checking the depth-preferred table first and
// falling back to the always-replace table. Safe for concurrent use.
func (t *Table) Probe(key Key) (Entry, bool) {
	t.probes.Add(1)
	if t.entriesPerHalf == 0 {
		t.misses.Add(1)
		return Entry{}, false
	}
	idx := t.index(key)
	want := keyHighOf(key)

	if word := t.depthPreferred[idx].Load(); !isEmpty(word) && wordKeyHigh(word) == want {
		t.hits.Add(1)
		return unpack(word), true
	}
	if word := t.alwaysReplace[idx].Load(); !isEmpty(word) && wordKeyHigh(word) == want {
		t.hits.Add(1)
		return unpack(word), true
	}
	t.misses.Add(1)
	return Entry{}, false
}

// Store writes an entry for key into both tables according to the
// two-table replacement scheme: the always-replace table is always
// overwritten, and the depth-preferred table is only overwritten when the
// new entry searched at least as deep as the occupant or the occupant is
// from an earlier search generation.
func (t *Table) Store(key Key, move Move, depth int8, score Value, bound ValueType) {
	if t.entriesPerHalf == 0 {
		return
	}
	t.puts.Add(1)
	idx := t.index(key)
	age := uint8(t.generation.Load())
	want := keyHighOf(key)

	// preserve an existing stored move when this store carries none, so a
	// bound-only re-store (e.g. from quiescence) does not clobber the
	// best move remembered from a full-width search of the same node.
	if move == MoveNone {
		if old := t.depthPreferred[idx].Load(); !isEmpty(old) && wordKeyHigh(old) == want {
			move = unpack(old).move
		} else if old := t.alwaysReplace[idx].Load(); !isEmpty(old) && wordKeyHigh(old) == want {
			move = unpack(old).move
		}
	}

	newWord := pack(key, move, depth, score, bound, age)

	t.alwaysReplace[idx].Store(newWord)

	old := t.depthPreferred[idx].Load()
	if isEmpty(old) || depth >= wordDepth(old) || wordAge(old) != age {
		t.stores.Add(1)
		t.depthPreferred[idx].Store(newWord)
	} else {
		t.rejects.Add(1)
	}
}

// ClearHash zeroes every slot of both tables.
func (t *Table) ClearHash() {
	for i := range t.alwaysReplace {
		t.alwaysReplace[i].Store(0)
	}
	for i := range t.depthPreferred {
		t.depthPreferred[i].Store(0)
	}
	t.generation.Store(0)
	t.puts.Store(0)
	t.probes.Store(0)
	t.hits.Store(0)
	t.misses.Store(0)
	t.stores.Store(0)
	t.rejects.Store(0)
}

// Clear is an alias for ClearHash kept for call sites ported from the
// single-table design.
func (t *Table) Clear() { t.ClearHash() }

// ClearAge resets only the age field of every occupied depth-preferred
// slot back to zero, without disturbing key/move/score/depth/bound. The
// always-replace table and the search generation counter are left as they
// are.
func (t *Table) ClearAge() {
	for i := range t.depthPreferred {
		slot := &t.depthPreferred[i]
		for {
			old := slot.Load()
			if isEmpty(old) || wordAge(old) == 0 {
				break
			}
			newWord := old &^ (ageBits << ageShift)
			if slot.CompareAndSwap(old, newWord) {
				break
			}
		}
	}
	t.generation.Store(0)
}

// SizeInMB returns the configured memory budget in megabytes.
func (t *Table) SizeInMB() int {
	return int(t.sizeInByte / MB)
}

// Hashfull returns how full the depth-preferred table is in permille, as
// required by the UCI "info hashfull" field.
func (t *Table) Hashfull() int {
	if t.entriesPerHalf == 0 {
		return 0
	}
	sampleSize := t.entriesPerHalf
	if sampleSize > 1000 {
		sampleSize = 1000
	}
	occupied := uint64(0)
	for i := uint64(0); i < sampleSize; i++ {
		if !isEmpty(t.depthPreferred[i].Load()) {
			occupied++
		}
	}
	return int((1000 * occupied) / sampleSize)
}

// String returns a summary of table size and hit/miss statistics.
func (t *Table) String() string {
	probes := t.probes.Load()
	hits := t.hits.Load()
	misses := t.misses.Load()
	return out.Sprintf("TT: size %d MB entries/table %d (%d%% full) puts %d stores %d rejects %d probes %d hits %d (%d%%) misses %d (%d%%)",
		t.sizeInByte/MB, t.entriesPerHalf, t.Hashfull()/10,
		t.puts.Load(), t.stores.Load(), t.rejects.Load(),
		probes, hits, (hits*100)/(1+probes), misses, (misses*100)/(1+probes))
}
