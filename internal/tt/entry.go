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

// Package tt implements a lock-free transposition table for concurrent
// lazy-SMP search. Every slot is a single 64-bit word updated with a
// plain atomic store/load - there is no entry-level locking and no
// struct pointer is ever shared between goroutines.
//
// Word layout (bit 63 is the MSB):
//
//	63      48 47      32 31      16 15   9 8  7 6   4 3     0
//	|--------|-----------|----------|------|----|-----|------|
//	 key-high    score       move    depth bound age  reserved
//	 (16 bit)   (int16)    (16 bit)  (7bit)(2bit)(3bit)(4bit)
//
// key-high is the top 16 bits of the Zobrist key and serves as a
// collision check for the slot addressed by the key's low bits. age is
// written to both tables, but only the depth-preferred replacement rule
// reads it.
package tt

import (
	. "github.com/chesscorps/corvid/internal/types"
)

const (
	keyHighShift = 48
	scoreShift   = 32
	moveShift    = 16
	depthShift   = 9
	boundShift   = 7
	ageShift     = 4

	keyHighBits = uint64(0xFFFF)
	scoreBits   = uint64(0xFFFF)
	moveBits    = uint64(0xFFFF)
	depthBits   = uint64(0x7F)
	boundBits   = uint64(0x3)
	ageBits     = uint64(0x7)

	maxDepth = int8(depthBits)
	maxAge   = uint8(ageBits)
)

// Entry is the decoded, immutable view of a transposition table slot
// returned by Probe. It never aliases the packed word so callers can
// keep it around safely across searches in other goroutines.
type Entry struct {
	keyHigh uint16
	move    Move
	score   Value
	depth   int8
	bound   ValueType
	age     uint8
}

// Move returns the best move stored for this position, or MoveNone.
func (e Entry) Move() Move { return e.move }

// Value returns the stored search value (already encoded relative to root).
func (e Entry) Value() Value { return e.score }

// Depth returns the depth the stored value was searched at.
func (e Entry) Depth() int8 { return e.depth }

// Vtype returns the bound type (EXACT/ALPHA/BETA) of the stored value.
func (e Entry) Vtype() ValueType { return e.bound }

// Age returns the search generation the entry was last touched in.
func (e Entry) Age() uint8 { return e.age }

// pack encodes an entry into a single atomic word for the given key.
func pack(key Key, move Move, depth int8, score Value, bound ValueType, age uint8) uint64 {
	if depth < 0 {
		depth = 0
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	if age > maxAge {
		age = maxAge
	}
	keyHigh := uint64(key>>keyHighShift) & keyHighBits
	word := keyHigh << keyHighShift
	word |= (uint64(uint16(score)) & scoreBits) << scoreShift
	word |= (uint64(uint16(move.MoveOf())) & moveBits) << moveShift
	word |= (uint64(depth) & depthBits) << depthShift
	word |= (uint64(bound) & boundBits) << boundShift
	word |= (uint64(age) & ageBits) << ageShift
	return word
}

// unpack decodes a slot's word into an Entry plus the stored key-high tag.
func unpack(word uint64) Entry {
	return Entry{
		keyHigh: uint16((word >> keyHighShift) & keyHighBits),
		score:   Value(int16(uint16((word >> scoreShift) & scoreBits))),
		move:    Move(uint16((word >> moveShift) & moveBits)),
		depth:   int8((word >> depthShift) & depthBits),
		bound:   ValueType((word >> boundShift) & boundBits),
		age:     uint8((word >> ageShift) & ageBits),
	}
}

// keyHighOf returns the collision-check tag derived from a full key.
func keyHighOf(key Key) uint16 {
	return uint16(uint64(key>>keyHighShift) & keyHighBits)
}

// wordDepth extracts just the depth field of a packed word, used by the
// replacement scheme without paying for a full unpack.
func wordDepth(word uint64) int8 {
	return int8((word >> depthShift) & depthBits)
}

func wordAge(word uint64) uint8 {
	return uint8((word >> ageShift) & ageBits)
}

func wordKeyHigh(word uint64) uint16 {
	return uint16((word >> keyHighShift) & keyHighBits)
}

func isEmpty(word uint64) bool {
	return word == 0
}
