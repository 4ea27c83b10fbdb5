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

package types

// Square represents one of the 64 squares of the board, numbered
// rank-major from a1=0 to h8=63.
type Square uint8

// Square constants for all 64 squares plus the SqNone sentinel.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

const (
	SqA2 Square = iota + 8
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
)

const (
	SqA3 Square = iota + 16
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
)

const (
	SqA4 Square = iota + 24
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
)

const (
	SqA5 Square = iota + 32
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
)

const (
	SqA6 Square = iota + 40
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
)

const (
	SqA7 Square = iota + 48
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
)

const (
	SqA8 Square = iota + 56
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// SqNone is the sentinel for "no square" / an invalid square.
const (
	SqNone   Square = 64
	SqLength int    = 64
)

// IsValid checks if sq represents one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	if !sq.IsValid() {
		return FileNone
	}
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	if !sq.IsValid() {
		return RankNone
	}
	return Rank(sq / 8)
}

// SquareOf returns the square for the given file and rank, or SqNone
// if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)*8 + uint8(f))
}

// To returns the square on the chess board in the given direction, or
// SqNone if that direction would step off the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		return SqNone
	}
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPreCompute(dir)
		}
	}
}

func (sq Square) toPreCompute(d Direction) Square {
	switch d {
	case North, South:
		sq += Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case West, Southwest, Northwest:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	default:
		panic("invalid direction")
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}

const squareLabels = "a1b1c1d1e1f1g1h1a2b2c2d2e2f2g2h2a3b3c3d3e3f3g3h3a4b4c4d4e4f4g4h4a5b5c5d5e5f5g5h5a6b6c6d6e6f6g6h6a7b7c7d7e7f7g7h7a8b8c8d8e8f8g8h8"

// String returns the algebraic square label, e.g. "e4", or "-" for SqNone
// or any out-of-range value.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	i := int(sq) * 2
	return squareLabels[i : i+2]
}

// MakeSquare parses an algebraic square label like "e4" into a Square,
// returning SqNone on any malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}
