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

// CastlingRights is a 4-bit set of the four castling privileges.
type CastlingRights uint8

// Castling right bits and the "none"/"all" shorthands.
const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1 << 0
	CastlingWhiteOOO     CastlingRights = 1 << 1
	CastlingBlackOO      CastlingRights = 1 << 2
	CastlingBlackOOO     CastlingRights = 1 << 3
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                         = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether all bits of other are set in cr.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Remove clears the given bits from cr in place and returns the result.
func (cr *CastlingRights) Remove(other CastlingRights) CastlingRights {
	*cr &^= other
	return *cr
}

// Add sets the given bits on cr in place and returns the result.
func (cr *CastlingRights) Add(other CastlingRights) CastlingRights {
	*cr |= other
	return *cr
}

// String renders the castling rights in FEN order, e.g. "KQkq", or "-"
// if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
