// Copyright (c) 2016 Uber Technologies, Inc.
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

package rpn

// Assoc is the associativity of an operator.
type Assoc int

// Associativity values
const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	}
	return "none"
}

// OperatorInfo holds the parsing metadata of an operator symbol.
type OperatorInfo struct {
	Symbol     byte
	Precedence int
	Assoc      Assoc
}

// Operators is the operator table. Parentheses have precedence 0 and only
// act as a boundary on the operator stack.
var Operators = map[byte]OperatorInfo{
	'^': {'^', 4, AssocRight},
	'*': {'*', 3, AssocLeft},
	'/': {'/', 3, AssocLeft},
	'+': {'+', 2, AssocLeft},
	'-': {'-', 2, AssocLeft},
	'(': {'(', 0, AssocNone},
	')': {')', 0, AssocNone},
}

// Lookup returns the table entry for c.
func Lookup(c byte) (OperatorInfo, bool) {
	info, ok := Operators[c]
	return info, ok
}

// IsOperator reports whether c is one of the binary operators + - * / ^.
func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// precedence returns the precedence of c, 0 for anything not in the table.
func precedence(c byte) int {
	return Operators[c].Precedence
}
