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

// Package rpn converts infix arithmetic expressions to Reverse Polish
// Notation with the shunting-yard algorithm and evaluates the result.
//
// Input consists of non-negative integer literals, the binary operators
// + - * / ^ and parentheses. There is no unary minus: "-1" converts to
// "1 -", which fails to evaluate with ErrStackUnderflow.
package rpn

import (
	"fmt"
	"strconv"
)

// A Token is a single element of an RPN sequence, either a number or an
// operator symbol. Tokens are immutable.
type Token struct {
	isOp  bool
	op    byte
	value int64
}

// Number returns a number token.
func Number(v int64) Token {
	return Token{value: v}
}

// Operator returns an operator token for the given symbol. The symbol is not
// validated here; evaluating an unknown operator, including 0, fails.
func Operator(op byte) Token {
	return Token{isOp: true, op: op}
}

// IsNumber reports whether t is a number token.
func (t Token) IsNumber() bool {
	return !t.isOp
}

// Value returns the value of a number token, 0 for operators.
func (t Token) Value() int64 {
	return t.value
}

// Op returns the symbol of an operator token, 0 for numbers.
func (t Token) Op() byte {
	return t.op
}

// String converts a Token to its textual RPN form.
func (t Token) String() string {
	if t.IsNumber() {
		return strconv.FormatInt(t.value, 10)
	}
	return fmt.Sprintf("%c", t.op)
}
