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

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Converter turns infix expressions into RPN token sequences. The zero
// value is ready to use. A Converter holds no state between calls and can be
// shared between goroutines.
type Converter struct {
	// Legacy pops operators of equal precedence for every operator,
	// including ^. This makes ^ left-associative: "2^3^2" converts to
	// "2 3 ^ 2 ^" instead of "2 3 2 ^ ^".
	Legacy bool

	// Log traces operator stack and output queue activity when set.
	Log Logger
}

// Convert converts expression with a zero-value Converter.
func Convert(expression string) ([]Token, error) {
	var c Converter
	return c.Convert(expression)
}

// Convert scans expression left to right and returns its tokens in RPN
// order. Whitespace is skipped. It fails with ErrMalformedExpression on
// unbalanced parentheses and on characters that cannot start a token.
func (c *Converter) Convert(expression string) ([]Token, error) {
	tracef(c.Log, "---- begin shunting yard on %q", expression)

	var (
		output  []Token
		opstack []byte
	)

	pop := func() byte {
		op := opstack[len(opstack)-1]
		opstack = opstack[:len(opstack)-1]
		tracef(c.Log, "[POP]\toperator\t%c\tfrom opstack", op)
		return op
	}
	push := func(op byte) {
		tracef(c.Log, "[PUSH]\toperator\t%c\tto opstack", op)
		opstack = append(opstack, op)
	}
	emit := func(t Token) {
		tracef(c.Log, "[PUSH]\t%s\tto queue", t)
		output = append(output, t)
	}

	for i := 0; i < len(expression); {
		ch := expression[i]

		switch {
		case isDigit(ch):
			j := i
			for j < len(expression) && isDigit(expression[j]) {
				j++
			}
			v, err := strconv.ParseInt(expression[i:j], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedExpression, "literal %s at offset %d out of range", expression[i:j], i)
			}
			emit(Number(v))
			i = j
			continue

		case IsOperator(ch):
			for len(opstack) > 0 && c.shouldPop(opstack[len(opstack)-1], ch) {
				emit(Operator(pop()))
			}
			push(ch)

		case ch == '(':
			push(ch)

		case ch == ')':
			for {
				if len(opstack) == 0 {
					return nil, errors.Wrapf(ErrMalformedExpression, "unmatched ')' at offset %d", i)
				}
				op := pop()
				if op == '(' {
					break
				}
				emit(Operator(op))
			}

		case isSpace(ch):

		default:
			return nil, errors.Wrapf(ErrMalformedExpression, "unexpected character %q at offset %d", ch, i)
		}
		i++
	}

	for len(opstack) > 0 {
		op := pop()
		if op == '(' {
			return nil, errors.Wrap(ErrMalformedExpression, "unclosed '('")
		}
		emit(Operator(op))
	}

	tracef(c.Log, "RPN expression: %s", Format(output))
	return output, nil
}

// shouldPop reports whether top must move from the operator stack to the
// output before cur is pushed.
func (c *Converter) shouldPop(top, cur byte) bool {
	if top == '(' {
		return false
	}
	if !c.Legacy && Operators[cur].Assoc == AssocRight {
		return precedence(top) > precedence(cur)
	}
	return precedence(top) >= precedence(cur)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
