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

package main

import (
	"strings"

	"github.com/id101010/mathparser/rpn"
)

// A Check is a single line of a suite: an expression and an optional
// assertion on its outcome.
type Check struct {
	Expr      string
	Assertion *Assertion
}

func (c Check) String() string {
	strs := []string{c.Expr}
	if c.Assertion != nil {
		strs = append(strs, c.Assertion.String())
	}
	return strings.Join(strs, " ")
}

// Measure computes the value the assertion of the check is compared to: the
// postfix text for rpn assertions and the evaluated result otherwise.
func (c Check) Measure(calc *calculator) (Value, error) {
	if c.Assertion != nil && c.Assertion.Type == AssertionTypeRPN {
		tokens, err := calc.Tokens(c.Expr)
		if err != nil {
			return nil, err
		}
		return rpn.Format(tokens), nil
	}

	v, err := calc.Eval(c.Expr)
	if err != nil {
		return nil, err
	}
	return v, nil
}
