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
	"github.com/pkg/errors"
)

// Errors returned by Convert, Evaluate and Parse. They are wrapped with
// details about the failure; use errors.Cause to compare.
var (
	// ErrMalformedExpression is returned for unbalanced parentheses, unknown
	// characters and literals that do not fit in an int64.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrStackUnderflow is returned when an operator has fewer than two
	// operands available.
	ErrStackUnderflow = errors.New("rpn stack underflow")

	// ErrEmptyExpression is returned when there is nothing to evaluate, or
	// when evaluation leaves more than one value on the stack.
	ErrEmptyExpression = errors.New("empty expression")
)
