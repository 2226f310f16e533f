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
	"strings"

	"github.com/pkg/errors"
)

// Format returns tokens as space separated postfix text, e.g. "3 4 2 * +".
func Format(tokens []Token) string {
	strs := make([]string, len(tokens))
	for i, t := range tokens {
		strs[i] = t.String()
	}
	return strings.Join(strs, " ")
}

// Parse reads postfix text as written by Format. Fields are separated by
// whitespace and are either non-negative integer literals or one of the
// operators + - * / ^.
func Parse(s string) ([]Token, error) {
	fields := strings.Fields(s)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if len(f) == 1 && IsOperator(f[0]) {
			tokens = append(tokens, Operator(f[0]))
			continue
		}
		if !isDigit(f[0]) {
			return nil, errors.Wrapf(ErrMalformedExpression, "unexpected rpn field %q", f)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedExpression, "rpn field %q: %v", f, err)
		}
		tokens = append(tokens, Number(v))
	}
	return tokens, nil
}
