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
	"math"

	"github.com/pkg/errors"
)

// An Evaluator reduces RPN token sequences to a single value. All arithmetic
// is done in float64, so "/" is real division. The zero value is ready to
// use and can be shared between goroutines.
type Evaluator struct {
	// Legacy computes a^b with the old integer power rules: 0 when b is
	// negative or not integral, 1 when b is 0, otherwise a multiplied b
	// times. Exponents above maxLegacyExp fall back to math.Pow, whose
	// rounding can differ from repeated multiplication. Without Legacy
	// math.Pow is used for every exponent.
	Legacy bool

	// Log traces operand stack activity when set.
	Log Logger
}

// Evaluate evaluates tokens with a zero-value Evaluator.
func Evaluate(tokens []Token) (float64, error) {
	var e Evaluator
	return e.Evaluate(tokens)
}

// Eval converts and evaluates an infix expression with the default rules.
// e.g: `"2+3*4" -> 14.0`.
func Eval(expression string) (float64, error) {
	tokens, err := Convert(expression)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// Evaluate walks tokens in order, pushing numbers and applying operators to
// the two topmost operands. Exactly one value must remain at the end.
func (e *Evaluator) Evaluate(tokens []Token) (float64, error) {
	if len(tokens) == 0 {
		return 0, errors.Wrap(ErrEmptyExpression, "no tokens")
	}
	tracef(e.Log, "---- start solving rpn expression %s", Format(tokens))

	stack := make([]float64, 0, len(tokens))
	push := func(v float64) {
		tracef(e.Log, "[PUSH]\tnumber\t%g\tto rpn stack", v)
		stack = append(stack, v)
	}
	pop := func() float64 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tracef(e.Log, "[POP]\tnumber\t%g\tfrom rpn stack", v)
		return v
	}

	for i, t := range tokens {
		if t.IsNumber() {
			push(float64(t.Value()))
			continue
		}

		if len(stack) < 2 {
			return 0, errors.Wrapf(ErrStackUnderflow, "operator %s at position %d needs 2 operands, has %d", t, i, len(stack))
		}
		b := pop()
		a := pop()

		v, err := e.apply(t.Op(), a, b)
		if err != nil {
			return 0, err
		}
		push(v)
	}

	if len(stack) != 1 {
		return 0, errors.Wrapf(ErrEmptyExpression, "%d values left on the rpn stack", len(stack))
	}
	return stack[0], nil
}

// apply executes the binary operator op on a and b.
func (e *Evaluator) apply(op byte, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		return a / b, nil
	case '^':
		if e.Legacy {
			return legacyPow(a, b), nil
		}
		return math.Pow(a, b), nil
	}
	return 0, errors.Wrapf(ErrMalformedExpression, "unsupported operator %q", op)
}

// maxLegacyExp bounds the multiplication loop of legacyPow.
const maxLegacyExp = 1 << 16

// legacyPow raises x to the power y by repeated multiplication: the result
// is 0 for negative or fractional y and 1 for y == 0.
func legacyPow(x, y float64) float64 {
	if y < 0 || y != math.Trunc(y) {
		return 0
	}
	if y > maxLegacyExp {
		return math.Pow(x, y)
	}

	result := 1.0
	for n := int(y); n > 0; n-- {
		result = x * result
	}
	return result
}
