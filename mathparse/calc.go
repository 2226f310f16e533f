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

// The file contains the calculator used by every mode of the command. It
// holds the conversion and evaluation rules selected on the command line so
// that single expressions, streamed lines and suite checks are all computed
// the same way.

package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/id101010/mathparser/rpn"
)

type calculator struct {
	conv rpn.Converter
	eval rpn.Evaluator

	// postfix indicates that the input is RPN text and not infix.
	postfix bool

	// showRPN prints the postfix form of every expression to out.
	showRPN bool
	out     io.Writer

	// dump writes the token queue of every expression to it when set.
	dump io.Writer
}

// newCalculator returns a calculator using the legacy conversion and power
// rules when legacy is set. Stack activity is traced to trace when it is
// not nil.
func newCalculator(legacy bool, trace rpn.Logger) *calculator {
	return &calculator{
		conv: rpn.Converter{Legacy: legacy, Log: trace},
		eval: rpn.Evaluator{Legacy: legacy, Log: trace},
	}
}

// Tokens returns the RPN tokens of input.
func (c *calculator) Tokens(input string) ([]rpn.Token, error) {
	if c.postfix {
		return rpn.Parse(input)
	}
	return c.conv.Convert(input)
}

// Eval evaluates the value of an expression to a float64.
func (c *calculator) Eval(input string) (float64, error) {
	tokens, err := c.Tokens(input)
	if err != nil {
		return 0, err
	}

	if c.dump != nil {
		fmt.Fprintf(c.dump, "output queue of %q:\n", input)
		spew.Fdump(c.dump, tokens)
	}
	if c.showRPN && c.out != nil {
		fmt.Fprintf(c.out, "rpn: %s\n", rpn.Format(tokens))
	}

	return c.eval.Evaluate(tokens)
}
