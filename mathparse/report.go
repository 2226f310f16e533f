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
	"fmt"
	"io"
)

const reportRule = "+--------------+--------------------------------------------+"

// Run computes every check of the suite and writes a report table to w. It
// returns whether all assertions hold.
func (s *Suite) Run(calc *calculator, w io.Writer) bool {
	success := true

	results := make([]string, len(s.Checks))
	for i, c := range s.Checks {
		v, err := c.Measure(calc)
		if err != nil {
			results[i] = fmt.Sprintf("|%13s | %-43v| ERROR %v", "-", c, err)
			success = false
			continue
		}

		results[i] = fmt.Sprintf("|%13v | %-43v|", v, c)

		err = c.Assertion.Assert(v)
		if err != nil {
			results[i] += fmt.Sprintf(" %v", err)
			success = false
		}
	}

	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "| %-57s |\n", s.Name)
	if s.Desc != "" {
		fmt.Fprintf(w, "| %-57s |\n", s.Desc)
	}
	fmt.Fprintln(w, "|--------------+--------------------------------------------|")
	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	fmt.Fprintln(w, reportRule)

	return success
}

// runSuites runs all suites, separated by an empty line, and returns whether
// every suite passed.
func runSuites(suites []*Suite, calc *calculator, w io.Writer) bool {
	success := true
	for i, s := range suites {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if !s.Run(calc, w) {
			success = false
		}
	}
	return success
}
