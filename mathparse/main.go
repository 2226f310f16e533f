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

// mathparse converts infix expressions to Reverse Polish Notation and
// evaluates them.
//
//	mathparse "(100/2)/((16/2/4))"
//	echo "3+4*2" | mathparse
//	mathparse -suite checks.yaml
//	mathparse -listen 3300

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"
)

var (
	legacy  = flag.Bool("legacy", false, "Group chained ^ to the left and use integer power rules")
	debug   = flag.Bool("debug", false, "Trace stack activity and dump the output queue to stderr")
	postfix = flag.Bool("rpn", false, "The input is postfix text instead of an infix expression")
	showRPN = flag.Bool("show-rpn", false, "Print the postfix form of every expression before its value")
	suite   = flag.String("suite", "", "Run the checks declared in the given yaml file")
	listen  = flag.String("listen", "", "Evaluate expressions received as udp datagrams on this port")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("[ERROR]: ")

	calc := newCalculator(*legacy, nil)
	if *debug {
		calc = newCalculator(*legacy, log.New(os.Stderr, "[DEBUG]: ", 0))
		calc.dump = os.Stderr
	}
	calc.postfix = *postfix
	calc.showRPN = *showRPN
	calc.out = os.Stdout

	mode := runMode{suite: *suite, listen: *listen, log: log.New(os.Stderr, "", 0)}
	ok, err := mode.run(calc, flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}
	if !ok {
		os.Exit(1)
	}
}

// runMode selects what the command evaluates. Without a suite or a port the
// expression is taken from the arguments, or from stdin when there is none.
type runMode struct {
	suite  string
	listen string

	// log receives the listen banner and the errors of streamed expressions.
	log *log.Logger
}

// run executes the selected mode. It returns false when an expression or
// check failed without the command itself failing.
func (m runMode) run(calc *calculator, args []string, stdin io.Reader, stdout io.Writer) (bool, error) {
	switch {
	case m.suite != "":
		bts, err := ioutil.ReadFile(m.suite)
		if err != nil {
			return false, errors.Wrap(err, "read suite")
		}
		suites, err := parseSuites(bts, calc)
		if err != nil {
			return false, err
		}
		return runSuites(suites, calc, stdout), nil

	case m.listen != "":
		s, err := NewUDPScanner(m.listen)
		if err != nil {
			return false, err
		}
		defer s.Close()
		return m.serve(s, calc, stdout)

	case len(args) == 0:
		return evalLines(bufio.NewScanner(stdin), calc, stdout, m.logger())

	case len(args) > 1:
		return false, errors.New("too many arguments, give one equation")
	}

	v, err := calc.Eval(args[0])
	if err != nil {
		return false, err
	}
	fmt.Fprintf(stdout, "%g\n", v)
	return true, nil
}

// serve evaluates the expressions arriving on s until it fails.
func (m runMode) serve(s *UDPScanner, calc *calculator, stdout io.Writer) (bool, error) {
	l := m.logger()
	l.Printf("listening for expressions on %v", s.LocalAddr())
	return evalLines(s, calc, stdout, l)
}

func (m runMode) logger() *log.Logger {
	if m.log == nil {
		return log.New(os.Stderr, "", 0)
	}
	return m.log
}
