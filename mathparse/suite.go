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
	"strings"

	"github.com/id101010/mathparser/rpn"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// suiteFileYaml is used to unmarshal the suites declared in a yaml file.
type suiteFileYaml struct {
	Suites []*suiteYaml
}

// suiteYaml captures the information of a suite.
type suiteYaml struct {
	Name   string
	Desc   string
	Checks []string
	Runs   [][]string
}

// A Suite is a named list of checks with the run variables substituted.
type Suite struct {
	Name   string
	Desc   string
	Checks []*Check
}

// parseSuites reads a suite file. Values in assertions are expressions and
// are evaluated with calc.
func parseSuites(bts []byte, calc *calculator) (suites []*Suite, err error) {
	defer func() {
		if r := recover(); r != nil {
			suites = nil
			err = errors.New(fmt.Sprint(r))
		}
	}()

	file := &suiteFileYaml{}
	err = yaml.Unmarshal(bts, file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal suite yaml")
	}

	p := &suiteParser{calc: calc}
	return p.extractSuites(file), nil
}

type suiteParser struct {
	calc *calculator
}

// extractSuites returns a suite for every element in the runs list, or a
// single suite when there are no runs.
func (p *suiteParser) extractSuites(file *suiteFileYaml) []*Suite {
	var result []*Suite
	for _, data := range file.Suites {
		if len(data.Runs) == 0 {
			result = append(result, p.extractSuite(data, 0))
			continue
		}
		for _, vari := range data.Runs[0] {
			if len(vari) < 2 || vari[0] != '<' || vari[len(vari)-1] != '>' {
				panic(fmt.Sprintf("variable '%s' not of the form <var>", vari))
			}
		}
		// We start at i=1 because the first entry of the runs declares the
		// variables names. e.g. [<N>, <OP>].
		for i := 1; i < len(data.Runs); i++ {
			result = append(result, p.extractSuite(data, i))
		}
	}

	return result
}

// extractSuite returns a suite given the index of a specific run.
func (p *suiteParser) extractSuite(data *suiteYaml, runIx int) *Suite {
	varsData := []string(nil)
	runData := []string(nil)
	if runIx != 0 {
		varsData = data.Runs[0]
		runData = data.Runs[runIx]
	}
	defer wrapPanicf("failed to parse suite '%s'", data.Name)
	defer wrapPanicf("in run %d, [%v] = [%v]", runIx, strings.Join(varsData, ", "), strings.Join(runData, ", "))

	if len(varsData) != len(runData) {
		panic(fmt.Sprintf("var count of run %v should match var count of %v", runData, varsData))
	}

	checks := make([]*Check, len(data.Checks))
	for i := range data.Checks {
		checks[i] = p.parseCheck(replace(data.Checks[i], varsData, runData))
	}

	// don't find and replace on name
	return &Suite{
		Name:   data.Name,
		Desc:   replace(data.Desc, varsData, runData),
		Checks: checks,
	}
}

// parseCheck splits a line like "3+4*2 is 11" in the expression and the
// assertion.
func (p *suiteParser) parseCheck(str string) *Check {
	defer wrapPanicf("in parse check '%s'", str)

	fields := strings.Fields(str)
	if len(fields) == 0 {
		panic("empty check")
	}

	for i, s := range fields {
		switch AssertionType(s) {
		case AssertionTypeIs, AssertionTypeIn, AssertionTypeRPN:
		default:
			continue
		}
		if i == 0 {
			panic("check has no expression")
		}
		return &Check{
			Expr:      strings.Join(fields[:i], " "),
			Assertion: p.parseAssertion(AssertionType(s), fields[i+1:]),
		}
	}

	return &Check{Expr: strings.Join(fields, " ")}
}

func (p *suiteParser) parseAssertion(typ AssertionType, args []string) *Assertion {
	defer wrapPanicf("in parse assertion '%s %s'", typ, strings.Join(args, " "))

	if len(args) == 0 {
		panic("missing value")
	}

	switch typ {
	case AssertionTypeIs:
		return &Assertion{
			Type: typ,
			V1:   p.parseValue(strings.Join(args, " ")),
		}

	case AssertionTypeIn:
		v1, v2 := p.parseRange(strings.Join(args, " "))
		return &Assertion{
			Type: typ,
			V1:   v1,
			V2:   v2,
		}

	case AssertionTypeRPN:
		tokens, err := rpn.Parse(strings.Join(args, " "))
		if err != nil {
			panic(err.Error())
		}
		return &Assertion{
			Type: typ,
			V1:   rpn.Format(tokens),
		}
	}

	panic("not valid assertion type")
}

// parseRange parses an interval of the form "(A,B)".
func (p *suiteParser) parseRange(rng string) (v1, v2 Value) {
	defer wrapPanicf("in parse range '%s'", rng)

	if len(rng) < 2 || rng[0] != '(' || rng[len(rng)-1] != ')' {
		panic("should be enclosed by parenthesis")
	}
	split := strings.Split(rng[1:len(rng)-1], ",")
	if len(split) != 2 {
		panic("should be split by a comma")
	}

	return p.parseValue(split[0]), p.parseValue(split[1])
}

func (p *suiteParser) parseValue(str string) Value {
	defer wrapPanicf("in parse value '%s'", str)

	tokens, err := p.calc.Tokens(str)
	if err != nil {
		panic(err.Error())
	}
	v, err := p.calc.eval.Evaluate(tokens)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// replace finds occurrences of varsData and replaces them by the respective
// element in the runData.
func replace(str string, varsData []string, runData []string) string {
	for i := range varsData {
		str = strings.Replace(str, varsData[i], runData[i], -1)
	}
	return str
}

// wrapPanicf recovers from a panic and then starts to panic with a message
// that adds to the message of the previous panic. This function should always
// be defered because of the recover and is commonly at the start of a
// function.
func wrapPanicf(format string, args ...interface{}) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf(format, args...)
		panic(fmt.Sprintf("%s:\n- %v", msg, r))
	}
}
