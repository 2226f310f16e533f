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
	"reflect"

	"github.com/pkg/errors"
)

type AssertionType string

const (
	AssertionTypeIs  AssertionType = "is"
	AssertionTypeIn  AssertionType = "in"
	AssertionTypeRPN AssertionType = "rpn"
)

// An Assertion is the optional expectation of a Check.
type Assertion struct {
	Type AssertionType // is, in or rpn
	V1   Value
	V2   Value
}

// Can be a float64, or a string holding postfix text for rpn assertions.
type Value interface{}

func (a *Assertion) String() string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case AssertionTypeIs:
		return fmt.Sprintf("is %v", a.V1)
	case AssertionTypeIn:
		return fmt.Sprintf("in (%v,%v)", a.V1, a.V2)
	case AssertionTypeRPN:
		return fmt.Sprintf("rpn %v", a.V1)
	}
	return fmt.Sprintf("unknown assertion %q", string(a.Type))
}

// Assert returns an error when v does not satisfy the assertion. A nil
// assertion accepts every value.
func (a *Assertion) Assert(v Value) error {
	if a == nil {
		return nil
	}

	switch a.Type {
	case AssertionTypeIs, AssertionTypeRPN:
		if reflect.TypeOf(v) != reflect.TypeOf(a.V1) {
			return errors.Errorf("FAILED assertion: type mismatch %v %v", v, a.V1)
		}
		if v == a.V1 {
			return nil
		}
		return errors.Errorf("FAILED assertion: expected %v got %v", a.V1, v)

	case AssertionTypeIn:
		f, ok := v.(float64)
		lo, ok1 := a.V1.(float64)
		hi, ok2 := a.V2.(float64)
		if !ok || !ok1 || !ok2 {
			return errors.Errorf("FAILED assertion: type mismatch %v (%v,%v)", v, a.V1, a.V2)
		}
		if f >= lo && f <= hi {
			return nil
		}
		return errors.Errorf("FAILED assertion: %v not in (%v,%v)", v, a.V1, a.V2)
	}

	return errors.Errorf("assertion type must be 'is', 'in' or 'rpn' but is %v", a.Type)
}
