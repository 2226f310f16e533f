package rpn

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func ExampleEval() {
	fmt.Println(Eval(""))
	fmt.Println(Eval("2+(3*4"))
	fmt.Println(Eval("-1"))
	fmt.Println(Eval("1 2"))

	fmt.Println(Eval("123"))
	fmt.Println(Eval("3+4*2"))
	fmt.Println(Eval("2*(3+5)"))
	fmt.Println(Eval("10/4"))
	fmt.Println(Eval("(100/2)/((16/2/4))"))
	fmt.Println(Eval("2^3^2"))

	// Output:
	// 0 no tokens: empty expression
	// 0 unclosed '(': malformed expression
	// 0 operator - at position 1 needs 2 operands, has 1: rpn stack underflow
	// 0 2 values left on the rpn stack: empty expression
	// 123 <nil>
	// 11 <nil>
	// 16 <nil>
	// 2.5 <nil>
	// 25 <nil>
	// 512 <nil>
}

func ExampleEvaluator_legacy() {
	c := &Converter{Legacy: true}
	e := &Evaluator{Legacy: true}

	tokens, _ := c.Convert("2^3^2")
	fmt.Println(e.Evaluate(tokens))

	// Output:
	// 64 <nil>
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		tokens []Token
		cause  error
	}{
		{nil, ErrEmptyExpression},
		{[]Token{}, ErrEmptyExpression},
		{[]Token{Operator('+'), Number(1)}, ErrStackUnderflow},
		{[]Token{Number(1), Operator('*')}, ErrStackUnderflow},
		{[]Token{Number(1), Number(2), Number(3), Operator('+')}, ErrEmptyExpression},
		{[]Token{Number(1), Number(2), Operator('%')}, ErrMalformedExpression},
		{[]Token{Number(1), Number(2), Operator(0)}, ErrMalformedExpression},
	}

	for _, tt := range tests {
		_, err := Evaluate(tt.tokens)
		require.Error(t, err, Format(tt.tokens))
		require.Equal(t, tt.cause, errors.Cause(err), Format(tt.tokens))
	}
}

func TestEvaluateOperandOrder(t *testing.T) {
	tests := []struct {
		rpn  string
		want float64
	}{
		{"7 2 -", 5},
		{"8 2 /", 4},
		{"2 8 /", 0.25},
		{"2 5 ^", 32},
		{"1 2 3 * + 4 -", 3},
	}

	for _, tt := range tests {
		tokens, err := Parse(tt.rpn)
		require.NoError(t, err)
		v, err := Evaluate(tokens)
		require.NoError(t, err)
		require.Equal(t, tt.want, v, tt.rpn)
	}
}

func TestEvalMatchesArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+2+3", 6},
		{"10-4-3", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"100/10/5", 2},
		{"7/2", 3.5},
		{"2*3^2", 18},
		{"(1+2)^(1+1)", 9},
		{"((((5))))", 5},
		{"1/3*3", 1},
		{"0^0", 1},
	}

	for _, tt := range tests {
		v, err := Eval(tt.expr)
		require.NoError(t, err, tt.expr)
		require.Equal(t, tt.want, v, tt.expr)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	v, err := Eval("1/0")
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	v, err = Eval("0/0")
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

func TestPowPolicies(t *testing.T) {
	tests := []struct {
		a, b   float64
		modern float64
		legacy float64
	}{
		{2, 10, 1024, 1024},
		{2, 0, 1, 1},
		{0, 0, 1, 1},
		{2, -1, 0.5, 0},
		{4, 0.5, 2, 0},
		{-2, 3, -8, -8},
	}

	modern := &Evaluator{}
	legacy := &Evaluator{Legacy: true}
	for _, tt := range tests {
		v, err := modern.apply('^', tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.modern, v, "%v^%v", tt.a, tt.b)

		v, err = legacy.apply('^', tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.legacy, v, "legacy %v^%v", tt.a, tt.b)
	}
}

func TestLegacyPowRepeatedMultiplication(t *testing.T) {
	// 3^40 does not fit in a float64 mantissa, so the rounding depends on
	// the order of the multiplications.
	want := 1.0
	for i := 0; i < 40; i++ {
		want = 3 * want
	}

	legacy := &Evaluator{Legacy: true}
	v, err := legacy.apply('^', 3, 40)
	require.NoError(t, err)
	require.Equal(t, want, v)

	require.Equal(t, math.Pow(2, maxLegacyExp+1), legacyPow(2, maxLegacyExp+1))
}

func TestEvalIdempotent(t *testing.T) {
	const expr = "(100/2)/((16/2/4))+2^3^2"
	first, err := Eval(expr)
	require.NoError(t, err)
	second, err := Eval(expr)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 537.0, first)
}

func TestEvalConcurrent(t *testing.T) {
	exprs := map[string]float64{
		"3+4*2":              11,
		"(100/2)/((16/2/4))": 25,
		"2^3^2":              512,
		"(1+2)*(3+4)":        21,
	}

	var wg sync.WaitGroup
	errs := make(chan error, 100*len(exprs))
	for i := 0; i < 100; i++ {
		for expr, want := range exprs {
			wg.Add(1)
			go func(expr string, want float64) {
				defer wg.Done()
				v, err := Eval(expr)
				if err != nil {
					errs <- err
					return
				}
				if v != want {
					errs <- fmt.Errorf("%s = %g, want %g", expr, v, want)
				}
			}(expr, want)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestEvaluateTrace(t *testing.T) {
	l := &recordLogger{}
	e := &Evaluator{Log: l}
	v, err := e.Evaluate([]Token{Number(6), Number(3), Operator('/')})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	require.Equal(t, []string{
		"---- start solving rpn expression 6 3 /",
		"[PUSH]\tnumber\t6\tto rpn stack",
		"[PUSH]\tnumber\t3\tto rpn stack",
		"[POP]\tnumber\t3\tfrom rpn stack",
		"[POP]\tnumber\t6\tfrom rpn stack",
		"[PUSH]\tnumber\t2\tto rpn stack",
	}, l.lines)
}
