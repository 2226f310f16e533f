package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var suitesYaml = `
suites:
- name: precedence
  desc: chained <OP> over <N>
  checks:
  - 3+4*2 is 11
  - <N> <OP> 2 in (0, 1000)
  - 2^3^2 rpn 2 3 2 ^ ^
  runs:
  - [<N>, <OP>]
  - [ 10, "^"]
  - [ 40, "*"]

- name: failures
  checks:
  - 2^3^2 is 64
  - (1+2 is 3
  - 7/2
`

func ExampleSuite_Run() {
	calc := newCalculator(false, nil)
	suites, err := parseSuites([]byte(suitesYaml), calc)
	if err != nil {
		panic(err)
	}
	runSuites(suites, calc, os.Stdout)

	// Output:
	// +--------------+--------------------------------------------+
	// | precedence                                                |
	// | chained ^ over 10                                         |
	// |--------------+--------------------------------------------|
	// |           11 | 3+4*2 is 11                                |
	// |          100 | 10 ^ 2 in (0,1000)                         |
	// |    2 3 2 ^ ^ | 2^3^2 rpn 2 3 2 ^ ^                        |
	// +--------------+--------------------------------------------+
	//
	// +--------------+--------------------------------------------+
	// | precedence                                                |
	// | chained * over 40                                         |
	// |--------------+--------------------------------------------|
	// |           11 | 3+4*2 is 11                                |
	// |           80 | 40 * 2 in (0,1000)                         |
	// |    2 3 2 ^ ^ | 2^3^2 rpn 2 3 2 ^ ^                        |
	// +--------------+--------------------------------------------+
	//
	// +--------------+--------------------------------------------+
	// | failures                                                  |
	// |--------------+--------------------------------------------|
	// |          512 | 2^3^2 is 64                                | FAILED assertion: expected 64 got 512
	// |            - | (1+2 is 3                                  | ERROR unclosed '(': malformed expression
	// |          3.5 | 7/2                                        |
	// +--------------+--------------------------------------------+
}

func TestParseSuites(t *testing.T) {
	suites, err := parseSuites([]byte(suitesYaml), newCalculator(false, nil))
	require.NoError(t, err)
	require.Len(t, suites, 3)

	s := suites[1]
	require.Equal(t, "precedence", s.Name)
	require.Equal(t, "chained * over 40", s.Desc)
	require.Len(t, s.Checks, 3)

	c := s.Checks[1]
	require.Equal(t, "40 * 2", c.Expr)
	require.Equal(t, AssertionTypeIn, c.Assertion.Type)
	require.Equal(t, 0.0, c.Assertion.V1)
	require.Equal(t, 1000.0, c.Assertion.V2)

	require.Nil(t, suites[2].Checks[2].Assertion)
}

func TestParseSuitesLegacy(t *testing.T) {
	calc := newCalculator(true, nil)
	suites, err := parseSuites([]byte(`
suites:
- name: legacy
  checks:
  - 2^3^2 is 64
  - 2^3^2 rpn 2 3 ^ 2 ^
  - 2^(0-1) is 0
`), calc)
	require.NoError(t, err)

	var out strings.Builder
	require.True(t, runSuites(suites, calc, &out), out.String())
}

func TestParseSuitesErrors(t *testing.T) {
	tests := []struct {
		yaml string
		msg  string
	}{
		{"suites: [", "failed to unmarshal suite yaml"},
		{"suites:\n- name: a\n  checks: [is 1]", "check has no expression"},
		{"suites:\n- name: a\n  checks: [1 is]", "missing value"},
		{"suites:\n- name: a\n  checks: ['1 in 1,2']", "should be enclosed by parenthesis"},
		{"suites:\n- name: a\n  checks: ['1 in (1)']", "should be split by a comma"},
		{"suites:\n- name: a\n  checks: ['1 is 1+']", "rpn stack underflow"},
		{"suites:\n- name: a\n  checks: ['1 rpn 1 +x']", "malformed expression"},
		{"suites:\n- name: a\n  checks: [1]\n  runs: [[N]]", "not of the form <var>"},
		{"suites:\n- name: a\n  checks: [<N>]\n  runs: [[<N>], [1, 2]]", "should match var count"},
	}

	for _, tt := range tests {
		_, err := parseSuites([]byte(tt.yaml), newCalculator(false, nil))
		require.Error(t, err, tt.yaml)
		require.Contains(t, err.Error(), tt.msg, tt.yaml)
	}
}

func TestParseSuitesWrapsContext(t *testing.T) {
	_, err := parseSuites([]byte("suites:\n- name: broken\n  checks: ['1 is (2']"), newCalculator(false, nil))
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "failed to parse suite 'broken'")
	require.Contains(t, msg, "in parse check '1 is (2'")
	require.Contains(t, msg, "in parse value '(2'")
}
