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
	"log"
	"net"
	"strings"

	"github.com/pkg/errors"
)

// Scanner is inspired on bufio.Scanner. It provides an interface that is
// commonly used in the following pattern.
//
// ```
// for s.Scan() {
//     // do something with s.Text()
// }
// if s.Err()!=nil {
//     panic(s.Err())
// }
// ```
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// maxDatagram is large enough for any UDP payload, so a datagram is never
// cut short by the read.
const maxDatagram = 64 * 1024

// UDPScanner is a Scanner where every datagram is one text.
type UDPScanner struct {
	buf   []byte
	text  string
	err   error
	sConn *net.UDPConn
}

func NewUDPScanner(port string) (*UDPScanner, error) {
	// setup udp connection
	sAddr, err := net.ResolveUDPAddr("udp", ":"+port)
	if err != nil {
		return nil, errors.Wrap(err, "udp scanner")
	}

	sConn, err := net.ListenUDP("udp", sAddr)
	if err != nil {
		return nil, errors.Wrap(err, "udp scanner")
	}

	return &UDPScanner{
		buf:   make([]byte, maxDatagram),
		sConn: sConn,
	}, nil
}

func (s *UDPScanner) Scan() bool {
	// read a single expression
	n, _, err := s.sConn.ReadFromUDP(s.buf)
	if err != nil {
		s.err = errors.Wrap(err, "udp scan")
		return false
	}
	if n == len(s.buf) {
		s.err = errors.Errorf("udp scan: datagram exceeds %d bytes", len(s.buf))
		return false
	}

	s.text = string(s.buf[0:n])

	return true
}

func (s *UDPScanner) Text() string {
	return s.text
}

func (s *UDPScanner) Err() error {
	return s.err
}

// LocalAddr returns the address the scanner listens on.
func (s *UDPScanner) LocalAddr() net.Addr {
	return s.sConn.LocalAddr()
}

func (s *UDPScanner) Close() error {
	return s.sConn.Close()
}

// evalLines evaluates every non-empty text of the scanner and writes one
// result line per text to w. Failing expressions are reported to errs and
// skipped. It returns whether all expressions succeeded.
func evalLines(s Scanner, calc *calculator, w io.Writer, errs *log.Logger) (bool, error) {
	success := true
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		v, err := calc.Eval(line)
		if err != nil {
			errs.Printf("%s: [ERROR]: %v", line, err)
			success = false
			continue
		}
		fmt.Fprintf(w, "%g\n", v)
	}

	return success, s.Err()
}
