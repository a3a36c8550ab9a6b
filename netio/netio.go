// SPDX-License-Identifier: MIT
// Package: preflow/netio
//
// netio.go - reader and writers for the plain-text network format.
//
// Format (whitespace separated integers):
//
//	n m c p
//	u₁ v₁ cap₁
//	…
//	uₘ vₘ capₘ
//
// c and p are read and ignored. Node 0 is the source, node n-1 the sink.

package netio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/preflow/core"
)

// ErrUnexpectedEOF is returned when the input ends before all m edges were read.
var ErrUnexpectedEOF = errors.New("netio: unexpected end of input")

// ErrTooManyNodes is returned when the header announces more than MaxNodes nodes.
var ErrTooManyNodes = errors.New("netio: node count exceeds limit")

// ParseError reports a token that is not a valid integer.
type ParseError struct {
	// Token is the offending text.
	Token string
	// Index is the zero-based position of the token in the input.
	Index int
	// Err is the underlying strconv error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("netio: token #%d %q is not an integer: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const (
	// headerFields is the number of leading integers (n m c p).
	headerFields = 4
	// maxPrealloc bounds the edge slice reserved from an untrusted m.
	maxPrealloc = 1 << 16
)

// MaxNodes is the largest n Read accepts. Node records are allocated up
// front, so a larger header is rejected before anything is built.
const MaxNodes = 1 << 24

// tokenReader yields integers from a word scanner.
type tokenReader struct {
	sc    *bufio.Scanner
	index int
}

func (t *tokenReader) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("netio: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s (token #%d)", ErrUnexpectedEOF, what, t.index)
	}
	tok := t.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Token: tok, Index: t.index, Err: err}
	}
	t.index++

	return v, nil
}

// Read parses a network from r. Node ranges and capacity signs are checked
// with core.Spec.Validate; its errors are returned wrapped.
func Read(r io.Reader) (*core.Spec, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	var header [headerFields]int64
	for i, name := range [headerFields]string{"n", "m", "c", "p"} {
		v, err := tr.next(name)
		if err != nil {
			return nil, err
		}
		header[i] = v
	}
	n, m := header[0], header[1]
	if m < 0 {
		return nil, fmt.Errorf("netio: negative edge count m=%d", m)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: n=%d, limit %d", ErrTooManyNodes, n, MaxNodes)
	}

	s := core.NewSpec(int(n))
	s.Edges = make([]core.EdgeSpec, 0, min(m, maxPrealloc))
	for i := int64(0); i < m; i++ {
		var tri [3]int64
		for j := range tri {
			v, err := tr.next("edge triple")
			if err != nil {
				return nil, err
			}
			tri[j] = v
		}
		s.AddEdge(int(tri[0]), int(tri[1]), tri[2])
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("netio: %w", err)
	}

	return s, nil
}

// WriteSpec writes s in the format accepted by Read, with c and p set to 0.
func WriteSpec(w io.Writer, s *core.Spec) error {
	if s == nil {
		return core.ErrNilSpec
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d 0 0\n", s.Nodes, len(s.Edges))
	for _, e := range s.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Capacity)
	}

	return bw.Flush()
}

// WriteFlow writes the result line "f = <value>".
func WriteFlow(w io.Writer, f int64) error {
	_, err := fmt.Fprintf(w, "f = %d\n", f)
	return err
}
