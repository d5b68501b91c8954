// Package trace supplies the requests a simulator replays.
package trace

import "io"

// Request is one line of a trace.
type Request struct {
	Seq      int64
	Key      int64
	Size     float64
	DataType int
}

// Source yields requests in order. Next returns io.EOF when the trace is done.
type Source interface {
	Next() (Request, error)
}

// Slice is an in-memory Source, mostly for tests.
type Slice struct {
	reqs []Request
	pos  int
}

func NewSlice(reqs ...Request) *Slice {
	return &Slice{reqs: reqs}
}

func (s *Slice) Next() (Request, error) {
	if s.pos >= len(s.reqs) {
		return Request{}, io.EOF
	}
	r := s.reqs[s.pos]
	s.pos++
	return r, nil
}
