package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// Options holds the defaults applied to approx requests that do not set their own.
type Options struct {
	Ratio      float64
	MinMatched int
}

// Server answers msgpack requests against a Trie. Requests are handled one at a
// time, so an add never runs alongside a lookup.
type Server struct {
	trie   *trie.Trie
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	opts   Options
	logger *log.Logger
}

// New creates a server reading requests from r and writing responses to w.
func New(t *trie.Trie, r io.Reader, w io.Writer, opts Options) *Server {
	return &Server{
		trie:   t,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		opts:   opts,
		logger: log.Default(),
	}
}

// WithLogger replaces the server logger.
func (s *Server) WithLogger(l *log.Logger) *Server {
	if l != nil {
		s.logger = l
	}
	return s
}

// Serve announces readiness and handles requests until the input ends, a request
// cannot be decoded, or ctx is done. A clean end of input returns nil.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("Starting server")
	if err := s.enc.Encode(Response{Status: statusReady}); err != nil {
		return fmt.Errorf("writing ready message: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed")
				return nil
			}
			return fmt.Errorf("decoding request: %w", err)
		}

		start := time.Now()
		resp := s.handle(req)
		resp.ID = req.ID
		resp.TimeTaken = time.Since(start).Microseconds()
		if err := s.enc.Encode(resp); err != nil {
			return fmt.Errorf("encoding response %s: %w", req.ID, err)
		}
	}
}

func (s *Server) handle(req Request) Response {
	switch req.Op {
	case "add":
		return s.handleAdd(req)
	case "exact":
		return Response{Status: statusOK, Found: s.trie.Contains(req.Word)}
	case "complete":
		words := s.trie.Complete(req.Word)
		return Response{Status: statusOK, Words: words, Count: len(words)}
	case "approx":
		return s.handleApprox(req)
	case "len":
		return Response{Status: statusOK, Count: s.trie.Len()}
	case "health":
		return Response{Status: statusOK}
	default:
		s.logger.Debug("Unknown op", "id", req.ID, "op", req.Op)
		return Response{Status: statusError, Error: fmt.Sprintf("unknown op: %q", req.Op)}
	}
}

func (s *Server) handleAdd(req Request) Response {
	if req.Word != "" {
		s.trie.Insert(req.Word)
	}
	s.trie.Insert(req.Words...)
	return Response{Status: statusOK, Count: s.trie.Len()}
}

func (s *Server) handleApprox(req Request) Response {
	ratio, minMatched := s.opts.Ratio, s.opts.MinMatched
	if req.Ratio != nil {
		ratio = *req.Ratio
	}
	if req.MinMatched != nil {
		minMatched = *req.MinMatched
	}

	m, err := s.trie.SearchApproximate(req.Word, ratio, minMatched)
	if errors.Is(err, trie.ErrInvalidRatio) {
		return Response{Status: statusError, Error: err.Error()}
	}
	resp := Response{
		Status: statusOK,
		Found:  m.Found(),
		Match: &Approximation{
			Status:   m.Status.String(),
			Query:    m.Query,
			Word:     m.Word,
			Original: m.Original,
			Matched:  m.Matched,
			Coverage: m.Coverage,
		},
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
