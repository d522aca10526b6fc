package trie

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrApproximationImpossible means the subtree below the last matched node holds no
	// word at all, so there was nothing to propose.
	ErrApproximationImpossible = errors.New("trie: unable to approximate")
	// ErrInvalidRatio is returned for a ratio outside [0, 1].
	ErrInvalidRatio = errors.New("trie: ratio must be within [0, 1]")
)

// Status is the final state of an approximate lookup.
type Status uint8

const (
	// StatusExact means the whole query spelled an inserted word.
	StatusExact Status = iota + 1
	// StatusAccepted means a candidate passed every acceptance check.
	StatusAccepted
	// StatusRejected means no candidate was offered or the candidate failed a check.
	StatusRejected
	// StatusImpossible means no candidate exists below the last matched node.
	StatusImpossible
)

func (s Status) String() string {
	switch s {
	case StatusExact:
		return "exact"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	case StatusImpossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// Approximation describes the outcome of SearchApproximate.
type Approximation struct {
	Status Status
	// Query is the normalized query.
	Query string
	// Word is the normalized candidate, empty when none was picked.
	Word string
	// Original is the raw form the candidate was inserted with.
	Original string
	// Matched is the number of query runes consumed before the walk stopped.
	Matched int
	// Coverage is the fraction of the query consumed, 1 for exact hits.
	Coverage float64
}

// Found reports whether the lookup produced a usable word.
func (a Approximation) Found() bool {
	return a.Status == StatusExact || a.Status == StatusAccepted
}

// SearchApproximate looks word up exactly and, when the walk stops short, proposes the
// first word stored below the last matched node.
//
// The candidate is accepted only when ratio is below 1, both the matched part and the
// unmatched tail of the query are non-empty, at least minMatched runes matched, the
// consumed share of the query is at least ratio, and the matched length divided by the
// candidate's length is at least ratio. A ratio of 1 therefore only ever returns exact
// hits.
//
// A missing or rejected candidate is reported through Status and is not an error.
// When no candidate exists at all the result carries StatusImpossible and the error is
// ErrApproximationImpossible.
func (t *Trie) SearchApproximate(word string, ratio float64, minMatched int) (Approximation, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return Approximation{}, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	if minMatched < 0 {
		minMatched = 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	query := t.normaliser.Runes(word)
	last, consumed := t.walk(query)
	result := Approximation{Query: string(query), Matched: consumed}

	if consumed == len(query) && last.terminal {
		result.Status = StatusExact
		result.Word = result.Query
		result.Original = last.original
		result.Coverage = 1
		return result, nil
	}

	history, remainder := query[:consumed], query[consumed:]
	if len(query) > 0 {
		result.Coverage = 1 - float64(len(remainder))/float64(len(query))
	}
	if ratio == 1 || len(history) == 0 || len(remainder) == 0 || len(history) < minMatched {
		result.Status = StatusRejected
		return result, nil
	}

	prefix := make([]rune, len(history), len(query))
	copy(prefix, history)
	path, candidate, ok := last.firstTerminal(prefix)
	if !ok {
		result.Status = StatusImpossible
		t.logger.Warn("no candidate below matched prefix", "query", result.Query, "prefix", string(history))
		return result, ErrApproximationImpossible
	}
	result.Word = string(path)
	result.Original = candidate.original

	share := float64(len(history)) / float64(len(path))
	if result.Coverage >= ratio && share >= ratio {
		result.Status = StatusAccepted
		t.logger.Debug("approximation accepted", "query", result.Query, "match", result.Word, "coverage", result.Coverage)
		return result, nil
	}
	result.Status = StatusRejected
	t.logger.Debug("approximation rejected", "query", result.Query, "candidate", result.Word,
		"coverage", result.Coverage, "share", share, "ratio", ratio)
	return result, nil
}
