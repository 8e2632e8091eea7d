// Package idgen issues integer identifiers for ledger records that are not
// numbered by position: reservations, transactions and attendance entries.
package idgen

import (
	"math/rand/v2"
	"sync"
	"time"
)

const tieBreakRange = 1000

type Generator interface {
	// Next returns an id derived from now that is not reported as taken.
	Next(now time.Time, taken func(int64) bool) int64
}

// TimeBased yields unixMillis*1000 + random tie-break and never repeats a value
// it handed out earlier in the process.
type TimeBased struct {
	mu   sync.Mutex
	last int64
}

func NewTimeBased() Generator {
	return &TimeBased{}
}

func (g *TimeBased) Next(now time.Time, taken func(int64) bool) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := now.UnixMilli()*tieBreakRange + rand.Int64N(tieBreakRange)
	if id <= g.last {
		id = g.last + 1
	}
	for taken != nil && taken(id) {
		id++
	}
	g.last = id
	return id
}

// Sequence hands out 1, 2, 3, ... and is meant for deterministic tests.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next(_ time.Time, taken func(int64) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	for taken != nil && taken(s.next) {
		s.next++
	}
	return s.next
}
