//go:build unit

package idgen_test

import (
	"testing"
	"time"

	"library-ledger/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeBased_Next(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("ids are unique for the same instant", func(t *testing.T) {
		g := idgen.NewTimeBased()
		seen := map[int64]bool{}
		for range 500 {
			id := g.Next(now, nil)
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	})

	t.Run("skips ids reported as taken", func(t *testing.T) {
		g := idgen.NewTimeBased()
		first := g.Next(now, nil)
		taken := map[int64]bool{first + 1: true, first + 2: true}
		next := g.Next(now.Add(-time.Hour), func(id int64) bool { return taken[id] })
		assert.Equal(t, first+3, next)
	})

	t.Run("derived from the clock", func(t *testing.T) {
		g := idgen.NewTimeBased()
		id := g.Next(now, nil)
		assert.Equal(t, now.UnixMilli(), id/1000)
	})
}

func TestSequence_Next(t *testing.T) {
	s := idgen.NewSequence()
	assert.Equal(t, int64(1), s.Next(time.Time{}, nil))
	assert.Equal(t, int64(3), s.Next(time.Time{}, func(id int64) bool { return id == 2 }))
}
