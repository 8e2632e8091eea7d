//go:build unit

package recordstore_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"library-ledger/internal/infra/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func readItems(t *testing.T, m recordstore.Medium, logger *slog.Logger) []item {
	t.Helper()
	var out []item
	err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
		var err error
		out, err = recordstore.Read[item](ctx, recordstore.NewTables(s, logger), "items")
		return err
	})
	require.NoError(t, err)
	return out
}

func TestTables_ReadTable(t *testing.T) {
	testCases := []struct {
		name     string
		payload  []byte
		set      bool
		want     []item
		wantWarn bool
	}{
		{name: "absent table is empty", set: false, want: []item{}},
		{name: "null payload is empty", payload: []byte("null"), set: true, want: []item{}},
		{name: "valid array", payload: []byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`), set: true, want: []item{{1, "a"}, {2, "b"}}},
		{name: "garbage degrades to empty", payload: []byte(`[{"id":1,`), set: true, want: []item{}, wantWarn: true},
		{name: "object instead of array degrades to empty", payload: []byte(`{"id":1}`), set: true, want: []item{}, wantWarn: true},
		{name: "record of wrong shape degrades to empty", payload: []byte(`[{"id":"one"}]`), set: true, want: []item{}, wantWarn: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := recordstore.NewMemoryMedium()
			if tc.set {
				m.SetRaw("items", tc.payload)
			}

			got := readItems(t, m, newLogger(&logs))

			assert.Equal(t, tc.want, got)
			if tc.wantWarn {
				assert.Contains(t, logs.String(), "corrupt table treated as empty")
				assert.Contains(t, logs.String(), "table=items")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestTables_WriteTable(t *testing.T) {
	m := recordstore.NewMemoryMedium()
	logger := slog.New(slog.DiscardHandler)

	err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
		return recordstore.Write(ctx, recordstore.NewTables(s, logger), "items", []item{{1, "a"}, {2, "b"}})
	})
	require.NoError(t, err)
	assert.Equal(t, []item{{1, "a"}, {2, "b"}}, readItems(t, m, logger))

	t.Run("replaces the whole table", func(t *testing.T) {
		err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
			return recordstore.Write(ctx, recordstore.NewTables(s, logger), "items", []item{{3, "c"}})
		})
		require.NoError(t, err)
		assert.Equal(t, []item{{3, "c"}}, readItems(t, m, logger))
	})

	t.Run("writing nil stores an empty array", func(t *testing.T) {
		err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
			return recordstore.Write[item](ctx, recordstore.NewTables(s, logger), "items", nil)
		})
		require.NoError(t, err)
		raw, ok := m.Raw("items")
		require.True(t, ok)
		assert.JSONEq(t, `[]`, string(raw))
	})
}

func TestMemoryMedium_Atomically(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	m := recordstore.NewMemoryMedium()
	m.SetRaw("items", []byte(`[{"id":1,"name":"a"}]`))

	t.Run("failed unit persists nothing", func(t *testing.T) {
		boom := errors.New("boom")
		err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
			tables := recordstore.NewTables(s, logger)
			if err := recordstore.Write(ctx, tables, "items", []item{{9, "z"}}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []item{{1, "a"}}, readItems(t, m, logger))
	})

	t.Run("reads inside a unit see its own writes", func(t *testing.T) {
		err := m.Atomically(context.Background(), func(ctx context.Context, s recordstore.Session) error {
			tables := recordstore.NewTables(s, logger)
			if err := recordstore.Write(ctx, tables, "items", []item{{2, "b"}}); err != nil {
				return err
			}
			got, err := recordstore.Read[item](ctx, tables, "items")
			require.NoError(t, err)
			assert.Equal(t, []item{{2, "b"}}, got)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("cancelled context is rejected", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.Atomically(ctx, func(context.Context, recordstore.Session) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}
