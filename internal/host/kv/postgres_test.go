// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock, NewPostgresStoreWithPool(mock)
}

func TestPostgresStore_Set(t *testing.T) {
	expireAt := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name      string
		value     []byte
		opts      SetOptions
		setupMock func(mock pgxmock.PgxPoolIface)
		want      bool
		wantErr   bool
	}{
		{
			name:  "plain upsert",
			value: []byte("v1"),
			opts:  SetOptions{},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO plugin_kv`).
					WithArgs("echo", "k", []byte("v1"), nil).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			want: true,
		},
		{
			name:  "plain upsert with expiry",
			value: []byte("v1"),
			opts:  SetOptions{ExpireAt: expireAt},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO plugin_kv`).
					WithArgs("echo", "k", []byte("v1"), expireAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			want: true,
		},
		{
			name:  "set-if-absent wins",
			value: []byte("v1"),
			opts:  SetOptions{Atomic: true},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO plugin_kv`).
					WithArgs("echo", "k", []byte("v1"), nil).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			want: true,
		},
		{
			name:  "set-if-absent loses to live row",
			value: []byte("v1"),
			opts:  SetOptions{Atomic: true},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO plugin_kv`).
					WithArgs("echo", "k", []byte("v1"), nil).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			want: false,
		},
		{
			name:  "compare-and-set wins",
			value: []byte("new"),
			opts:  SetOptions{Atomic: true, OldValue: []byte("old")},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE plugin_kv SET`).
					WithArgs("echo", "k", []byte("old"), []byte("new"), nil).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name:  "compare-and-set loses",
			value: []byte("new"),
			opts:  SetOptions{Atomic: true, OldValue: []byte("stale")},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE plugin_kv SET`).
					WithArgs("echo", "k", []byte("stale"), []byte("new"), nil).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name:  "nil value deletes",
			value: nil,
			opts:  SetOptions{},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM plugin_kv WHERE plugin_id`).
					WithArgs("echo", "k").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			want: true,
		},
		{
			name:  "compare-and-delete wins",
			value: nil,
			opts:  SetOptions{Atomic: true, OldValue: []byte("old")},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM plugin_kv`).
					WithArgs("echo", "k", []byte("old")).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			want: true,
		},
		{
			name:  "compare-and-delete loses",
			value: nil,
			opts:  SetOptions{Atomic: true, OldValue: []byte("stale")},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM plugin_kv`).
					WithArgs("echo", "k", []byte("stale")).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			want: false,
		},
		{
			name:  "database error",
			value: []byte("v1"),
			opts:  SetOptions{},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO plugin_kv`).
					WithArgs("echo", "k", []byte("v1"), nil).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, store := newMockStore(t)
			tt.setupMock(mock)

			got, err := store.Set(context.Background(), "echo", "k", tt.value, tt.opts)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPostgresStore_Set_InvalidKey(t *testing.T) {
	_, store := newMockStore(t)

	_, err := store.Set(context.Background(), "echo", "", []byte("v"), SetOptions{})
	require.ErrorIs(t, err, ErrKeyInvalid)
}

func TestPostgresStore_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, store := newMockStore(t)
		rows := pgxmock.NewRows([]string{"value"}).AddRow([]byte("hello"))
		mock.ExpectQuery(`SELECT value FROM plugin_kv`).
			WithArgs("echo", "k").
			WillReturnRows(rows)

		got, err := store.Get(context.Background(), "echo", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent reads as nil", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT value FROM plugin_kv`).
			WithArgs("echo", "k").
			WillReturnRows(pgxmock.NewRows([]string{"value"}))

		got, err := store.Get(context.Background(), "echo", "k")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT value FROM plugin_kv`).
			WithArgs("echo", "k").
			WillReturnError(errors.New("connection refused"))

		_, err := store.Get(context.Background(), "echo", "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestPostgresStore_DeleteAll(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectExec(`DELETE FROM plugin_kv WHERE plugin_id = \$1`).
		WithArgs("echo").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	require.NoError(t, store.DeleteAll(context.Background(), "echo"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List(t *testing.T) {
	t.Run("sorted page", func(t *testing.T) {
		mock, store := newMockStore(t)
		rows := pgxmock.NewRows([]string{"key"}).
			AddRow("alpha").
			AddRow("bravo")
		mock.ExpectQuery(`SELECT key FROM plugin_kv`).
			WithArgs("echo", 2, 2).
			WillReturnRows(rows)

		keys, err := store.List(context.Background(), "echo", 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "bravo"}, keys)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad page bounds short-circuit", func(t *testing.T) {
		_, store := newMockStore(t)

		keys, err := store.List(context.Background(), "echo", -1, 10)
		require.NoError(t, err)
		assert.Nil(t, keys)

		keys, err = store.List(context.Background(), "echo", 0, 0)
		require.NoError(t, err)
		assert.Nil(t, keys)
	})
}

func TestPostgresStore_PurgeExpired(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectExec(`DELETE FROM plugin_kv WHERE expire_at IS NOT NULL`).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	n, err := store.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
