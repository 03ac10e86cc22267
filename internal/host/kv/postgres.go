// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgPool is the slice of pgxpool.Pool the store uses, abstracted so tests
// can substitute pgxmock.
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore persists plugin key/value data in PostgreSQL. Conditional
// writes ride on single-statement upserts, so they are atomic without
// explicit transactions.
type PostgresStore struct {
	pool pgPool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects a store to the given database.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("kv: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kv: ping: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStoreWithPool wraps an existing pool. Used by tests with
// pgxmock and by hosts that share one pool across subsystems.
func NewPostgresStoreWithPool(pool pgPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func expiryArg(expireAt time.Time) any {
	if expireAt.IsZero() {
		return nil
	}
	return expireAt
}

// Set writes value under (pluginID, key) per opts.
func (s *PostgresStore) Set(ctx context.Context, pluginID, key string, value []byte, opts SetOptions) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	switch {
	case len(value) == 0 && opts.Atomic:
		// Conditional delete.
		tag, err := s.pool.Exec(ctx,
			`DELETE FROM plugin_kv
			 WHERE plugin_id = $1 AND key = $2 AND value = $3
			   AND (expire_at IS NULL OR expire_at > now())`,
			pluginID, key, opts.OldValue)
		if err != nil {
			return false, fmt.Errorf("kv: conditional delete %s/%s: %w", pluginID, key, err)
		}
		return tag.RowsAffected() > 0, nil

	case len(value) == 0:
		if err := s.Delete(ctx, pluginID, key); err != nil {
			return false, err
		}
		return true, nil

	case opts.Atomic && opts.OldValue == nil:
		// Insert-if-absent. An expired row counts as absent, so claim it
		// via the conflict arm.
		tag, err := s.pool.Exec(ctx,
			`INSERT INTO plugin_kv (plugin_id, key, value, expire_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (plugin_id, key) DO UPDATE
			 SET value = EXCLUDED.value, expire_at = EXCLUDED.expire_at
			 WHERE plugin_kv.expire_at IS NOT NULL AND plugin_kv.expire_at <= now()`,
			pluginID, key, value, expiryArg(opts.ExpireAt))
		if isUniqueViolation(err) {
			// A concurrent writer claimed the key between the speculative
			// insert and the conflict check; that is a lost race, not a
			// fault.
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("kv: insert-if-absent %s/%s: %w", pluginID, key, err)
		}
		return tag.RowsAffected() > 0, nil

	case opts.Atomic:
		tag, err := s.pool.Exec(ctx,
			`UPDATE plugin_kv SET value = $4, expire_at = $5
			 WHERE plugin_id = $1 AND key = $2 AND value = $3
			   AND (expire_at IS NULL OR expire_at > now())`,
			pluginID, key, opts.OldValue, value, expiryArg(opts.ExpireAt))
		if err != nil {
			return false, fmt.Errorf("kv: compare-and-set %s/%s: %w", pluginID, key, err)
		}
		return tag.RowsAffected() > 0, nil

	default:
		_, err := s.pool.Exec(ctx,
			`INSERT INTO plugin_kv (plugin_id, key, value, expire_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (plugin_id, key) DO UPDATE
			 SET value = EXCLUDED.value, expire_at = EXCLUDED.expire_at`,
			pluginID, key, value, expiryArg(opts.ExpireAt))
		if err != nil {
			return false, fmt.Errorf("kv: set %s/%s: %w", pluginID, key, err)
		}
		return true, nil
	}
}

// Get returns the live value for (pluginID, key), or nil when absent or
// expired.
func (s *PostgresStore) Get(ctx context.Context, pluginID, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM plugin_kv
		 WHERE plugin_id = $1 AND key = $2
		   AND (expire_at IS NULL OR expire_at > now())`,
		pluginID, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv: get %s/%s: %w", pluginID, key, err)
	}
	return value, nil
}

// Delete removes (pluginID, key). Absent keys are fine.
func (s *PostgresStore) Delete(ctx context.Context, pluginID, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx,
		`DELETE FROM plugin_kv WHERE plugin_id = $1 AND key = $2`,
		pluginID, key)
	if err != nil {
		return fmt.Errorf("kv: delete %s/%s: %w", pluginID, key, err)
	}
	return nil
}

// DeleteAll removes every key the plugin has stored.
func (s *PostgresStore) DeleteAll(ctx context.Context, pluginID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM plugin_kv WHERE plugin_id = $1`, pluginID)
	if err != nil {
		return fmt.Errorf("kv: delete all for %s: %w", pluginID, err)
	}
	return nil
}

// List returns a sorted page of the plugin's live keys.
func (s *PostgresStore) List(ctx context.Context, pluginID string, page, perPage int) ([]string, error) {
	if page < 0 || perPage <= 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT key FROM plugin_kv
		 WHERE plugin_id = $1 AND (expire_at IS NULL OR expire_at > now())
		 ORDER BY key LIMIT $2 OFFSET $3`,
		pluginID, perPage, page*perPage)
	if err != nil {
		return nil, fmt.Errorf("kv: list for %s: %w", pluginID, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("kv: scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv: iterate keys: %w", err)
	}
	return keys, nil
}

// PurgeExpired removes rows past their expiry. The host runs this on a slow
// ticker; reads already ignore expired rows, so the sweep is housekeeping.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM plugin_kv WHERE expire_at IS NOT NULL AND expire_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("kv: purge expired: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
