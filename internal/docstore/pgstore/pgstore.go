// Package pgstore keeps documents in a PostgreSQL jsonb table and runs transactions
// at SERIALIZABLE isolation, replaying the body on serialization failures.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
)

type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectDocument = `SELECT data FROM documents WHERE collection = $1 AND id = $2`
	upsertDocument = `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
)

type Store struct {
	db          Database
	maxAttempts int
}

func New(db Database, maxAttempts int) *Store {
	if maxAttempts <= 0 {
		maxAttempts = docstore.DefaultMaxAttempts
	}
	return &Store{
		db:          db,
		maxAttempts: maxAttempts,
	}
}

func (s *Store) Get(ctx context.Context, ref docstore.Ref) (docstore.Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return docstore.Snapshot{}, err
	}
	data, found, err := fetch(ctx, s.db, ref)
	if err != nil {
		return docstore.Snapshot{}, err
	}
	if !found {
		return docstore.Snapshot{Ref: ref}, docstore.ErrNotFound
	}
	return docstore.Snapshot{Ref: ref, Data: data}, nil
}

func (s *Store) Set(ctx context.Context, ref docstore.Ref, v any) error {
	data, err := docstore.Encode(ref, v)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, upsertDocument, ref.Collection, ref.ID, data); err != nil {
		zap.L().Error("failed to save document", zap.String("path", ref.Path()), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Snapshot, error) {
	query, args, err := buildQuery(collection, filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query documents", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var snaps []docstore.Snapshot
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			zap.L().Error("failed to scan document row", zap.Error(err))
			return nil, err
		}
		snaps = append(snaps, docstore.Snapshot{Ref: docstore.Doc(collection, id), Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snaps, nil
}

func (s *Store) RunTransaction(ctx context.Context, fn docstore.TxFunc) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := s.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		zap.L().Debug("serialization failure, retrying transaction", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < s.maxAttempts {
			if err := docstore.Backoff(ctx, attempt); err != nil {
				return err
			}
		}
	}
	return docstore.ErrTooManyAttempts
}

func (s *Store) runOnce(ctx context.Context, fn docstore.TxFunc) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	var mu sync.Mutex
	buf := docstore.NewBuffer(func(ctx context.Context, ref docstore.Ref) ([]byte, bool, error) {
		mu.Lock()
		defer mu.Unlock()
		return fetch(ctx, tx, ref)
	})

	if err := fn(ctx, buf); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	for _, w := range buf.Writes() {
		if _, err := tx.Exec(ctx, upsertDocument, w.Ref.Collection, w.Ref.ID, w.Data); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("write %s: %w", w.Ref.Path(), err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func fetch(ctx context.Context, q querier, ref docstore.Ref) ([]byte, bool, error) {
	var data []byte
	err := q.QueryRow(ctx, selectDocument, ref.Collection, ref.ID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", ref.Path(), err)
	}
	return data, true, nil
}

func buildQuery(collection string, filters []docstore.Filter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}
	for _, f := range filters {
		if !validField(f.Field) {
			return "", nil, fmt.Errorf("invalid filter field %q", f.Field)
		}
		switch f.Op {
		case docstore.OpEqual:
			if len(f.Values) != 1 {
				return "", nil, fmt.Errorf("filter %s needs one value", f.Field)
			}
			args = append(args, f.Values[0])
			fmt.Fprintf(&sb, ` AND data->>'%s' = $%d`, f.Field, len(args))
		case docstore.OpIn:
			args = append(args, f.Values)
			fmt.Fprintf(&sb, ` AND data->>'%s' = ANY($%d)`, f.Field, len(args))
		case docstore.OpArrayContains:
			if len(f.Values) != 1 {
				return "", nil, fmt.Errorf("filter %s needs one value", f.Field)
			}
			args = append(args, f.Values[0])
			fmt.Fprintf(&sb, ` AND data->'%s' @> jsonb_build_array($%d::text)`, f.Field, len(args))
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}
	}
	sb.WriteString(` ORDER BY id`)
	return sb.String(), args, nil
}

// validField keeps filter fields safe to interpolate into the jsonb path.
func validField(field string) bool {
	if field == "" {
		return false
	}
	for _, r := range field {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
