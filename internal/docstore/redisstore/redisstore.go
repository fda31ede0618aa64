// Package redisstore keeps documents as JSON strings in Redis and runs transactions
// optimistically with WATCH/MULTI/EXEC.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
)

const defaultPrefix = "skillswap:"

type Store struct {
	client      *redis.Client
	prefix      string
	maxAttempts int
}

type Option func(*Store)

func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

func WithMaxAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// Connect parses redisURL and checks the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{
		client:      client,
		prefix:      defaultPrefix,
		maxAttempts: docstore.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) docKey(ref docstore.Ref) string {
	return s.prefix + "doc:" + ref.Path()
}

func (s *Store) collectionKey(collection string) string {
	return s.prefix + "col:" + collection
}

func (s *Store) Get(ctx context.Context, ref docstore.Ref) (docstore.Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return docstore.Snapshot{}, err
	}
	data, err := s.client.Get(ctx, s.docKey(ref)).Bytes()
	if errors.Is(err, redis.Nil) {
		return docstore.Snapshot{Ref: ref}, docstore.ErrNotFound
	}
	if err != nil {
		return docstore.Snapshot{}, fmt.Errorf("get %s: %w", ref.Path(), err)
	}
	return docstore.Snapshot{Ref: ref, Data: data}, nil
}

func (s *Store) Set(ctx context.Context, ref docstore.Ref, v any) error {
	data, err := docstore.Encode(ref, v)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		s.queueWrite(ctx, pipe, docstore.Write{Ref: ref, Data: data})
		return nil
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", ref.Path(), err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Snapshot, error) {
	ids, err := s.client.SMembers(ctx, s.collectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(docstore.Doc(collection, id))
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	var snaps []docstore.Snapshot
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		data := []byte(raw)
		matched, err := docstore.MatchAll(data, filters)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", collection, err)
		}
		if matched {
			snaps = append(snaps, docstore.Snapshot{Ref: docstore.Doc(collection, ids[i]), Data: data})
		}
	}
	docstore.SortByID(snaps)
	return snaps, nil
}

// RunTransaction watches every key the body reads and commits the buffered writes in
// one MULTI/EXEC. A watched key changing underneath aborts EXEC and the body runs again.
func (s *Store) RunTransaction(ctx context.Context, fn docstore.TxFunc) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := s.client.Watch(ctx, func(rtx *redis.Tx) error {
			buf := docstore.NewBuffer(func(ctx context.Context, ref docstore.Ref) ([]byte, bool, error) {
				key := s.docKey(ref)
				if err := rtx.Watch(ctx, key).Err(); err != nil {
					return nil, false, fmt.Errorf("watch %s: %w", ref.Path(), err)
				}
				data, err := rtx.Get(ctx, key).Bytes()
				if errors.Is(err, redis.Nil) {
					return nil, false, nil
				}
				if err != nil {
					return nil, false, fmt.Errorf("get %s: %w", ref.Path(), err)
				}
				return data, true, nil
			})
			if err := fn(ctx, buf); err != nil {
				return err
			}
			writes := buf.Writes()
			if len(writes) == 0 {
				return nil
			}
			_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, w := range writes {
					s.queueWrite(ctx, pipe, w)
				}
				return nil
			})
			return err
		})
		if errors.Is(err, redis.TxFailedErr) {
			zap.L().Debug("redis transaction conflict, retrying", zap.Int("attempt", attempt))
			if attempt < s.maxAttempts {
				if err := docstore.Backoff(ctx, attempt); err != nil {
					return err
				}
			}
			continue
		}
		return err
	}
	return docstore.ErrTooManyAttempts
}

func (s *Store) queueWrite(ctx context.Context, pipe redis.Pipeliner, w docstore.Write) {
	pipe.Set(ctx, s.docKey(w.Ref), w.Data, 0)
	pipe.SAdd(ctx, s.collectionKey(w.Ref.Collection), w.Ref.ID)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
