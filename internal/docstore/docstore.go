// Package docstore describes the transactional document store the services run on.
//
// Documents are JSON values addressed by a collection path and an id. A transaction
// reads documents first and then buffers writes; the backend commits the writes
// atomically or re-runs the whole body when a concurrent commit touched anything it read.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrReadAfterWrite    = errors.New("transaction reads must precede writes")
	ErrUnreadUpdate      = errors.New("update of a document not read in this transaction")
	ErrTooManyAttempts   = errors.New("transaction retry limit exceeded")
	ErrInvalidCollection = errors.New("invalid collection path")
)

const DefaultMaxAttempts = 5

const (
	Users         = "users"
	Proposals     = "proposals"
	Chats         = "chats"
	Reviews       = "reviews"
	Badges        = "badges"
	Notifications = "notifications"
)

func EarnedBadges(userID string) string  { return Users + "/" + userID + "/earnedBadges" }
func Messages(chatID string) string      { return Chats + "/" + chatID + "/messages" }
func MeetingPoints(chatID string) string { return Chats + "/" + chatID + "/meetingPoints" }

// Ref addresses one document.
type Ref struct {
	Collection string
	ID         string
}

func Doc(collection, id string) Ref {
	return Ref{Collection: collection, ID: id}
}

func (r Ref) Path() string {
	return r.Collection + "/" + r.ID
}

func (r Ref) Validate() error {
	if r.Collection == "" || r.ID == "" || strings.Contains(r.ID, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, r.Path())
	}
	return nil
}

// Snapshot is a document as read from the store.
type Snapshot struct {
	Ref  Ref
	Data []byte
}

func (s Snapshot) DataTo(v any) error {
	if err := json.Unmarshal(s.Data, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.Ref.Path(), err)
	}
	return nil
}

type Getter interface {
	Get(ctx context.Context, ref Ref) (Snapshot, error)
}

type Setter interface {
	Set(ctx context.Context, ref Ref, v any) error
}

// Tx is the handle a transaction body works with. Get may be called from several
// goroutines at once; every Get must happen before the first Set or Update.
type Tx interface {
	Getter
	Setter
	Update(ctx context.Context, ref Ref, v any) error
}

type TxFunc func(ctx context.Context, tx Tx) error

type Store interface {
	Getter
	Setter
	Query(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error)
	RunTransaction(ctx context.Context, fn TxFunc) error
}

type Op string

const (
	OpEqual         Op = "=="
	OpIn            Op = "in"
	OpArrayContains Op = "array-contains"
)

type Filter struct {
	Field  string
	Op     Op
	Values []string
}

func Where(field string, op Op, values ...string) Filter {
	return Filter{Field: field, Op: op, Values: values}
}

// Match evaluates the filter against an encoded document.
func (f Filter) Match(data []byte) (bool, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, err
	}
	raw, ok := doc[f.Field]
	if !ok {
		return false, nil
	}
	switch f.Op {
	case OpEqual, OpIn:
		s, ok := raw.(string)
		if !ok {
			return false, nil
		}
		return contains(f.Values, s), nil
	case OpArrayContains:
		items, ok := raw.([]any)
		if !ok || len(f.Values) == 0 {
			return false, nil
		}
		for _, item := range items {
			if s, ok := item.(string); ok && s == f.Values[0] {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported filter operator %q", f.Op)
	}
}

func MatchAll(data []byte, filters []Filter) (bool, error) {
	for _, f := range filters {
		ok, err := f.Match(data)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func Encode(ref Ref, v any) ([]byte, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", ref.Path(), err)
	}
	return data, nil
}

func SortByID(snaps []Snapshot) {
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Ref.ID < snaps[j].Ref.ID })
}

// Backoff sleeps before the given retry attempt: quadratic growth with jitter.
func Backoff(ctx context.Context, attempt int) error {
	base := 20 * time.Millisecond
	delay := time.Duration(attempt*attempt)*base + time.Duration(rand.Int63n(int64(10*time.Millisecond)))
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Load reads ref into a new T. A missing document yields nil and no error.
func Load[T any](ctx context.Context, g Getter, ref Ref) (*T, error) {
	snap, err := g.Get(ctx, ref)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := snap.DataTo(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func DecodeAll[T any](snaps []Snapshot) ([]T, error) {
	out := make([]T, 0, len(snaps))
	for _, s := range snaps {
		var v T
		if err := s.DataTo(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
