package docstore

import (
	"context"
	"sync"
)

// Write is one buffered mutation awaiting commit.
type Write struct {
	Ref  Ref
	Data []byte
}

// FetchFunc loads one document from the backend; found is false when it does not exist.
type FetchFunc func(ctx context.Context, ref Ref) (data []byte, found bool, err error)

// Buffer implements Tx on top of a backend fetch function. It serializes reads,
// enforces read-before-write ordering and keeps writes until the backend commits them.
type Buffer struct {
	fetch FetchFunc

	mu     sync.Mutex
	exists map[string]bool
	writes []Write
}

func NewBuffer(fetch FetchFunc) *Buffer {
	return &Buffer{
		fetch:  fetch,
		exists: make(map[string]bool),
	}
}

func (b *Buffer) Get(ctx context.Context, ref Ref) (Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return Snapshot{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.writes) > 0 {
		return Snapshot{}, ErrReadAfterWrite
	}
	data, found, err := b.fetch(ctx, ref)
	if err != nil {
		return Snapshot{}, err
	}
	b.exists[ref.Path()] = found
	if !found {
		return Snapshot{Ref: ref}, ErrNotFound
	}
	return Snapshot{Ref: ref, Data: data}, nil
}

func (b *Buffer) Set(_ context.Context, ref Ref, v any) error {
	data, err := Encode(ref, v)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes = append(b.writes, Write{Ref: ref, Data: data})
	return nil
}

func (b *Buffer) Update(_ context.Context, ref Ref, v any) error {
	data, err := Encode(ref, v)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	found, read := b.exists[ref.Path()]
	if !read {
		return ErrUnreadUpdate
	}
	if !found {
		return ErrNotFound
	}
	b.writes = append(b.writes, Write{Ref: ref, Data: data})
	return nil
}

func (b *Buffer) Writes() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Write, len(b.writes))
	copy(out, b.writes)
	return out
}
