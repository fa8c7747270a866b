// Package buffer provides a growable sequence whose maximum length is fixed
// exactly once.
package buffer

import (
	"errors"
	"fmt"
)

var (
	ErrNotLocked        = errors.New("buffer capacity not locked")
	ErrAlreadyLocked    = errors.New("buffer capacity already locked")
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")
	ErrIndexOutOfBounds = errors.New("buffer index out of bounds")
	ErrNegativeCapacity = errors.New("buffer capacity must not be negative")
)

// Locked is an ordered sequence of T with a capacity that is set once.
//
// A Locked buffer starts unlocked: nothing can be inserted until Lock fixes
// the capacity. From then on Insert appends until the length reaches the
// capacity, and Replace and Get address any index below the current length.
// The capacity never changes after it is set.
//
// Locked is not safe for concurrent use.
type Locked[T any] struct {
	values []T
	limit  int
	locked bool
}

// New returns an empty, unlocked buffer.
func New[T any]() *Locked[T] {
	return &Locked[T]{}
}

// NewLocked returns an empty buffer whose capacity is already fixed at n.
func NewLocked[T any](n int) (*Locked[T], error) {
	b := New[T]()
	if err := b.Lock(n); err != nil {
		return nil, err
	}
	return b, nil
}

// Lock fixes the capacity at n. It fails if the capacity is already set.
func (b *Locked[T]) Lock(n int) error {
	if b.locked {
		return fmt.Errorf("lock %d (locked at %d): %w", n, b.limit, ErrAlreadyLocked)
	}
	if n < 0 {
		return fmt.Errorf("lock %d: %w", n, ErrNegativeCapacity)
	}
	b.values = make([]T, 0, n)
	b.limit = n
	b.locked = true
	return nil
}

// IsLocked reports whether the capacity has been fixed.
func (b *Locked[T]) IsLocked() bool {
	return b.locked
}

// LockedLen returns the fixed capacity.
func (b *Locked[T]) LockedLen() (int, error) {
	if !b.locked {
		return 0, ErrNotLocked
	}
	return b.limit, nil
}

// Len returns the number of values currently held.
func (b *Locked[T]) Len() int {
	return len(b.values)
}

// Insert appends v.
func (b *Locked[T]) Insert(v T) error {
	if !b.locked {
		return ErrNotLocked
	}
	if len(b.values) >= b.limit {
		return fmt.Errorf("insert at %d: %w", b.limit, ErrCapacityExceeded)
	}
	b.values = append(b.values, v)
	return nil
}

// Replace swaps the value at i with v and returns the previous value.
func (b *Locked[T]) Replace(i int, v T) (T, error) {
	if err := b.check(i); err != nil {
		var zero T
		return zero, fmt.Errorf("replace: %w", err)
	}
	prev := b.values[i]
	b.values[i] = v
	return prev, nil
}

// Get returns the value at i.
func (b *Locked[T]) Get(i int) (T, error) {
	if err := b.check(i); err != nil {
		var zero T
		return zero, fmt.Errorf("get: %w", err)
	}
	return b.values[i], nil
}

// Values returns a copy of the held values in order.
func (b *Locked[T]) Values() []T {
	out := make([]T, len(b.values))
	copy(out, b.values)
	return out
}

func (b *Locked[T]) check(i int) error {
	if i < 0 || i >= len(b.values) {
		return fmt.Errorf("index %d (length %d): %w", i, len(b.values), ErrIndexOutOfBounds)
	}
	return nil
}
