package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/blob"
)

// collection is one JSON array file. Every operation is a full
// read-modify-write under mu, so writers in this process never interleave.
type collection[T any] struct {
	mu     sync.Mutex
	bucket blob.Bucket
	name   string
	id     func(*T) string
}

func newCollection[T any](bucket blob.Bucket, name string, id func(*T) string) *collection[T] {
	return &collection[T]{bucket: bucket, name: name, id: id}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.bucket.Read(ctx, c.name)
	if errors.Is(err, blob.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.bucket.Write(ctx, c.name, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	items, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", c.name, id, records.ErrNotFound)
}

func (c *collection[T]) insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	id := c.id(&item)
	for i := range items {
		if c.id(&items[i]) == id {
			return fmt.Errorf("%s %s: %w", c.name, id, records.ErrDuplicate)
		}
	}
	return c.save(ctx, append(items, item))
}

func (c *collection[T]) replace(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	id := c.id(&item)
	for i := range items {
		if c.id(&items[i]) == id {
			items[i] = item
			return c.save(ctx, items)
		}
	}
	return fmt.Errorf("%s %s: %w", c.name, id, records.ErrNotFound)
}

func (c *collection[T]) remove(ctx context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			removed := items[i]
			items = append(items[:i], items[i+1:]...)
			if err := c.save(ctx, items); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", c.name, id, records.ErrNotFound)
}
