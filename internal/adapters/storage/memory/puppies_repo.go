package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"puppy-service/internal/domain/puppies"
)

var (
	ErrNotFound = fmt.Errorf("memory: %w", puppies.ErrNotFound)
)

type puppyRepo struct {
	mu     sync.RWMutex
	lastID int64
	byID   map[int64]puppies.Puppy
}

func NewPuppyRepo() puppies.Repository {
	return &puppyRepo{
		byID: make(map[int64]puppies.Puppy),
	}
}

func (r *puppyRepo) Create(ctx context.Context, p puppies.Puppy) (puppies.Puppy, error) {
	if err := ctx.Err(); err != nil {
		return puppies.Puppy{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// ids monótonos, como un SERIAL
	r.lastID++
	p = p.Clone()
	p.ID = r.lastID
	r.byID[p.ID] = p
	return p.Clone(), nil
}

func (r *puppyRepo) GetByID(ctx context.Context, id int64) (puppies.Puppy, error) {
	if err := ctx.Err(); err != nil {
		return puppies.Puppy{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return puppies.Puppy{}, ErrNotFound
	}
	return p.Clone(), nil
}

func (r *puppyRepo) List(ctx context.Context) ([]puppies.Puppy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]puppies.Puppy, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p.Clone())
	}

	// orden de inserción = orden de id
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *puppyRepo) Update(ctx context.Context, id int64, patch puppies.Patch) (puppies.Puppy, error) {
	if err := ctx.Err(); err != nil {
		return puppies.Puppy{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return puppies.Puppy{}, ErrNotFound
	}

	updated := patch.Apply(cur)
	r.byID[id] = updated
	return updated.Clone(), nil
}

func (r *puppyRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
