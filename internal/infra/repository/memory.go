package repository

import (
	"context"
	"fmt"
	"sync"
)

// Identifiable lets the in-memory repository key entities without knowing
// their concrete type.
type Identifiable interface {
	GetID() string
}

// MemoryRepository backs the persona catalog in demo mode and in tests,
// where no Mongo instance is available.
type MemoryRepository[T Identifiable] struct {
	mu          sync.RWMutex
	collections map[string]map[string]T
}

func NewMemoryRepository[T Identifiable]() *MemoryRepository[T] {
	return &MemoryRepository[T]{collections: make(map[string]map[string]T)}
}

func (r *MemoryRepository[T]) collection(name string) map[string]T {
	if _, ok := r.collections[name]; !ok {
		r.collections[name] = make(map[string]T)
	}
	return r.collections[name]
}

func (r *MemoryRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collection(collectionName)[entity.GetID()] = entity
	return entity, nil
}

func (r *MemoryRepository[T]) Update(ctx context.Context, collectionName string, id string, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collection(collectionName)[id] = entity
	return entity, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, collectionName string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.collection(collectionName), id)
	return nil
}

func (r *MemoryRepository[T]) FindByID(ctx context.Context, collectionName string, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.collection(collectionName)[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("entity %q not found in %s", id, collectionName)
	}
	return entity, nil
}

func (r *MemoryRepository[T]) FindAll(ctx context.Context, collectionName string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	collection := r.collection(collectionName)
	entities := make([]T, 0, len(collection))
	for _, entity := range collection {
		entities = append(entities, entity)
	}
	return entities, nil
}
