package repository

import "context"

// Repository is the opaque persistence contract for catalog records. The
// engine only reads; Create/Update/Delete exist for the management
// collaborator and for test seeding.
type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, entity T) (T, error)
	Update(ctx context.Context, collectionName string, id string, entity T) (T, error)
	Delete(ctx context.Context, collectionName string, id string) error
	FindByID(ctx context.Context, collectionName string, id string) (T, error)
	FindAll(ctx context.Context, collectionName string) ([]T, error)
}
