package domain

import "context"

// ProductRepository persists the product catalog. Lookups of unknown ids
// return ErrNotFound.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product Product) (*Product, error)
	Update(ctx context.Context, id string, product Product) (*Product, error)
	Delete(ctx context.Context, id string) (*Product, error)
}
