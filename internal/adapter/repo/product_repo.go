package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"copydesk/internal/domain"
	"copydesk/internal/infra"
	"copydesk/internal/sqlinline"
)

// ProductRepositoryPG implements domain.ProductRepository on PostgreSQL. The
// record lives in a jsonb column; category, brand and price are copied into
// columns for filtering.
type ProductRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProductRepository creates a new ProductRepositoryPG.
func NewProductRepository(sql infra.SQLExecutor) *ProductRepositoryPG {
	return &ProductRepositoryPG{sql: sql}
}

// EnsureSchema creates the products table when it does not exist.
func (r *ProductRepositoryPG) EnsureSchema(ctx context.Context) error {
	if _, err := r.sql.Exec(ctx, sqlinline.QCreateProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QCreateProductsFilterIndex); err != nil {
		return fmt.Errorf("create products index: %w", err)
	}
	return nil
}

func (r *ProductRepositoryPG) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProducts, filter.Category, filter.Brand, filter.MinPrice, filter.MaxPrice)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.sql.QueryRow(ctx, sqlinline.QSelectProductByID, id))
}

func (r *ProductRepositoryPG) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	data, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("encode product: %w", err)
	}
	var id string
	err = r.sql.QueryRow(ctx, sqlinline.QInsertProduct, product.ID, data, product.Category, product.Brand, product.Price).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.InvalidRequestf("product %s already exists", product.ID)
	}
	if err != nil {
		return nil, err
	}
	out := product.Clone()
	out.ID = id
	return &out, nil
}

func (r *ProductRepositoryPG) Update(ctx context.Context, id string, product domain.Product) (*domain.Product, error) {
	product = product.Clone()
	product.ID = id
	data, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("encode product: %w", err)
	}
	return scanProduct(r.sql.QueryRow(ctx, sqlinline.QUpdateProduct, id, data, product.Category, product.Brand, product.Price))
}

func (r *ProductRepositoryPG) Delete(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.sql.QueryRow(ctx, sqlinline.QDeleteProduct, id))
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id   string
		data []byte
	)
	if err := row.Scan(&id, &data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

var _ domain.ProductRepository = (*ProductRepositoryPG)(nil)
