package store

import (
	"context"
	"database/sql"

	"github.com/partshub/apiserver/types"
)

// ProductRepository handles persistence for products.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, product_name, image_href, product_price, product_description, product_options, image_url, image_alt, tags`

func (r *ProductRepository) Create(ctx context.Context, product types.Product) (types.Product, error) {
	const query = `
		INSERT INTO products (product_name, image_href, product_price, product_description, product_options, image_url, image_alt, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		product.ProductName,
		product.ImageHref,
		product.ProductPrice,
		product.ProductDescription,
		product.ProductOptions,
		product.ImageURL,
		product.ImageAlt,
		string(product.Tags),
	).Scan(&product.ID); err != nil {
		return types.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]types.Product, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id`
	return r.list(ctx, query)
}

func (r *ProductRepository) ListByTag(ctx context.Context, tag types.ProductTag) ([]types.Product, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		WHERE tags = $1
		ORDER BY id`
	return r.list(ctx, query, string(tag))
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]types.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]types.Product, 0)
	for rows.Next() {
		var product types.Product
		if err := rows.Scan(
			&product.ID,
			&product.ProductName,
			&product.ImageHref,
			&product.ProductPrice,
			&product.ProductDescription,
			&product.ProductOptions,
			&product.ImageURL,
			&product.ImageAlt,
			&product.Tags,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
