package store

import (
	"context"
	"database/sql"

	"github.com/partshub/apiserver/types"
)

// TaxonomyRepository handles persistence for the category, brand,
// car-model, and engine registries. They share one repository because
// the four tables are plain name registries with at most one reference
// column.
type TaxonomyRepository struct {
	db *sql.DB
}

func NewTaxonomyRepository(db *sql.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

func (r *TaxonomyRepository) CreateCategory(ctx context.Context, category types.Category) (types.Category, error) {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return types.Category{}, err
	}
	return category, nil
}

func (r *TaxonomyRepository) ListCategories(ctx context.Context) ([]types.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]types.Category, 0)
	for rows.Next() {
		var category types.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *TaxonomyRepository) CreateBrand(ctx context.Context, brand types.Brand) (types.Brand, error) {
	const query = `INSERT INTO brands (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, brand.Name).Scan(&brand.ID); err != nil {
		return types.Brand{}, err
	}
	return brand, nil
}

func (r *TaxonomyRepository) ListBrands(ctx context.Context) ([]types.Brand, error) {
	const query = `SELECT id, name FROM brands ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]types.Brand, 0)
	for rows.Next() {
		var brand types.Brand
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func (r *TaxonomyRepository) CreateCarModel(ctx context.Context, model types.CarModel) (types.CarModel, error) {
	const query = `INSERT INTO car_models (name, brand_id) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, model.Name, model.BrandID).Scan(&model.ID); err != nil {
		return types.CarModel{}, err
	}
	return model, nil
}

func (r *TaxonomyRepository) ListCarModels(ctx context.Context) ([]types.CarModel, error) {
	const query = `SELECT id, name, brand_id FROM car_models ORDER BY id`
	return r.listCarModels(ctx, query)
}

func (r *TaxonomyRepository) ListCarModelsByBrand(ctx context.Context, brandID int) ([]types.CarModel, error) {
	const query = `SELECT id, name, brand_id FROM car_models WHERE brand_id = $1 ORDER BY id`
	return r.listCarModels(ctx, query, brandID)
}

func (r *TaxonomyRepository) listCarModels(ctx context.Context, query string, args ...any) ([]types.CarModel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]types.CarModel, 0)
	for rows.Next() {
		var model types.CarModel
		if err := rows.Scan(&model.ID, &model.Name, &model.BrandID); err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, rows.Err()
}

func (r *TaxonomyRepository) CreateEngine(ctx context.Context, engine types.Engine) (types.Engine, error) {
	const query = `INSERT INTO engines (name, model_id) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, engine.Name, engine.ModelID).Scan(&engine.ID); err != nil {
		return types.Engine{}, err
	}
	return engine, nil
}

func (r *TaxonomyRepository) ListEngines(ctx context.Context) ([]types.Engine, error) {
	const query = `SELECT id, name, model_id FROM engines ORDER BY id`
	return r.listEngines(ctx, query)
}

func (r *TaxonomyRepository) ListEnginesByModel(ctx context.Context, modelID int) ([]types.Engine, error) {
	const query = `SELECT id, name, model_id FROM engines WHERE model_id = $1 ORDER BY id`
	return r.listEngines(ctx, query, modelID)
}

func (r *TaxonomyRepository) listEngines(ctx context.Context, query string, args ...any) ([]types.Engine, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	engines := make([]types.Engine, 0)
	for rows.Next() {
		var engine types.Engine
		if err := rows.Scan(&engine.ID, &engine.Name, &engine.ModelID); err != nil {
			return nil, err
		}
		engines = append(engines, engine)
	}
	return engines, rows.Err()
}
