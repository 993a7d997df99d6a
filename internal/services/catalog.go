package services

import (
	"context"

	"github.com/partshub/apiserver/internal/events"
	"github.com/partshub/apiserver/types"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product types.Product) (types.Product, error)
	ListAll(ctx context.Context) ([]types.Product, error)
	ListByTag(ctx context.Context, tag types.ProductTag) ([]types.Product, error)
}

// TaxonomyRepository defines persistence operations for the category,
// brand, car-model, and engine registries.
type TaxonomyRepository interface {
	CreateCategory(ctx context.Context, category types.Category) (types.Category, error)
	ListCategories(ctx context.Context) ([]types.Category, error)
	CreateBrand(ctx context.Context, brand types.Brand) (types.Brand, error)
	ListBrands(ctx context.Context) ([]types.Brand, error)
	CreateCarModel(ctx context.Context, model types.CarModel) (types.CarModel, error)
	ListCarModels(ctx context.Context) ([]types.CarModel, error)
	ListCarModelsByBrand(ctx context.Context, brandID int) ([]types.CarModel, error)
	CreateEngine(ctx context.Context, engine types.Engine) (types.Engine, error)
	ListEngines(ctx context.Context) ([]types.Engine, error)
	ListEnginesByModel(ctx context.Context, modelID int) ([]types.Engine, error)
}

// CatalogService encapsulates product and taxonomy use-cases.
type CatalogService struct {
	products  ProductRepository
	taxonomy  TaxonomyRepository
	publisher *events.Publisher
}

func NewCatalogService(products ProductRepository, taxonomy TaxonomyRepository, publisher *events.Publisher) *CatalogService {
	return &CatalogService{
		products:  products,
		taxonomy:  taxonomy,
		publisher: publisher,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product types.Product) (types.Product, error) {
	created, err := s.products.Create(ctx, product)
	if err != nil {
		return types.Product{}, err
	}
	s.publisher.Created(ctx, "product", created.ID)
	return created, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]types.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *CatalogService) ListProductsByTag(ctx context.Context, tag types.ProductTag) ([]types.Product, error) {
	return s.products.ListByTag(ctx, tag)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category types.Category) (types.Category, error) {
	return s.taxonomy.CreateCategory(ctx, category)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]types.Category, error) {
	return s.taxonomy.ListCategories(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, brand types.Brand) (types.Brand, error) {
	return s.taxonomy.CreateBrand(ctx, brand)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]types.Brand, error) {
	return s.taxonomy.ListBrands(ctx)
}

func (s *CatalogService) CreateCarModel(ctx context.Context, model types.CarModel) (types.CarModel, error) {
	return s.taxonomy.CreateCarModel(ctx, model)
}

func (s *CatalogService) ListCarModels(ctx context.Context) ([]types.CarModel, error) {
	return s.taxonomy.ListCarModels(ctx)
}

func (s *CatalogService) ListCarModelsByBrand(ctx context.Context, brandID int) ([]types.CarModel, error) {
	return s.taxonomy.ListCarModelsByBrand(ctx, brandID)
}

func (s *CatalogService) CreateEngine(ctx context.Context, engine types.Engine) (types.Engine, error) {
	return s.taxonomy.CreateEngine(ctx, engine)
}

func (s *CatalogService) ListEngines(ctx context.Context) ([]types.Engine, error) {
	return s.taxonomy.ListEngines(ctx)
}

func (s *CatalogService) ListEnginesByModel(ctx context.Context, modelID int) ([]types.Engine, error) {
	return s.taxonomy.ListEnginesByModel(ctx, modelID)
}
