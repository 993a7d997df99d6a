package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/types"
)

// CatalogHandler provides HTTP handlers for products and the
// category/brand/model/engine registries.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CatalogRouter registers catalog routes. The paths (trailing slashes
// included) mirror what the storefront already calls.
func CatalogRouter(r chi.Router, catalogService *services.CatalogService) {
	handler := NewCatalogHandler(catalogService)

	r.Post("/product/", handler.CreateProduct)
	r.Get("/product/list/", handler.ListProducts)
	r.Get("/product/list/{tag}", handler.ListProductsByTag)

	r.Post("/category/save/", handler.CreateCategory)
	r.Get("/category/list/", handler.ListCategories)

	r.Post("/brand/save/", handler.CreateBrand)
	r.Get("/brand/list/", handler.ListBrands)

	r.Post("/model/save/", handler.CreateCarModel)
	r.Get("/model/list/", handler.ListCarModels)
	r.Get("/model/list/{brandID}", handler.ListCarModelsByBrand)

	r.Post("/engine/save/", handler.CreateEngine)
	r.Get("/engine/list/", handler.ListEngines)
	r.Get("/engine/list/{modelID}", handler.ListEnginesByModel)
}

type ProductRequest struct {
	ProductName        string           `json:"product_name"`
	ImageHref          string           `json:"image_href"`
	ProductPrice       string           `json:"product_price"`
	ProductDescription string           `json:"product_description"`
	ProductOptions     string           `json:"product_options"`
	ImageURL           string           `json:"image_url"`
	ImageAlt           string           `json:"imageAlt"`
	Tags               types.ProductTag `json:"tags"`
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductName == "" {
		writeError(w, http.StatusBadRequest, "product_name is required")
		return
	}
	if !req.Tags.Valid() {
		writeError(w, http.StatusBadRequest, "tags must be one of LATEST, NEW, MOST_VIEW")
		return
	}

	created, err := h.catalogService.CreateProduct(r.Context(), types.Product{
		ProductName:        req.ProductName,
		ImageHref:          req.ImageHref,
		ProductPrice:       req.ProductPrice,
		ProductDescription: req.ProductDescription,
		ProductOptions:     req.ProductOptions,
		ImageURL:           req.ImageURL,
		ImageAlt:           req.ImageAlt,
		Tags:               req.Tags,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "Product is not found")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) ListProductsByTag(w http.ResponseWriter, r *http.Request) {
	tag := types.ProductTag(chi.URLParam(r, "tag"))

	products, err := h.catalogService.ListProductsByTag(r.Context(), tag)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "Product is not found")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

type NamedRequest struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.catalogService.CreateCategory(r.Context(), types.Category{Name: req.Name})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if len(categories) == 0 {
		writeError(w, http.StatusNotFound, "Category is not found")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.catalogService.CreateBrand(r.Context(), types.Brand{Name: req.Name})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create brand")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalogService.ListBrands(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list brands")
		return
	}
	if len(brands) == 0 {
		writeError(w, http.StatusNotFound, "Brand is not found")
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

type CarModelRequest struct {
	Name    string `json:"name"`
	BrandID int    `json:"brand_id"`
}

func (h *CatalogHandler) CreateCarModel(w http.ResponseWriter, r *http.Request) {
	var req CarModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.BrandID < 0 {
		writeError(w, http.StatusBadRequest, "invalid brand_id")
		return
	}

	created, err := h.catalogService.CreateCarModel(r.Context(), types.CarModel{Name: req.Name, BrandID: req.BrandID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create model")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListCarModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.catalogService.ListCarModels(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list models")
		return
	}
	if len(models) == 0 {
		writeError(w, http.StatusNotFound, "Model is not found")
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (h *CatalogHandler) ListCarModelsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := parseIDParam(r, "brandID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	models, err := h.catalogService.ListCarModelsByBrand(r.Context(), brandID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list models")
		return
	}
	if len(models) == 0 {
		writeError(w, http.StatusNotFound, "Model is not found")
		return
	}
	writeJSON(w, http.StatusOK, models)
}

type EngineRequest struct {
	Name    string `json:"name"`
	ModelID int    `json:"model_id"`
}

func (h *CatalogHandler) CreateEngine(w http.ResponseWriter, r *http.Request) {
	var req EngineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.ModelID < 0 {
		writeError(w, http.StatusBadRequest, "invalid model_id")
		return
	}

	created, err := h.catalogService.CreateEngine(r.Context(), types.Engine{Name: req.Name, ModelID: req.ModelID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create engine")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListEngines(w http.ResponseWriter, r *http.Request) {
	engines, err := h.catalogService.ListEngines(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list engines")
		return
	}
	if len(engines) == 0 {
		writeError(w, http.StatusNotFound, "Engine is not found")
		return
	}
	writeJSON(w, http.StatusOK, engines)
}

func (h *CatalogHandler) ListEnginesByModel(w http.ResponseWriter, r *http.Request) {
	modelID, err := parseIDParam(r, "modelID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	engines, err := h.catalogService.ListEnginesByModel(r.Context(), modelID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list engines")
		return
	}
	if len(engines) == 0 {
		writeError(w, http.StatusNotFound, "Engine is not found")
		return
	}
	writeJSON(w, http.StatusOK, engines)
}
