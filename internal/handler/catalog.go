package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Pisarev203/tg-shop/internal/catalog"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Sort int    `json:"sort"`
}

type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	CategoryID  *int64 `json:"categoryId"`
	IsActive    *bool  `json:"isActive"`
	Sort        int    `json:"sort"`
}

// CatalogHandler serves the public catalog and the admin category/product
// management endpoints.
type CatalogHandler struct {
	service  catalog.Service
	validate *validator.Validate
}

func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *CatalogHandler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/catalog", h.handlePublicCatalog)
}

func (h *CatalogHandler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/categories", h.handleListCategories)
	router.Post("/categories", h.handleCreateCategory)
	router.Put("/categories/{id}", h.handleUpdateCategory)
	router.Delete("/categories/{id}", h.handleDeleteCategory)

	router.Get("/products", h.handleAdminCatalog)
	router.Post("/products", h.handleCreateProduct)
	router.Put("/products/{id}", h.handleUpdateProduct)
	router.Delete("/products/{id}", h.handleDeleteProduct)
}

func (h *CatalogHandler) handlePublicCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.PublicCatalog(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load public catalog")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	created, err := h.service.CreateCategory(r.Context(), payload.Name, payload.Sort)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create category")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	updated, err := h.service.UpdateCategory(r.Context(), id, payload.Name, payload.Sort)
	if err != nil {
		log.Warn().Err(err).Int64("category_id", id).Msg("Failed to update category")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		log.Warn().Err(err).Int64("category_id", id).Msg("Failed to delete category")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CatalogHandler) handleAdminCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.AdminCatalog(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load admin catalog")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create product")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	input, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), id, input)
	if err != nil {
		log.Warn().Err(err).Int64("product_id", id).Msg("Failed to update product")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		log.Warn().Err(err).Int64("product_id", id).Msg("Failed to delete product")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CatalogHandler) decodeCategory(w http.ResponseWriter, r *http.Request) (CategoryRequest, bool) {
	var payload CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return payload, false
	}
	if err := h.validate.Struct(payload); err != nil {
		respondWithValidationError(w, err)
		return payload, false
	}
	return payload, true
}

func (h *CatalogHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (catalog.ProductInput, bool) {
	var payload ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return catalog.ProductInput{}, false
	}
	if err := h.validate.Struct(payload); err != nil {
		respondWithValidationError(w, err)
		return catalog.ProductInput{}, false
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	return catalog.ProductInput{
		Name:        payload.Name,
		Price:       payload.Price,
		Description: payload.Description,
		PhotoURL:    payload.Photo,
		CategoryID:  payload.CategoryID,
		IsActive:    isActive,
		Sort:        payload.Sort,
	}, true
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
