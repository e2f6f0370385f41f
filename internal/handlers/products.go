// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"catalogd/internal/middleware"
	"catalogd/internal/models"
)

// ProductSource is the slice of the product store the handlers need.
type ProductSource interface {
	List() ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	Create(p *models.Product) error
	Update(p *models.Product) error
	Delete(id uuid.UUID) error
}

// CategoryFinder checks that a referenced category exists.
type CategoryFinder interface {
	FindByID(id uuid.UUID) (*models.Category, error)
}

// Products groups the product CRUD handlers.
type Products struct {
	products   ProductSource
	categories CategoryFinder
}

// NewProducts creates a new Products handler group.
func NewProducts(products ProductSource, categories CategoryFinder) *Products {
	return &Products{products: products, categories: categories}
}

type productRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HasStock    bool      `json:"has_stock"`
	CategoryID  uuid.UUID `json:"category_id"`
}

// categoryExists resolves the referenced category. A broken reference is a
// client error, not a server one, so the false case responds 400.
func (h *Products) categoryExists(w http.ResponseWriter, categoryID uuid.UUID) bool {
	if categoryID == uuid.Nil {
		// The entity validates this; let its notification do the talking.
		return true
	}
	category, err := h.categories.FindByID(categoryID)
	if err != nil {
		serverError(w, "find referenced category", err)
		return false
	}
	if category == nil {
		respondError(w, http.StatusBadRequest, "referenced category not found")
		return false
	}
	return true
}

// List returns all products.
// GET /products
func (h *Products) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		serverError(w, "list products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// Get returns a single product.
// GET /products/{id}
func (h *Products) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		serverError(w, "get product", err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Create adds a product after confirming the referenced category exists.
// POST /products
func (h *Products) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	identity := middleware.IdentityFromCtx(r.Context())
	product, notifications := models.NewProduct(req.Name, req.Description, req.HasStock, req.CategoryID, identity.AccountID.String())
	if !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}
	if !h.categoryExists(w, req.CategoryID) {
		return
	}

	if err := h.products.Create(product); err != nil {
		serverError(w, "create product", err)
		return
	}

	w.Header().Set("Location", "/products/"+product.ID.String())
	respondJSON(w, http.StatusCreated, map[string]string{"id": product.ID.String()})
}

// Update edits a product. The category reference is re-checked; an edit can
// move a product into a category deleted since the token was issued.
// PUT /products/{id}
func (h *Products) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		serverError(w, "find product", err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	identity := middleware.IdentityFromCtx(r.Context())
	notifications := product.EditInfo(req.Name, req.Description, req.HasStock, req.CategoryID, identity.AccountID.String())
	if !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}
	if !h.categoryExists(w, req.CategoryID) {
		return
	}

	if err := h.products.Update(product); err != nil {
		serverError(w, "update product", err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Delete removes a product.
// DELETE /products/{id}
func (h *Products) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		serverError(w, "find product", err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.products.Delete(id); err != nil {
		serverError(w, "delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
