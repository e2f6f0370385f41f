// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"catalogd/internal/cache"
	"catalogd/internal/middleware"
	"catalogd/internal/models"
	"catalogd/internal/store"
)

// CategorySource is the slice of the category store the handlers need.
type CategorySource interface {
	List() ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	Create(c *models.Category) error
	Update(c *models.Category) error
	Delete(id uuid.UUID) error
}

// Categories groups the category CRUD handlers. Listings are public and
// served from the catalog cache when possible.
type Categories struct {
	categories CategorySource
	cache      *cache.CatalogCache
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories CategorySource, cache *cache.CatalogCache) *Categories {
	return &Categories{categories: categories, cache: cache}
}

type categoryRequest struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// List returns all categories.
// GET /categories
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.cache.Get(r.Context(), cache.CategoriesKey()); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	categories, err := h.categories.List()
	if err != nil {
		serverError(w, "list categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	body, err := json.Marshal(categories)
	if err != nil {
		serverError(w, "marshal categories", err)
		return
	}
	h.cache.Set(r.Context(), cache.CategoriesKey(), body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Get returns a single category.
// GET /categories/{id}
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		serverError(w, "get category", err)
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// Create adds a category.
// POST /categories
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	identity := middleware.IdentityFromCtx(r.Context())
	category, notifications := models.NewCategory(req.Name, identity.AccountID.String())
	if !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}

	if err := h.categories.Create(category); err != nil {
		serverError(w, "create category", err)
		return
	}
	h.cache.Invalidate(r.Context(), cache.CategoriesKey())

	w.Header().Set("Location", "/categories/"+category.ID.String())
	respondJSON(w, http.StatusCreated, map[string]string{"id": category.ID.String()})
}

// Update edits a category's name and active flag.
// PUT /categories/{id}
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	identity := middleware.IdentityFromCtx(r.Context())
	if notifications := category.EditInfo(req.Name, req.Active, identity.AccountID.String()); !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}

	if err := h.categories.Update(category); err != nil {
		serverError(w, "update category", err)
		return
	}
	h.cache.Invalidate(r.Context(), cache.CategoriesKey())

	respondJSON(w, http.StatusOK, category)
}

// Delete removes a category. Categories with products attached are refused.
// DELETE /categories/{id}
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	if err := h.categories.Delete(id); err != nil {
		if errors.Is(err, store.ErrCategoryInUse) {
			respondError(w, http.StatusConflict, "category has products attached")
			return
		}
		serverError(w, "delete category", err)
		return
	}
	h.cache.Invalidate(r.Context(), cache.CategoriesKey())

	w.WriteHeader(http.StatusNoContent)
}
