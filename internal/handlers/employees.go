// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"catalogd/internal/models"
	"catalogd/internal/store"
	"catalogd/internal/validation"
)

// AccountSource is the slice of the account store the employee handlers need.
type AccountSource interface {
	Create(email, password string) (*models.Account, error)
	Update(id uuid.UUID, email, password string) error
	FindByID(id uuid.UUID) (*models.Account, error)
	ListEmployees(page, rows int) ([]models.Employee, error)
	GetEmployee(id uuid.UUID) (*models.Employee, error)
}

// ClaimEditor manages the claims attached to an account.
type ClaimEditor interface {
	GetClaims(accountID uuid.UUID) (models.Claims, error)
	AddClaims(accountID uuid.UUID, claims models.Claims) error
	ReplaceClaim(accountID uuid.UUID, old, new models.Claim) error
}

// Employees groups the employee management handlers.
type Employees struct {
	accounts AccountSource
	claims   ClaimEditor
}

// NewEmployees creates a new Employees handler group.
func NewEmployees(accounts AccountSource, claims ClaimEditor) *Employees {
	return &Employees{accounts: accounts, claims: claims}
}

type employeeRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
}

// validate collects notifications the way the catalog entities do, so the
// employee endpoints report rejected input in the same shape.
func (req *employeeRequest) validate() validation.Notifications {
	return validation.NewContract().
		NotEmpty(req.Email, "Email").
		NotEmpty(req.Password, "Password").
		MinLen(req.Password, 5, "Password").
		NotEmpty(req.Name, "Name").
		NotEmpty(req.EmployeeCode, "EmployeeCode").
		Notifications()
}

// Create registers an employee account with its Name and EmployeeCode claims.
// POST /employees
func (h *Employees) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if notifications := req.validate(); !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}

	account, err := h.accounts.Create(req.Email, req.Password)
	if errors.Is(err, store.ErrEmailTaken) {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		serverError(w, "create employee account", err)
		return
	}

	err = h.claims.AddClaims(account.ID, models.Claims{
		{Type: models.ClaimName, Value: req.Name},
		{Type: models.ClaimEmployeeCode, Value: req.EmployeeCode},
	})
	if err != nil {
		serverError(w, "attach employee claims", err)
		return
	}

	w.Header().Set("Location", "/employees/"+account.ID.String())
	respondJSON(w, http.StatusCreated, map[string]string{"id": account.ID.String()})
}

// List returns one page of employees ordered by name.
// GET /employees?page=1&rows=10
func (h *Employees) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	rows := queryInt(r, "rows", 10)
	if page < 1 || rows < 1 || rows > 100 {
		respondError(w, http.StatusBadRequest, "page and rows must be positive, rows at most 100")
		return
	}

	employees, err := h.accounts.ListEmployees(page, rows)
	if err != nil {
		serverError(w, "list employees", err)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	respondJSON(w, http.StatusOK, employees)
}

// Get returns a single employee.
// GET /employees/{id}
func (h *Employees) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "employee not found")
		return
	}

	employee, err := h.accounts.GetEmployee(id)
	if err != nil {
		serverError(w, "get employee", err)
		return
	}
	if employee == nil {
		respondError(w, http.StatusNotFound, "employee not found")
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

// Update replaces an employee's credentials and identifying claims.
// PUT /employees/{id}
func (h *Employees) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "employee not found")
		return
	}

	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if notifications := req.validate(); !notifications.Valid() {
		respondValidation(w, notifications)
		return
	}

	account, err := h.accounts.FindByID(id)
	if err != nil {
		serverError(w, "find employee account", err)
		return
	}
	if account == nil {
		respondError(w, http.StatusNotFound, "employee not found")
		return
	}

	// Claims are converged before the account row, in separate statements
	// rather than one transaction. A failed credential update leaves the new
	// claims in place; setClaim is idempotent, so retrying the PUT converges.
	if err := h.setClaim(id, models.ClaimName, req.Name); err != nil {
		serverError(w, "update name claim", err)
		return
	}
	if err := h.setClaim(id, models.ClaimEmployeeCode, req.EmployeeCode); err != nil {
		serverError(w, "update employee code claim", err)
		return
	}

	if err := h.accounts.Update(id, req.Email, req.Password); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		serverError(w, "update employee account", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setClaim brings the account's claim of the given type to the wanted value,
// adding it when absent and replacing it when it differs.
func (h *Employees) setClaim(accountID uuid.UUID, claimType, value string) error {
	claims, err := h.claims.GetClaims(accountID)
	if err != nil {
		return err
	}
	current, ok := claims.Get(claimType)
	if !ok {
		return h.claims.AddClaims(accountID, models.Claims{{Type: claimType, Value: value}})
	}
	if current.Value == value {
		return nil
	}
	return h.claims.ReplaceClaim(accountID, current, models.Claim{Type: claimType, Value: value})
}

// queryInt reads an integer query parameter, falling back when absent.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
