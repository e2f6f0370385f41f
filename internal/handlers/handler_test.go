// handler_test.go provides shared in-memory fakes and request helpers for
// the handler tests. The fakes satisfy the same narrow interfaces the real
// stores do, so handlers are exercised without PostgreSQL.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"catalogd/internal/middleware"
	"catalogd/internal/models"
	"catalogd/internal/store"
	"catalogd/internal/token"
)

// fakeCategories is an in-memory CategorySource.
type fakeCategories struct {
	byID map[uuid.UUID]*models.Category
	err  error
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{byID: make(map[uuid.UUID]*models.Category)}
}

func (f *fakeCategories) List() ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Category
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategories) FindByID(id uuid.UUID) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCategories) Create(c *models.Category) error {
	if f.err != nil {
		return f.err
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategories) Update(c *models.Category) error {
	if f.err != nil {
		return f.err
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategories) Delete(id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.byID, id)
	return nil
}

// fakeProducts is an in-memory ProductSource.
type fakeProducts struct {
	byID map[uuid.UUID]*models.Product
	err  error
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{byID: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProducts) List() ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) FindByID(id uuid.UUID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeProducts) Create(p *models.Product) error {
	if f.err != nil {
		return f.err
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Update(p *models.Product) error {
	if f.err != nil {
		return f.err
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Delete(id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.byID, id)
	return nil
}

// fakeAccounts is an in-memory AccountSource. updateErr, when set, fails the
// next Update call and then clears itself.
type fakeAccounts struct {
	byID      map[uuid.UUID]*models.Account
	byEmail   map[string]*models.Account
	updateErr error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		byID:    make(map[uuid.UUID]*models.Account),
		byEmail: make(map[string]*models.Account),
	}
}

func (f *fakeAccounts) Create(email, password string) (*models.Account, error) {
	if _, taken := f.byEmail[email]; taken {
		return nil, store.ErrEmailTaken
	}
	a := &models.Account{ID: uuid.New(), Email: email, PasswordHash: "hashed:" + password}
	f.byID[a.ID] = a
	f.byEmail[email] = a
	return a, nil
}

func (f *fakeAccounts) Update(id uuid.UUID, email, password string) error {
	if f.updateErr != nil {
		err := f.updateErr
		f.updateErr = nil
		return err
	}
	a := f.byID[id]
	if other, taken := f.byEmail[email]; taken && other.ID != id {
		return store.ErrEmailTaken
	}
	delete(f.byEmail, a.Email)
	a.Email = email
	a.PasswordHash = "hashed:" + password
	f.byEmail[email] = a
	return nil
}

func (f *fakeAccounts) FindByID(id uuid.UUID) (*models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccounts) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	a := f.byID[id]
	if a == nil {
		return nil, nil
	}
	return &models.Employee{ID: a.ID, Email: a.Email, Name: "Fake " + a.Email}, nil
}

func (f *fakeAccounts) ListEmployees(page, rows int) ([]models.Employee, error) {
	var out []models.Employee
	for _, a := range f.byID {
		out = append(out, models.Employee{ID: a.ID, Email: a.Email, Name: "Fake " + a.Email})
	}
	return out, nil
}

// fakeClaims is an in-memory ClaimEditor.
type fakeClaims struct {
	byAccount map[uuid.UUID]models.Claims
}

func newFakeClaims() *fakeClaims {
	return &fakeClaims{byAccount: make(map[uuid.UUID]models.Claims)}
}

func (f *fakeClaims) GetClaims(accountID uuid.UUID) (models.Claims, error) {
	return f.byAccount[accountID], nil
}

func (f *fakeClaims) AddClaims(accountID uuid.UUID, claims models.Claims) error {
	for _, c := range claims {
		if f.byAccount[accountID].HasValue(c.Type, c.Value) {
			return store.ErrDuplicateClaim
		}
		f.byAccount[accountID] = append(f.byAccount[accountID], c)
	}
	return nil
}

func (f *fakeClaims) ReplaceClaim(accountID uuid.UUID, old, new models.Claim) error {
	claims := f.byAccount[accountID]
	for i, c := range claims {
		if c == old {
			claims[i] = new
			return nil
		}
	}
	return store.ErrClaimNotFound
}

// asEmployee attaches a verified identity to the request, the way
// LoadIdentity would after checking a real token.
func asEmployee(r *http.Request, accountID uuid.UUID) *http.Request {
	identity := &token.Identity{
		AccountID: accountID,
		Email:     "caller@test.local",
		Claims:    models.Claims{{Type: models.ClaimEmployeeCode, Value: "005"}},
	}
	ctx := context.WithValue(r.Context(), middleware.IdentityKey, identity)
	return r.WithContext(ctx)
}

// jsonRequest builds a request carrying a JSON body and a caller identity.
func jsonRequest(t *testing.T, method, target, body string, accountID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return asEmployee(req, accountID)
}

// decodeBody unmarshals a recorded JSON response into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
}

// serve routes the request through a throwaway chi router so URL params
// resolve the way they do in production.
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
