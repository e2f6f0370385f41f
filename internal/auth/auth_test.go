package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"catalogd/internal/models"
	"catalogd/internal/token"
)

// fakeAccounts is an in-memory AccountSource keyed by email. Passwords are
// stored in the clear; CheckPassword compares directly.
type fakeAccounts struct {
	accounts  map[string]*models.Account
	passwords map[string]string
	err       error
}

func (f *fakeAccounts) FindByEmail(email string) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[email], nil
}

func (f *fakeAccounts) CheckPassword(a *models.Account, password string) bool {
	return f.passwords[a.Email] == password
}

type fakeClaims struct {
	claims map[uuid.UUID]models.Claims
}

func (f *fakeClaims) GetClaims(accountID uuid.UUID) (models.Claims, error) {
	return f.claims[accountID], nil
}

func testAuthenticator(t *testing.T) (*Authenticator, *fakeAccounts, *fakeClaims, *token.Codec) {
	t.Helper()
	codec, err := token.NewCodec(token.Config{
		Secret:   "test-key",
		Issuer:   "catalogd",
		Audience: "catalogd-clients",
		TTL:      time.Hour,
	})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	accounts := &fakeAccounts{accounts: map[string]*models.Account{}, passwords: map[string]string{}}
	claims := &fakeClaims{claims: map[uuid.UUID]models.Claims{}}
	return NewAuthenticator(accounts, claims, codec), accounts, claims, codec
}

func TestLoginUnknownEmail(t *testing.T) {
	a, _, _, _ := testAuthenticator(t)

	_, err := a.Login("a@b.com", "secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	a, accounts, _, _ := testAuthenticator(t)
	id := uuid.New()
	accounts.accounts["a@b.com"] = &models.Account{ID: id, Email: "a@b.com"}
	accounts.passwords["a@b.com"] = "secret"

	_, err := a.Login("a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a, accounts, _, _ := testAuthenticator(t)
	accounts.accounts["known@b.com"] = &models.Account{ID: uuid.New(), Email: "known@b.com"}
	accounts.passwords["known@b.com"] = "secret"

	_, missErr := a.Login("unknown@b.com", "secret")
	_, pwErr := a.Login("known@b.com", "wrong")

	if missErr.Error() != pwErr.Error() {
		t.Errorf("lookup-miss error %q differs from wrong-password error %q", missErr, pwErr)
	}
}

func TestLoginSuccess(t *testing.T) {
	a, accounts, claimSrc, codec := testAuthenticator(t)
	id := uuid.New()
	accounts.accounts["a@b.com"] = &models.Account{ID: id, Email: "a@b.com"}
	accounts.passwords["a@b.com"] = "secret"
	claimSrc.claims[id] = models.Claims{
		{Type: models.ClaimName, Value: "Alice"},
		{Type: models.ClaimEmployeeCode, Value: "005"},
	}

	signed, err := a.Login("a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.AccountID != id {
		t.Errorf("AccountID = %v, want %v", identity.AccountID, id)
	}
	if identity.Email != "a@b.com" {
		t.Errorf("Email = %q, want a@b.com", identity.Email)
	}
	if !identity.Claims.HasValue(models.ClaimEmployeeCode, "005") {
		t.Errorf("EmployeeCode claim missing from token: %+v", identity.Claims)
	}
	if !identity.Claims.HasValue(models.ClaimName, "Alice") {
		t.Errorf("Name claim missing from token: %+v", identity.Claims)
	}
}

func TestLoginStoreFailure(t *testing.T) {
	a, accounts, _, _ := testAuthenticator(t)
	accounts.err = errors.New("store unavailable")

	_, err := a.Login("a@b.com", "secret")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("a store failure must not masquerade as bad credentials")
	}
}
