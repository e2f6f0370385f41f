package policy

import (
	"testing"

	"catalogd/internal/models"
)

func TestEmployee005Policy(t *testing.T) {
	reg := Default()

	tests := []struct {
		name   string
		claims models.Claims
		want   bool
	}{
		{"code 005 allowed", models.Claims{{Type: models.ClaimEmployeeCode, Value: "005"}}, true},
		{"code 006 denied", models.Claims{{Type: models.ClaimEmployeeCode, Value: "006"}}, false},
		{"empty claim set denied", nil, false},
		{"unrelated claims denied", models.Claims{{Type: models.ClaimName, Value: "Alice"}}, false},
		{"005 among other claims allowed", models.Claims{
			{Type: models.ClaimName, Value: "Alice"},
			{Type: models.ClaimEmployeeCode, Value: "005"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Allow(Employee005Policy, tt.claims); got != tt.want {
				t.Errorf("Allow(Employee005Policy, %+v) = %v, want %v", tt.claims, got, tt.want)
			}
		})
	}
}

func TestEmployeePolicy(t *testing.T) {
	reg := Default()

	tests := []struct {
		name   string
		claims models.Claims
		want   bool
	}{
		{"any employee code allowed", models.Claims{{Type: models.ClaimEmployeeCode, Value: "042"}}, true},
		{"empty claim set denied", nil, false},
		{"name claim alone denied", models.Claims{{Type: models.ClaimName, Value: "Alice"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Allow(EmployeePolicy, tt.claims); got != tt.want {
				t.Errorf("Allow(EmployeePolicy, %+v) = %v, want %v", tt.claims, got, tt.want)
			}
		})
	}
}

func TestUnknownPolicyDenies(t *testing.T) {
	reg := Default()
	claims := models.Claims{{Type: models.ClaimEmployeeCode, Value: "005"}}
	if reg.Allow("NoSuchPolicy", claims) {
		t.Error("unknown policy should deny even a privileged claim set")
	}
}

func TestRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register("p", func(models.Claims) bool { return false })
	reg.Register("p", func(models.Claims) bool { return true })
	if !reg.Allow("p", nil) {
		t.Error("the last registered predicate should win")
	}
}
