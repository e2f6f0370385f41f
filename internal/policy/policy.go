// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package policy evaluates named authorization policies against a caller's
// claim set. The registry is populated once at startup and read-only
// afterwards, so evaluation is a pure function safe for unbounded concurrent
// use.
package policy

import "catalogd/internal/models"

// Policy names used by the catalog API.
const (
	// EmployeePolicy requires an authenticated caller holding an
	// EmployeeCode claim, any value.
	EmployeePolicy = "EmployeePolicy"

	// Employee005Policy requires an authenticated caller holding
	// EmployeeCode == "005".
	Employee005Policy = "Employee005Policy"
)

// Predicate decides whether a claim set satisfies a policy. Predicates must
// be side-effect free.
type Predicate func(claims models.Claims) bool

// RequireClaim allows callers holding a claim of the given type, any value.
func RequireClaim(claimType string) Predicate {
	return func(claims models.Claims) bool {
		return claims.Has(claimType)
	}
}

// RequireClaimValue allows callers holding a claim with the exact type and
// value.
func RequireClaimValue(claimType, value string) Predicate {
	return func(claims models.Claims) bool {
		return claims.HasValue(claimType, value)
	}
}

// Registry maps policy names to predicates. Register everything during
// startup; Register is not safe to call once requests are being served.
type Registry struct {
	policies map[string]Predicate
}

// NewRegistry returns an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Predicate)}
}

// Register binds a predicate to a policy name, replacing any previous
// binding.
func (r *Registry) Register(name string, p Predicate) {
	r.policies[name] = p
}

// Allow evaluates the named policy against the claim set. An unknown policy
// name denies.
func (r *Registry) Allow(name string, claims models.Claims) bool {
	p, ok := r.policies[name]
	if !ok {
		return false
	}
	return p(claims)
}

// Default returns the registry with the catalog API's policies configured.
func Default() *Registry {
	r := NewRegistry()
	r.Register(EmployeePolicy, RequireClaim(models.ClaimEmployeeCode))
	r.Register(Employee005Policy, RequireClaimValue(models.ClaimEmployeeCode, "005"))
	return r
}
