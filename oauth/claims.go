package oauth

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Claim is one named fact embedded in an assertion.
// Value is a string, except for time claims which are int64 seconds since epoch.
type Claim struct {
	Name  string
	Value any
}

// ClaimSet is an ordered collection of claims with unique names.
type ClaimSet []Claim

// Get returns the value of the named claim and whether it is present.
func (s ClaimSet) Get(name string) (any, bool) {
	for _, claim := range s {
		if claim.Name == name {
			return claim.Value, true
		}
	}

	return nil, false
}

// Names returns the claim names in claim-set order.
func (s ClaimSet) Names() []string {
	names := make([]string, 0, len(s))

	for _, claim := range s {
		names = append(names, claim.Name)
	}

	return names
}

// Names of the claims computed during assembly.
const (
	ClaimIssuer         = "iss"
	ClaimScope          = "scope"
	ClaimAudience       = "aud"
	ClaimIssuedAt       = "iat"
	ClaimExpirationTime = "exp"
)

// BuildClaimSet assembles the claim set of an assertion.
//
// Computed claims are inserted first in a fixed order (iss, scope, aud, iat, exp),
// then extra claims in the order provided. The first writer of a name wins:
// an extra claim can never shadow a computed claim or an earlier extra claim.
//
// After assembly, every claim the format declares as required must be present,
// otherwise BuildClaimSet returns a ConfigurationError.
func BuildClaimSet(format TokenRequestFormat, issuer string, scope string, audience string, now int64, duration int64, extra []Claim) (ClaimSet, error) {
	claims := make(ClaimSet, 0, 5+len(extra))

	claims = append(claims,
		Claim{Name: ClaimIssuer, Value: issuer},
		Claim{Name: ClaimScope, Value: scope},
		Claim{Name: ClaimAudience, Value: audience},
		Claim{Name: ClaimIssuedAt, Value: now},
		Claim{Name: ClaimExpirationTime, Value: now + duration},
	)

	for _, claim := range extra {
		if _, ok := claims.Get(claim.Name); ok {
			continue
		}

		claims = append(claims, claim)
	}

	var missing []string

	for _, name := range format.RequiredClaims() {
		if _, ok := claims.Get(name); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return nil, configurationErrorf("claim set is missing required claims: %s", strings.Join(missing, ", "))
	}

	return claims, nil
}
