package oauth

// TokenRequestFormat describes an assertion encoding.
//
// A format dictates which claims must end up in the claim set and the type name
// recorded in the header. The assembly logic is polymorphic over this interface;
// the concrete variant is selected at configuration time.
type TokenRequestFormat interface {
	// RequiredClaims returns the names of the claims the format requires.
	RequiredClaims() []string

	// TypeName returns the type name of the assertion encoding.
	TypeName() string
}

// JWTBearerFormat is the JWT-bearer assertion encoding.
type JWTBearerFormat struct{}

// RequiredClaims implements the TokenRequestFormat interface.
func (JWTBearerFormat) RequiredClaims() []string {
	return []string{ClaimIssuer, ClaimScope, ClaimAudience, ClaimExpirationTime, ClaimIssuedAt}
}

// TypeName implements the TokenRequestFormat interface.
func (JWTBearerFormat) TypeName() string {
	return "JWT"
}
