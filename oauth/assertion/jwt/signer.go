package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/serviceaccount-auth/oauth/oauth"
)

// Signer serializes a token request into a signed JWS compact assertion.
//
// The signing method is resolved from the request header's signer algorithm name.
type Signer struct{}

// NewSigner returns a new Signer.
func NewSigner() Signer {
	return Signer{}
}

// Sign implements the oauth.AssertionSigner interface.
func (Signer) Sign(request oauth.TokenRequest, credentials oauth.Credentials) (string, error) {
	method := jwt.GetSigningMethod(request.Header.SignerAlgorithm)
	if method == nil {
		return "", oauth.NewConfigurationError(fmt.Sprintf("unknown signer algorithm: %s", request.Header.SignerAlgorithm))
	}

	claims := jwt.MapClaims{}

	for _, claim := range request.ClaimSet {
		claims[claim.Name] = claim.Value
	}

	token := jwt.NewWithClaims(method, claims)
	token.Header["typ"] = request.Header.Type

	signedToken, err := token.SignedString(credentials.Key.CryptoPrivateKey())
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
