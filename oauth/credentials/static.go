package credentials

import (
	"context"

	"github.com/serviceaccount-auth/oauth/oauth"
)

// StaticSupplier supplies a fixed set of credentials.
type StaticSupplier struct {
	credentials oauth.Credentials
}

// NewStaticSupplier returns a new StaticSupplier.
func NewStaticSupplier(credentials oauth.Credentials) StaticSupplier {
	return StaticSupplier{
		credentials: credentials,
	}
}

// Credentials implements the oauth.CredentialsSupplier interface.
func (s StaticSupplier) Credentials(_ context.Context) (oauth.Credentials, error) {
	return s.credentials, nil
}
