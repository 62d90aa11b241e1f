package oauth

import (
	"context"

	"github.com/docker/libtrust"
)

// Credentials identify the service account an assertion is issued for.
// They are read-only: assembly never mutates or retains them.
type Credentials struct {
	// Identity is the service account identifier, used as the "iss" claim.
	Identity string

	// Key is the private key the assertion is signed with.
	Key libtrust.PrivateKey
}

// CredentialsSupplier provides the current credentials.
//
// A supplier may block (eg. to read a key file or call a metadata service)
// and may cache or refresh internally. Failures are reported as CredentialsError.
type CredentialsSupplier interface {
	// Credentials returns the current credentials.
	Credentials(ctx context.Context) (Credentials, error)
}
