package credentials

import (
	"context"
	"sync"

	"github.com/serviceaccount-auth/oauth/oauth"
)

// MemoizingSupplier caches the first successful result of another supplier.
//
// Failures are not cached: the next call tries the underlying supplier again.
type MemoizingSupplier struct {
	supplier oauth.CredentialsSupplier

	mu          sync.Mutex
	credentials oauth.Credentials
	cached      bool
}

// NewMemoizingSupplier returns a new MemoizingSupplier.
func NewMemoizingSupplier(supplier oauth.CredentialsSupplier) *MemoizingSupplier {
	return &MemoizingSupplier{
		supplier: supplier,
	}
}

// Credentials implements the oauth.CredentialsSupplier interface.
func (s *MemoizingSupplier) Credentials(ctx context.Context) (oauth.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached {
		return s.credentials, nil
	}

	credentials, err := s.supplier.Credentials(ctx)
	if err != nil {
		return oauth.Credentials{}, err
	}

	s.credentials = credentials
	s.cached = true

	return credentials, nil
}
