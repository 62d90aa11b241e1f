package credentials

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/docker/libtrust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceaccount-auth/oauth/oauth"
)

func TestStaticSupplier(t *testing.T) {
	expected := oauth.Credentials{
		Identity: "account@example.iam.example.com",
	}

	supplier := NewStaticSupplier(expected)

	credentials, err := supplier.Credentials(context.Background())
	require.NoError(t, err)

	assert.Equal(t, expected, credentials)
}

func TestFileSupplier(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		key, err := libtrust.GenerateECP256PrivateKey()
		require.NoError(t, err)

		keyFile := filepath.Join(t.TempDir(), "private.pem")
		require.NoError(t, libtrust.SaveKey(keyFile, key))

		supplier := NewFileSupplier("account@example.iam.example.com", keyFile)

		credentials, err := supplier.Credentials(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "account@example.iam.example.com", credentials.Identity)
		assert.Equal(t, key.KeyID(), credentials.Key.KeyID())
	})

	t.Run("Error", func(t *testing.T) {
		supplier := NewFileSupplier("account@example.iam.example.com", filepath.Join(t.TempDir(), "missing.pem"))

		_, err := supplier.Credentials(context.Background())
		require.Error(t, err)

		var credentialsError oauth.CredentialsError
		assert.ErrorAs(t, err, &credentialsError)
	})
}

type countingSupplier struct {
	credentials oauth.Credentials
	err         error
	calls       int
}

func (s *countingSupplier) Credentials(_ context.Context) (oauth.Credentials, error) {
	s.calls++

	if s.err != nil {
		return oauth.Credentials{}, s.err
	}

	return s.credentials, nil
}

func TestMemoizingSupplier(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		underlying := &countingSupplier{
			credentials: oauth.Credentials{Identity: "account@example.iam.example.com"},
		}

		supplier := NewMemoizingSupplier(underlying)

		for i := 0; i < 3; i++ {
			credentials, err := supplier.Credentials(context.Background())
			require.NoError(t, err)

			assert.Equal(t, underlying.credentials, credentials)
		}

		assert.Equal(t, 1, underlying.calls)
	})

	t.Run("FailuresAreNotCached", func(t *testing.T) {
		underlying := &countingSupplier{
			err: oauth.CredentialsError{Err: errors.New("metadata service unavailable")},
		}

		supplier := NewMemoizingSupplier(underlying)

		_, err := supplier.Credentials(context.Background())
		require.Error(t, err)

		_, err = supplier.Credentials(context.Background())
		require.Error(t, err)

		assert.Equal(t, 2, underlying.calls)
	})
}
