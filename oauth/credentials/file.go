package credentials

import (
	"context"
	"os"

	"github.com/docker/libtrust"
	"golang.org/x/crypto/pkcs12"

	"github.com/serviceaccount-auth/oauth/oauth"
)

// FileSupplier loads a PEM encoded private key from a file.
//
// The file is read on every call; wrap the supplier in a MemoizingSupplier
// to avoid repeated reads.
type FileSupplier struct {
	identity       string
	privateKeyFile string
}

// NewFileSupplier returns a new FileSupplier.
func NewFileSupplier(identity string, privateKeyFile string) FileSupplier {
	return FileSupplier{
		identity:       identity,
		privateKeyFile: privateKeyFile,
	}
}

// Credentials implements the oauth.CredentialsSupplier interface.
func (s FileSupplier) Credentials(_ context.Context) (oauth.Credentials, error) {
	key, err := libtrust.LoadKeyFile(s.privateKeyFile)
	if err != nil {
		return oauth.Credentials{}, oauth.CredentialsError{Err: err}
	}

	return oauth.Credentials{
		Identity: s.identity,
		Key:      key,
	}, nil
}

// PKCS12Supplier loads a private key from a legacy PKCS#12 service account bundle.
type PKCS12Supplier struct {
	identity string
	keyFile  string
	password string
}

// NewPKCS12Supplier returns a new PKCS12Supplier.
func NewPKCS12Supplier(identity string, keyFile string, password string) PKCS12Supplier {
	return PKCS12Supplier{
		identity: identity,
		keyFile:  keyFile,
		password: password,
	}
}

// Credentials implements the oauth.CredentialsSupplier interface.
func (s PKCS12Supplier) Credentials(_ context.Context) (oauth.Credentials, error) {
	data, err := os.ReadFile(s.keyFile)
	if err != nil {
		return oauth.Credentials{}, oauth.CredentialsError{Err: err}
	}

	cryptoKey, _, err := pkcs12.Decode(data, s.password)
	if err != nil {
		return oauth.Credentials{}, oauth.CredentialsError{Err: err}
	}

	key, err := libtrust.FromCryptoPrivateKey(cryptoKey)
	if err != nil {
		return oauth.Credentials{}, oauth.CredentialsError{Err: err}
	}

	return oauth.Credentials{
		Identity: s.identity,
		Key:      key,
	}, nil
}
