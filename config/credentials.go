package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/serviceaccount-auth/oauth/oauth"
	"github.com/serviceaccount-auth/oauth/oauth/credentials"
)

// Credentials is the configuration for an oauth.CredentialsSupplier.
type Credentials struct {
	Config CredentialsSupplierFactory

	// Memoize caches the first successfully supplied credentials.
	Memoize bool
}

func (c *Credentials) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig struct {
		Type    string                 `yaml:"type"`
		Memoize bool                   `yaml:"memoize"`
		Config  map[string]interface{} `yaml:"config"`
	}

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	var config CredentialsSupplierFactory

	switch rawConfig.Type {
	case "file":
		var factory fileCredentialsSupplier

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory

	case "pkcs12":
		var factory pkcs12CredentialsSupplier

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory

	default:
		return fmt.Errorf("unknown credentials supplier type: %s", rawConfig.Type)
	}

	c.Config = config
	c.Memoize = rawConfig.Memoize

	return nil
}

// Validate validates the configuration.
func (c Credentials) Validate() error {
	if c.Config == nil {
		return fmt.Errorf("credentials supplier configuration is required")
	}

	return c.Config.Validate()
}

// CreateCredentialsSupplier creates a new oauth.CredentialsSupplier from the configuration.
func (c Credentials) CreateCredentialsSupplier() (oauth.CredentialsSupplier, error) {
	if c.Config == nil {
		return nil, fmt.Errorf("credentials supplier configuration is required")
	}

	supplier, err := c.Config.CreateCredentialsSupplier()
	if err != nil {
		return nil, err
	}

	if c.Memoize {
		supplier = credentials.NewMemoizingSupplier(supplier)
	}

	return supplier, nil
}

// CredentialsSupplierFactory creates a new oauth.CredentialsSupplier.
type CredentialsSupplierFactory interface {
	CreateCredentialsSupplier() (oauth.CredentialsSupplier, error)
	Validate() error
}

type fileCredentialsSupplier struct {
	Identity       string `mapstructure:"identity"`
	PrivateKeyFile string `mapstructure:"privateKeyFile"`
}

func (c fileCredentialsSupplier) CreateCredentialsSupplier() (oauth.CredentialsSupplier, error) {
	return credentials.NewFileSupplier(c.Identity, c.PrivateKeyFile), nil
}

func (c fileCredentialsSupplier) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("credentials supplier: file: identity is required")
	}

	if c.PrivateKeyFile == "" {
		return fmt.Errorf("credentials supplier: file: privateKeyFile is required")
	}

	return nil
}

type pkcs12CredentialsSupplier struct {
	Identity string `mapstructure:"identity"`
	KeyFile  string `mapstructure:"keyFile"`
	Password string `mapstructure:"password"`
}

func (c pkcs12CredentialsSupplier) CreateCredentialsSupplier() (oauth.CredentialsSupplier, error) {
	return credentials.NewPKCS12Supplier(c.Identity, c.KeyFile, c.Password), nil
}

func (c pkcs12CredentialsSupplier) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("credentials supplier: pkcs12: identity is required")
	}

	if c.KeyFile == "" {
		return fmt.Errorf("credentials supplier: pkcs12: keyFile is required")
	}

	return nil
}
