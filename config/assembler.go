package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	xslices "golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/serviceaccount-auth/oauth/oauth"
	"github.com/serviceaccount-auth/oauth/pkg/slices"
)

// Assembler is the configuration for an oauth.Assembler.
type Assembler struct {
	Audience           string            `mapstructure:"audience"`
	SignatureAlgorithm string            `mapstructure:"signatureAlgorithm"`
	Format             string            `mapstructure:"format"`
	TokenDuration      time.Duration     `mapstructure:"tokenDuration"`
	GlobalScopes       []string          `mapstructure:"globalScopes"`
	AdditionalClaims   map[string]string `mapstructure:"additionalClaims"`
}

func (c *Assembler) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]interface{}

	err := value.Decode(&raw)
	if err != nil {
		return err
	}

	return decode(raw, c)
}

// Validate validates the configuration.
func (c Assembler) Validate() error {
	if c.Audience == "" {
		return fmt.Errorf("assembler: audience is required")
	}

	if c.SignatureAlgorithm == "" {
		return fmt.Errorf("assembler: signature algorithm is required")
	}

	if c.TokenDuration <= 0 {
		return fmt.Errorf("assembler: token duration must be greater than zero")
	}

	if _, err := c.createFormat(); err != nil {
		return err
	}

	return nil
}

func (c Assembler) createFormat() (oauth.TokenRequestFormat, error) {
	switch c.Format {
	case "", "jwt":
		return oauth.JWTBearerFormat{}, nil
	default:
		return nil, fmt.Errorf("unknown token request format: %s", c.Format)
	}
}

// CreateAssembler creates a new oauth.Assembler from the configuration.
func (c Assembler) CreateAssembler(credentials oauth.CredentialsSupplier, opts ...oauth.AssemblerOption) (oauth.Assembler, error) {
	format, err := c.createFormat()
	if err != nil {
		return oauth.Assembler{}, err
	}

	if len(c.GlobalScopes) > 0 {
		opts = append(opts, oauth.WithGlobalScope(strings.Join(c.GlobalScopes, ",")))
	}

	if len(c.AdditionalClaims) > 0 {
		// map iteration order is random, so order claims by name for deterministic assembly
		names := maps.Keys(c.AdditionalClaims)
		xslices.Sort(names)

		claims := slices.Map(names, func(name string) oauth.Claim {
			return oauth.Claim{Name: name, Value: c.AdditionalClaims[name]}
		})

		opts = append(opts, oauth.WithAdditionalClaims(claims))
	}

	return oauth.NewAssembler(
		c.Audience,
		c.SignatureAlgorithm,
		format,
		credentials,
		c.TokenDuration,
		opts...,
	), nil
}
