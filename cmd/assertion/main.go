package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/serviceaccount-auth/oauth/config"
	"github.com/serviceaccount-auth/oauth/oauth"
	jwtassertion "github.com/serviceaccount-auth/oauth/oauth/assertion/jwt"
	"github.com/serviceaccount-auth/oauth/oauth/tokensource"
	"github.com/serviceaccount-auth/oauth/pkg/option"
)

func main() {
	var (
		configFile string
		owner      string
		method     string
		scopes     string
		endpoint   string
		debug      bool
	)

	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file")
	flag.StringVar(&owner, "owner", "cli", "Owner name of the call to authorize")
	flag.StringVar(&method, "method", "main", "Method name of the call to authorize")
	flag.StringVar(&scopes, "scopes", "", "Comma separated call-level scopes (falls back to the configured global scope)")
	flag.StringVar(&endpoint, "endpoint", "", "Token endpoint URL to exchange the assertion at (print the assertion only when empty)")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	rawConfig, err := os.ReadFile(configFile)
	if err != nil {
		logger.Sugar().Fatalf("Error reading configuration file %s: %v", configFile, err)
	}

	var cfg config.Config

	if err := yaml.Unmarshal(rawConfig, &cfg); err != nil {
		logger.Sugar().Fatalf("Error parsing configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("Invalid configuration: %v", err)
	}

	supplier, err := cfg.Credentials.CreateCredentialsSupplier()
	if err != nil {
		logger.Sugar().Fatalf("Error creating credentials supplier: %v", err)
	}

	assembler, err := cfg.Assembler.CreateAssembler(supplier, oauth.WithLogger(logger))
	if err != nil {
		logger.Sugar().Fatalf("Error creating assembler: %v", err)
	}

	call := oauth.CallContext{
		Owner:  owner,
		Method: method,
	}

	if scopes != "" {
		call.CallScopes = option.Some(oauth.ScopeDeclaration{Values: strings.Split(scopes, ",")})
	}

	ctx := context.Background()
	signer := jwtassertion.NewSigner()

	if endpoint != "" {
		source := tokensource.NewSource(assembler, signer, supplier, endpoint, tokensource.WithLogger(logger))

		token, err := source.Token(ctx, call)
		if err != nil {
			logger.Sugar().Fatalf("Error obtaining access token: %v", err)
		}

		fmt.Println(token.Token)

		return
	}

	request, err := assembler.Assemble(ctx, call)
	if err != nil {
		logger.Sugar().Fatalf("Error assembling token request: %v", err)
	}

	credentials, err := supplier.Credentials(ctx)
	if err != nil {
		logger.Sugar().Fatalf("Error obtaining credentials: %v", err)
	}

	assertion, err := signer.Sign(request, credentials)
	if err != nil {
		logger.Sugar().Fatalf("Error signing assertion: %v", err)
	}

	fmt.Println(assertion)
}
