package oauth

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/serviceaccount-auth/oauth/pkg/option"
)

// Assembler builds token requests for outgoing calls.
//
// All configuration is read at construction time and immutable afterwards,
// so an Assembler is safe for concurrent use. The only blocking point during
// assembly is the credentials supplier.
type Assembler struct {
	audience           string
	signatureAlgorithm string
	format             TokenRequestFormat
	credentials        CredentialsSupplier
	tokenDuration      time.Duration

	globalScope      option.Option[string]
	additionalClaims []Claim

	clock  clockwork.Clock
	logger *zap.Logger
}

// AssemblerOption configures an Assembler.
type AssemblerOption interface {
	applyAssembler(a *Assembler)
}

type withClock struct {
	clock clockwork.Clock
}

func (o withClock) applyAssembler(a *Assembler) {
	a.clock = o.clock
}

// WithClock sets the clock in an Assembler.
func WithClock(clock clockwork.Clock) AssemblerOption {
	return withClock{clock: clock}
}

type withGlobalScope struct {
	scope string
}

func (o withGlobalScope) applyAssembler(a *Assembler) {
	a.globalScope = option.Some(o.scope)
}

// WithGlobalScope sets the fallback scope used for calls without a scope declaration.
func WithGlobalScope(scope string) AssemblerOption {
	return withGlobalScope{scope: scope}
}

type withAdditionalClaims struct {
	claims []Claim
}

func (o withAdditionalClaims) applyAssembler(a *Assembler) {
	a.additionalClaims = o.claims
}

// WithAdditionalClaims sets static claims appended to every claim set.
// They are appended in the given order and can never shadow computed claims.
func WithAdditionalClaims(claims []Claim) AssemblerOption {
	return withAdditionalClaims{claims: claims}
}

type withLogger struct {
	logger *zap.Logger
}

func (o withLogger) applyAssembler(a *Assembler) {
	a.logger = o.logger
}

// WithLogger sets the logger in an Assembler.
func WithLogger(logger *zap.Logger) AssemblerOption {
	return withLogger{logger: logger}
}

// NewAssembler returns a new Assembler.
func NewAssembler(
	audience string,
	signatureAlgorithm string,
	format TokenRequestFormat,
	credentials CredentialsSupplier,
	tokenDuration time.Duration,
	opts ...AssemblerOption,
) Assembler {
	a := Assembler{
		audience:           audience,
		signatureAlgorithm: signatureAlgorithm,
		format:             format,
		credentials:        credentials,
		tokenDuration:      tokenDuration,
		globalScope:        option.None[string](),
	}

	for _, opt := range opts {
		opt.applyAssembler(&a)
	}

	if a.clock == nil {
		a.clock = clockwork.NewRealClock()
	}

	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	return a
}

// Assemble builds the token request for one outgoing call.
//
// The clock is read once per call. ConfigurationError and CredentialsError
// propagate unchanged; there is no partial result.
func (a Assembler) Assemble(ctx context.Context, call CallContext) (TokenRequest, error) {
	now := a.clock.Now().Unix()

	header, err := NewHeader(a.signatureAlgorithm, a.format.TypeName())
	if err != nil {
		return TokenRequest{}, err
	}

	scope, err := ResolveScope(call, a.globalScope)
	if err != nil {
		return TokenRequest{}, err
	}

	credentials, err := a.credentials.Credentials(ctx)
	if err != nil {
		return TokenRequest{}, err
	}

	claimSet, err := BuildClaimSet(a.format, credentials.Identity, scope, a.audience, now, int64(a.tokenDuration.Seconds()), a.additionalClaims)
	if err != nil {
		return TokenRequest{}, err
	}

	a.logger.Debug("token request assembled",
		zap.String("call", call.Identity()),
		zap.String("scope", scope),
	)

	return TokenRequest{
		Header:   header,
		ClaimSet: claimSet,
	}, nil
}
