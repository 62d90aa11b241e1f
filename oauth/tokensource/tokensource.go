package tokensource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/serviceaccount-auth/oauth/oauth"
)

// GrantTypeJWTBearer is the grant type of the JWT-bearer assertion flow.
const GrantTypeJWTBearer = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// defaultLeeway is subtracted from a token's lifetime when deciding whether
// a cached token is still usable.
const defaultLeeway = 30 * time.Second

// AccessToken is a bearer token obtained from a token endpoint.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

// Source assembles, signs and exchanges assertions for access tokens.
//
// Tokens are cached per resolved scope and reused until close to expiry,
// so concurrent calls with the same scope share one exchange round trip.
type Source struct {
	assembler   oauth.Assembler
	signer      oauth.AssertionSigner
	credentials oauth.CredentialsSupplier
	endpoint    string

	httpClient *http.Client
	clock      clockwork.Clock
	logger     *zap.Logger
	leeway     time.Duration

	mu     sync.Mutex
	cached map[string]AccessToken
}

// Option configures a Source.
type Option interface {
	applySource(s *Source)
}

type withHTTPClient struct {
	client *http.Client
}

func (o withHTTPClient) applySource(s *Source) {
	s.httpClient = o.client
}

// WithHTTPClient sets the HTTP client used for the token exchange.
func WithHTTPClient(client *http.Client) Option {
	return withHTTPClient{client: client}
}

type withClock struct {
	clock clockwork.Clock
}

func (o withClock) applySource(s *Source) {
	s.clock = o.clock
}

// WithClock sets the clock in a Source.
func WithClock(clock clockwork.Clock) Option {
	return withClock{clock: clock}
}

type withLogger struct {
	logger *zap.Logger
}

func (o withLogger) applySource(s *Source) {
	s.logger = o.logger
}

// WithLogger sets the logger in a Source.
func WithLogger(logger *zap.Logger) Option {
	return withLogger{logger: logger}
}

type withLeeway struct {
	leeway time.Duration
}

func (o withLeeway) applySource(s *Source) {
	s.leeway = o.leeway
}

// WithLeeway sets how long before expiry a cached token is discarded.
func WithLeeway(leeway time.Duration) Option {
	return withLeeway{leeway: leeway}
}

// NewSource returns a new Source.
func NewSource(
	assembler oauth.Assembler,
	signer oauth.AssertionSigner,
	credentials oauth.CredentialsSupplier,
	endpoint string,
	opts ...Option,
) *Source {
	s := &Source{
		assembler:   assembler,
		signer:      signer,
		credentials: credentials,
		endpoint:    endpoint,
		leeway:      defaultLeeway,
		cached:      make(map[string]AccessToken),
	}

	for _, opt := range opts {
		opt.applySource(s)
	}

	if s.httpClient == nil {
		s.httpClient = http.DefaultClient
	}

	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	return s
}

// Token returns an access token authorizing the given call.
//
// A cached token for the call's resolved scope is returned when it is still
// valid; otherwise a fresh assertion is assembled, signed and exchanged.
func (s *Source) Token(ctx context.Context, call oauth.CallContext) (AccessToken, error) {
	request, err := s.assembler.Assemble(ctx, call)
	if err != nil {
		return AccessToken{}, err
	}

	scope := ""
	if value, ok := request.ClaimSet.Get(oauth.ClaimScope); ok {
		scope, _ = value.(string)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.cached[scope]; ok && s.clock.Now().Add(s.leeway).Before(token.ExpiresAt) {
		s.logger.Debug("reusing cached access token", zap.String("scope", scope))

		return token, nil
	}

	credentials, err := s.credentials.Credentials(ctx)
	if err != nil {
		return AccessToken{}, err
	}

	assertion, err := s.signer.Sign(request, credentials)
	if err != nil {
		return AccessToken{}, err
	}

	token, err := s.exchange(ctx, assertion)
	if err != nil {
		return AccessToken{}, err
	}

	s.cached[scope] = token

	s.logger.Debug("access token obtained",
		zap.String("call", call.Identity()),
		zap.String("scope", scope),
		zap.Time("expires_at", token.ExpiresAt),
	)

	return token, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *Source) exchange(ctx context.Context, assertion string) (AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", GrantTypeJWTBearer)
	form.Set("assertion", assertion)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return AccessToken{}, err
	}

	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := s.httpClient.Do(request)
	if err != nil {
		return AccessToken{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return AccessToken{}, fmt.Errorf("token endpoint returned status %d", response.StatusCode)
	}

	var decoded tokenResponse

	err = json.NewDecoder(response.Body).Decode(&decoded)
	if err != nil {
		return AccessToken{}, err
	}

	if decoded.AccessToken == "" {
		return AccessToken{}, fmt.Errorf("token endpoint returned no access token")
	}

	return AccessToken{
		Token:     decoded.AccessToken,
		TokenType: decoded.TokenType,
		ExpiresAt: s.clock.Now().Add(time.Duration(decoded.ExpiresIn) * time.Second),
	}, nil
}
