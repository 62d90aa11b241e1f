// Package endpointtest provides a stub OAuth2 token endpoint
// for exercising assertion flows in tests and local development.
package endpointtest

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/serviceaccount-auth/oauth/oauth/tokensource"
)

// Set a Decoder instance as a package global, because it caches
// meta-data about structs, and an instance can be shared safely.
var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Server is a stub token endpoint.
//
// It accepts JWT-bearer token requests on POST /token, records the received
// assertions and responds with a freshly minted opaque token.
// It does not verify assertion signatures.
type Server struct {
	// TokenTTL is the lifetime reported in issued token responses.
	TokenTTL time.Duration

	router *mux.Router

	mu         sync.Mutex
	assertions []string
}

// NewServer returns a new Server.
func NewServer(tokenTTL time.Duration) *Server {
	s := &Server{
		TokenTTL: tokenTTL,
	}

	router := mux.NewRouter()
	router.Path("/token").Methods(http.MethodPost).HandlerFunc(s.tokenHandler)

	s.router = router

	return s
}

// Handler returns the endpoint's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Assertions returns the assertions received so far, in order of arrival.
func (s *Server) Assertions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.assertions...)
}

type tokenForm struct {
	GrantType string `schema:"grant_type"`
	Assertion string `schema:"assertion"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request"})
		return
	}

	var form tokenForm

	err = decoder.Decode(&form, r.PostForm)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request"})
		return
	}

	if form.GrantType != tokensource.GrantTypeJWTBearer {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported_grant_type"})
		return
	}

	if form.Assertion == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request"})
		return
	}

	s.mu.Lock()
	s.assertions = append(s.assertions, form.Assertion)
	s.mu.Unlock()

	token, err := uuid.NewV4()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "server_error"})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token.String(),
		TokenType:   "Bearer",
		ExpiresIn:   int(s.TokenTTL.Seconds()),
	})
}
