package oauth

// TokenRequest is a fully assembled, unsigned token request.
//
// It is a value constructed once per call and handed to an AssertionSigner;
// assembly retains no reference to it.
type TokenRequest struct {
	Header   Header
	ClaimSet ClaimSet
}

// AssertionSigner serializes a token request into a signed assertion
// ready for exchange at a token endpoint.
type AssertionSigner interface {
	Sign(request TokenRequest, credentials Credentials) (string, error)
}
