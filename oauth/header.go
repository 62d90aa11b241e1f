package oauth

// Header describes how the assembled assertion is to be signed.
type Header struct {
	// SignerAlgorithm is the name of the signature (or MAC) algorithm, eg. "RS256".
	SignerAlgorithm string

	// Type is the type name of the assertion encoding, eg. "JWT".
	Type string
}

// NewHeader returns a new Header.
// Both fields are required; an empty field is a ConfigurationError.
func NewHeader(signerAlgorithm string, typeName string) (Header, error) {
	if signerAlgorithm == "" {
		return Header{}, configurationErrorf("header: signer algorithm is required")
	}

	if typeName == "" {
		return Header{}, configurationErrorf("header: type name is required")
	}

	return Header{
		SignerAlgorithm: signerAlgorithm,
		Type:            typeName,
	}, nil
}
