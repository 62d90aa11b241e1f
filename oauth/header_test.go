package oauth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceaccount-auth/oauth/oauth"
)

func TestNewHeader(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		header, err := oauth.NewHeader("RS256", "JWT")
		require.NoError(t, err)

		assert.Equal(t, oauth.Header{SignerAlgorithm: "RS256", Type: "JWT"}, header)
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name            string
			signerAlgorithm string
			typeName        string
		}{
			{
				name:     "missing signer algorithm",
				typeName: "JWT",
			},
			{
				name:            "missing type name",
				signerAlgorithm: "RS256",
			},
		}

		for _, testCase := range testCases {
			testCase := testCase

			t.Run(testCase.name, func(t *testing.T) {
				_, err := oauth.NewHeader(testCase.signerAlgorithm, testCase.typeName)
				require.Error(t, err)

				var configurationError oauth.ConfigurationError
				assert.ErrorAs(t, err, &configurationError)
			})
		}
	})
}
