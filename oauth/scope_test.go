package oauth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceaccount-auth/oauth/oauth"
	"github.com/serviceaccount-auth/oauth/pkg/option"
)

func TestResolveScope(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		testCases := []struct {
			name        string
			call        oauth.CallContext
			globalScope option.Option[string]
			expected    string
		}{
			{
				name: "call-level declaration",
				call: oauth.CallContext{
					Owner:      "ZoneApi",
					Method:     "ListZones",
					CallScopes: option.Some(oauth.ScopeDeclaration{Values: []string{"read", "write"}}),
				},
				globalScope: option.None[string](),
				expected:    "read,write",
			},
			{
				name: "group-level declaration",
				call: oauth.CallContext{
					Owner:       "ZoneApi",
					Method:      "ListZones",
					GroupScopes: option.Some(oauth.ScopeDeclaration{Values: []string{"read"}}),
				},
				globalScope: option.None[string](),
				expected:    "read",
			},
			{
				name: "call-level declaration wins over group-level",
				call: oauth.CallContext{
					Owner:       "ZoneApi",
					Method:      "DeleteZone",
					CallScopes:  option.Some(oauth.ScopeDeclaration{Values: []string{"write"}}),
					GroupScopes: option.Some(oauth.ScopeDeclaration{Values: []string{"read"}}),
				},
				globalScope: option.None[string](),
				expected:    "write",
			},
			{
				name: "declaration order is preserved",
				call: oauth.CallContext{
					Owner:      "ZoneApi",
					Method:     "ListZones",
					CallScopes: option.Some(oauth.ScopeDeclaration{Values: []string{"write", "admin", "read"}}),
				},
				globalScope: option.None[string](),
				expected:    "write,admin,read",
			},
			{
				name: "global fallback",
				call: oauth.CallContext{
					Owner:  "ZoneApi",
					Method: "ListZones",
				},
				globalScope: option.Some("admin"),
				expected:    "admin",
			},
			{
				name: "declaration wins over global fallback",
				call: oauth.CallContext{
					Owner:      "ZoneApi",
					Method:     "ListZones",
					CallScopes: option.Some(oauth.ScopeDeclaration{Values: []string{"read"}}),
				},
				globalScope: option.Some("admin"),
				expected:    "read",
			},
		}

		for _, testCase := range testCases {
			testCase := testCase

			t.Run(testCase.name, func(t *testing.T) {
				actual, err := oauth.ResolveScope(testCase.call, testCase.globalScope)
				require.NoError(t, err)

				assert.Equal(t, testCase.expected, actual)
			})
		}
	})

	t.Run("Error", func(t *testing.T) {
		call := oauth.CallContext{
			Owner:  "ZoneApi",
			Method: "ListZones",
		}

		_, err := oauth.ResolveScope(call, option.None[string]())
		require.Error(t, err)

		var configurationError oauth.ConfigurationError
		require.ErrorAs(t, err, &configurationError)

		assert.Contains(t, err.Error(), "ZoneApi.ListZones")
	})
}
