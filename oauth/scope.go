package oauth

import (
	"strings"

	"github.com/serviceaccount-auth/oauth/pkg/option"
)

// ScopeDeclaration lists the permission scopes a call (or its owning group of calls)
// declares as required. The order of values is significant and is preserved.
type ScopeDeclaration struct {
	Values []string
}

// CallContext identifies one outgoing call that needs authorization.
//
// Owner and Method name the call for error messages. The two scope declarations
// are expected to be resolved from call metadata by the caller before assembly.
type CallContext struct {
	// Owner is the name of the API (or type) the call belongs to.
	Owner string

	// Method is the name of the call itself.
	Method string

	// CallScopes is the scope declaration attached to the call, if any.
	CallScopes option.Option[ScopeDeclaration]

	// GroupScopes is the scope declaration attached to the call's owning group, if any.
	GroupScopes option.Option[ScopeDeclaration]
}

// Identity returns the Owner.Method name of the call.
func (c CallContext) Identity() string {
	return c.Owner + "." + c.Method
}

// ResolveScope determines the scope string for a call.
//
// A call-level declaration takes precedence over a group-level one.
// When a declaration is used, its values are joined with a comma in declared order.
// When neither declaration is present, the global scope is used;
// if that is absent too, ResolveScope returns a ConfigurationError.
func ResolveScope(call CallContext, globalScope option.Option[string]) (string, error) {
	scopes := call.CallScopes
	if !hasValue(scopes) {
		scopes = call.GroupScopes
	}

	if hasValue(scopes) {
		return strings.Join(scopes.Value().Values, ","), nil
	}

	if hasValue(globalScope) {
		return globalScope.Value(), nil
	}

	return "", configurationErrorf(
		"%s: the call or its owning group must declare required scopes, or a global scope must be configured",
		call.Identity(),
	)
}

// hasValue treats a nil Option (the zero value of a CallContext field) as absent.
func hasValue[T any](o option.Option[T]) bool {
	return o != nil && o.HasValue()
}
