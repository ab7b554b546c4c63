package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/vmkteam/zenrpc/v2"
)

const authNamespace = "auth"

// bearerToken returns the token from the Authorization header of the HTTP request.
func bearerToken(ctx context.Context) string {
	req, ok := zenrpc.RequestFromContext(ctx)
	if !ok || req == nil {
		return ""
	}

	h := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// withAuth puts the token user into the context and checks the role policy.
// The auth namespace is open, its methods check the user themselves.
func withAuth(issuer *auth.Issuer, policy *auth.Policy) zenrpc.MiddlewareFunc {
	return func(h zenrpc.InvokeFunc) zenrpc.InvokeFunc {
		return func(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
			namespace := zenrpc.NamespaceFromContext(ctx)

			var user *auth.User
			if token := bearerToken(ctx); token != "" {
				u, err := issuer.Parse(token)
				if err != nil && namespace != authNamespace {
					return zenrpc.NewResponseError(nil, errUnauthorized.Code, err.Error(), nil)
				}
				user = u
			}

			if namespace == authNamespace || namespace == "" {
				return h(auth.NewContext(ctx, user), method, params)
			}

			if user == nil {
				return zenrpc.NewResponseError(nil, errUnauthorized.Code, errUnauthorized.Message, nil)
			}

			allowed, err := policy.Allowed(user.Role, namespace, method)
			if err != nil {
				slog.ErrorContext(ctx, "policy check failed", "error", err)
				return zenrpc.NewResponseError(nil, errInternal.Code, errInternal.Message, nil)
			} else if !allowed {
				return zenrpc.NewResponseError(nil, errForbidden.Code, errForbidden.Message, nil)
			}

			return h(auth.NewContext(ctx, user), method, params)
		}
	}
}
