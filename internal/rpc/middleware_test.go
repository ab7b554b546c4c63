package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

// callerService answers every method with the id of the caller.
type callerService struct{}

func (callerService) SMD() smd.ServiceInfo { return smd.ServiceInfo{} }

func (callerService) Invoke(ctx context.Context, _ string, _ json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	id := ""
	if u := auth.FromContext(ctx); u != nil {
		id = u.ID
	}
	resp.Set(id)
	return resp
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestWithAuth(t *testing.T) {
	issuer, err := auth.NewIssuer("middleware-secret", time.Hour)
	require.NoError(t, err)
	policy, err := auth.NewPolicy()
	require.NoError(t, err)

	srv := zenrpc.NewServer(zenrpc.Options{})
	srv.Register("auth", callerService{})
	srv.Register("page", callerService{})
	srv.Register("user", callerService{})
	srv.Use(withAuth(issuer, policy))

	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokenFor := func(id string, role db.Role) string {
		token, _, err := issuer.Issue(db.User{ID: id, Role: role})
		require.NoError(t, err)
		return token
	}

	call := func(t *testing.T, method, token string) rpcResponse {
		body, err := json.Marshal(map[string]interface{}{"jsonrpc": "2.0", "id": 1, "method": method, "params": map[string]interface{}{}})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, ts.URL, bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		var out rpcResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
		return out
	}

	tests := []struct {
		name   string
		method string
		token  string
		code   int
		caller string
	}{
		{name: "NoToken", method: "page.get", code: http.StatusUnauthorized},
		{name: "BadToken", method: "page.get", token: "garbage", code: http.StatusUnauthorized},
		{name: "UserReads", method: "page.list", token: tokenFor("u-1", db.RoleUser), caller: "u-1"},
		{name: "UserWrites", method: "page.create", token: tokenFor("u-1", db.RoleUser), code: http.StatusForbidden},
		{name: "EditorWrites", method: "page.create", token: tokenFor("e-1", db.RoleEditor), caller: "e-1"},
		{name: "EditorUsers", method: "user.list", token: tokenFor("e-1", db.RoleEditor), code: http.StatusForbidden},
		{name: "AdminUsers", method: "user.delete", token: tokenFor("a-1", db.RoleAdmin), caller: "a-1"},
		{name: "AuthAnonymous", method: "auth.login", caller: ""},
		{name: "AuthBadToken", method: "auth.me", token: "garbage", caller: ""},
		{name: "AuthWithToken", method: "auth.me", token: tokenFor("e-1", db.RoleEditor), caller: "e-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := call(t, tt.method, tt.token)
			if tt.code != 0 {
				require.NotNil(t, out.Error)
				assert.Equal(t, tt.code, out.Error.Code)
				return
			}

			require.Nil(t, out.Error)
			var caller string
			require.NoError(t, json.Unmarshal(out.Result, &caller))
			assert.Equal(t, tt.caller, caller)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Empty(t, bearerToken(context.Background()))
}
