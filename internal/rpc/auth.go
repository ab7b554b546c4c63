package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/vmkteam/zenrpc/v2"
)

// AuthService issues back-office tokens.
type AuthService struct {
	zenrpc.Service
	cms    *cms.Manager
	issuer *auth.Issuer
}

func NewAuthService(manager *cms.Manager, issuer *auth.Issuer) *AuthService {
	return &AuthService{cms: manager, issuer: issuer}
}

// Login checks credentials and returns a bearer token.
//
//zenrpc:email user email
//zenrpc:password user password
//zenrpc:return token with its expiry and the user
//zenrpc:400 invalid params
//zenrpc:401 invalid credentials
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	u, err := s.cms.Authenticate(ctx, email, password)
	if err != nil {
		return nil, newError(err)
	}

	token, expiresAt, err := s.issuer.Issue(*u)
	if err != nil {
		return nil, newError(err)
	}

	return &Token{Token: token, ExpiresAt: expiresAt, User: NewUser(*u)}, nil
}

// Me returns the user of the bearer token.
//
//zenrpc:return current user
//zenrpc:401 authorization required
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	current := auth.FromContext(ctx)
	if current == nil {
		return nil, errUnauthorized
	}

	u, err := s.cms.UserByID(ctx, current.ID)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(u, NewUser), nil
}
