package rpc

import (
	"context"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// UserService manages back-office users. Passwords are never returned.
type UserService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewUserService(manager *cms.Manager) *UserService {
	return &UserService{cms: manager}
}

//zenrpc:filter optional filters
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *UserService) List(ctx context.Context, filter *UserFilter, page, pageSize *int) (*UserList, error) {
	if filter != nil {
		if err := validateInput(filter); err != nil {
			return nil, err
		}
	}

	users, count, err := s.cms.Users(ctx, filter.ToModel(), db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &UserList{Items: Map(users, NewUser), Count: count}, nil
}

//zenrpc:id user id
func (s *UserService) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.cms.UserByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(u, NewUser), nil
}

//zenrpc:user user fields with password
//zenrpc:409 email taken
func (s *UserService) Create(ctx context.Context, user UserInput) (*User, error) {
	if err := validateInput(user); err != nil {
		return nil, err
	}

	u, err := s.cms.CreateUser(ctx, user.ToModel(), user.Password)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(u, NewUser), nil
}

// Update saves name, email and role. The password changes only when given.
//
//zenrpc:id user id
//zenrpc:user user fields
func (s *UserService) Update(ctx context.Context, id string, user UserUpdate) (*User, error) {
	if err := validateInput(user); err != nil {
		return nil, err
	}

	u, err := s.cms.UpdateUser(ctx, user.ToModel(id), user.Password)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(u, NewUser), nil
}

//zenrpc:id user id
//zenrpc:400 users can't delete themselves
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	if current := auth.FromContext(ctx); current != nil && current.ID == id {
		return false, zenrpc.NewStringError(http.StatusBadRequest, "can't delete yourself")
	}

	if err := s.cms.DeleteUser(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
