package cms

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/clinic-cms/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", invalid("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// public hides the password hash.
func public(u *db.User) *db.User {
	if u != nil {
		u.Password = ""
	}
	return u
}

func (m *Manager) Users(ctx context.Context, filter UserFilter, pager db.Pager) ([]db.User, int, error) {
	users, count, err := list(ctx, m.db.Users, &db.UserSearch{Role: filter.Role, NameILike: filter.NameILike},
		pager.Args(db.NewSortField(db.Columns.User.Email, false)))
	if err != nil {
		return nil, 0, err
	}

	for i := range users {
		public(&users[i])
	}

	return users, count, nil
}

func (m *Manager) UserByID(ctx context.Context, id string) (*db.User, error) {
	u, err := findByID(ctx, m.db.Users, "user", id)
	return public(u), err
}

func (m *Manager) CreateUser(ctx context.Context, u db.User, password string) (*db.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = db.RoleUser
	}
	if !u.Role.IsValid() {
		return nil, invalid("unknown role %q", u.Role)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	u.ID = ""
	created, err := m.db.Users.Create(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("db create user: %w", translate(err))
	}

	return public(created), nil
}

// UpdateUser saves name, email and role, and the password when given.
func (m *Manager) UpdateUser(ctx context.Context, u db.User, password *string) (*db.User, error) {
	current, err := findByID(ctx, m.db.Users, "user", u.ID)
	if err != nil {
		return nil, err
	}

	if u.Email != "" {
		current.Email = normalizeEmail(u.Email)
	}
	if u.Role != "" {
		if !u.Role.IsValid() {
			return nil, invalid("unknown role %q", u.Role)
		}
		current.Role = u.Role
	}
	current.Name = u.Name

	columns := []string{db.Columns.User.Name, db.Columns.User.Email, db.Columns.User.Role}
	if password != nil {
		if current.Password, err = hashPassword(*password); err != nil {
			return nil, err
		}
		columns = append(columns, db.Columns.User.Password)
	}

	updated, err := m.db.Users.Update(ctx, current, columns...)
	if err != nil {
		return nil, fmt.Errorf("db update user: %w", translate(err))
	}

	return public(updated), nil
}

func (m *Manager) DeleteUser(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.Users, "user", id)
	return err
}

// Authenticate checks the credentials and returns the user.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*db.User, error) {
	u, err := m.db.Users.FindUnique(ctx, db.ByEmail(normalizeEmail(email)))
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return public(u), nil
}
