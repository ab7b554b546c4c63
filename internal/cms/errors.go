package cms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSlugTaken          = errors.New("slug is already taken")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrSeoTaken           = errors.New("seo settings are attached to another record")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrMenuCycle          = errors.New("menu item cannot be moved under itself")
	ErrInvalidFaq         = errors.New("faq must be either global or attached to a procedure")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInUse              = errors.New("record is referenced by other records")
	ErrStorageDisabled    = errors.New("media storage is not configured")
)

// translate maps database errors to manager errors, keeping the original in the chain.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if db.IsValidation(err) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var known *db.KnownRequestError
	if !errors.As(err, &known) {
		return err
	}

	switch known.Code {
	case db.CodeRecordNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case db.CodeForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrInUse, err)
	case db.CodeNullViolation, db.CodeInvalidValue:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case db.CodeUniqueViolation:
		constraint := known.Meta["constraint"]
		switch {
		case strings.HasSuffix(constraint, "_slug_key"):
			return fmt.Errorf("%w: %w", ErrSlugTaken, err)
		case strings.HasSuffix(constraint, "_seoSettingsId_key"):
			return fmt.Errorf("%w: %w", ErrSeoTaken, err)
		case constraint == "users_email_key":
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
	}

	return err
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
