package db

import (
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Known request error codes.
const (
	CodeUniqueViolation      = "P2002"
	CodeForeignKeyViolation  = "P2003"
	CodeNullViolation        = "P2011"
	CodeInvalidValue         = "P2023"
	CodeRecordNotFound       = "P2025"
	CodeSerializationFailure = "P2034"
)

// KnownRequestError is a database error with a stable code.
type KnownRequestError struct {
	Code    string
	Message string
	Meta    map[string]string

	err error
}

func (e *KnownRequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *KnownRequestError) Unwrap() error { return e.err }

// UnknownRequestError wraps database errors that have no known code.
type UnknownRequestError struct {
	err error
}

func (e *UnknownRequestError) Error() string {
	return "unknown request error: " + e.err.Error()
}

func (e *UnknownRequestError) Unwrap() error { return e.err }

// ValidationError reports invalid arguments, no query was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InitializationError is returned when the client can't reach or prepare the database.
type InitializationError struct {
	err error
}

func (e *InitializationError) Error() string {
	return "initialization error: " + e.err.Error()
}

func (e *InitializationError) Unwrap() error { return e.err }

func notFound(table string) error {
	return &KnownRequestError{
		Code:    CodeRecordNotFound,
		Message: "record to operate on was not found",
		Meta:    map[string]string{"table": table},
		err:     pg.ErrNoRows,
	}
}

// classify converts a go-pg error into the client error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		known  *KnownRequestError
		valid  *ValidationError
		iniErr *InitializationError
		unk    *UnknownRequestError
	)
	if errors.As(err, &known) || errors.As(err, &valid) || errors.As(err, &iniErr) || errors.As(err, &unk) {
		return err
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		meta := map[string]string{}
		if t := pgErr.Field('t'); t != "" {
			meta["table"] = t
		}
		if c := pgErr.Field('n'); c != "" {
			meta["constraint"] = c
		}
		if c := pgErr.Field('c'); c != "" {
			meta["column"] = c
		}

		code := ""
		switch pgErr.Field('C') {
		case "23505":
			code = CodeUniqueViolation
		case "23503":
			code = CodeForeignKeyViolation
		case "23502":
			code = CodeNullViolation
		case "22P02", "22007", "22008":
			code = CodeInvalidValue
		case "40001", "40P01":
			code = CodeSerializationFailure
		}
		if code != "" {
			return &KnownRequestError{Code: code, Message: pgErr.Field('M'), Meta: meta, err: err}
		}
	}

	return &UnknownRequestError{err: err}
}

func hasCode(err error, code string) bool {
	var known *KnownRequestError
	return errors.As(err, &known) && known.Code == code
}

func IsNotFound(err error) bool        { return hasCode(err, CodeRecordNotFound) }
func IsUniqueViolation(err error) bool { return hasCode(err, CodeUniqueViolation) }
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation)
}

func IsValidation(err error) bool {
	var valid *ValidationError
	return errors.As(err, &valid)
}
