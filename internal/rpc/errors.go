package rpc

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/go-playground/validator/v10"
	"github.com/vmkteam/zenrpc/v2"
)

var validate = validator.New()

var (
	errUnauthorized = zenrpc.NewStringError(http.StatusUnauthorized, "authorization required")
	errForbidden    = zenrpc.NewStringError(http.StatusForbidden, "forbidden")
	errInternal     = zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
)

// validateInput checks validate tags of v.
func validateInput(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// newError converts manager errors into zenrpc errors with HTTP-like codes.
func newError(err error) error {
	if err == nil {
		return nil
	}

	var zerr *zenrpc.Error
	if errors.As(err, &zerr) {
		return zerr
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, cms.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, cms.ErrInvalidInput),
		errors.Is(err, cms.ErrInvalidTransition),
		errors.Is(err, cms.ErrMenuCycle),
		errors.Is(err, cms.ErrInvalidFaq):
		code = http.StatusBadRequest
	case errors.Is(err, cms.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, cms.ErrSlugTaken),
		errors.Is(err, cms.ErrSeoTaken),
		errors.Is(err, cms.ErrEmailTaken),
		errors.Is(err, cms.ErrInUse):
		code = http.StatusConflict
	case errors.Is(err, cms.ErrStorageDisabled):
		code = http.StatusServiceUnavailable
	}

	if code == http.StatusInternalServerError {
		slog.Error("rpc call failed", "error", err)
		return errInternal
	}

	return zenrpc.NewStringError(code, err.Error())
}
