package rpc

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"NotFound", fmt.Errorf("page %q: %w", "x", cms.ErrNotFound), http.StatusNotFound},
		{"InvalidInput", fmt.Errorf("%w: title is required", cms.ErrInvalidInput), http.StatusBadRequest},
		{"Transition", cms.ErrInvalidTransition, http.StatusBadRequest},
		{"MenuCycle", cms.ErrMenuCycle, http.StatusBadRequest},
		{"Faq", cms.ErrInvalidFaq, http.StatusBadRequest},
		{"Credentials", cms.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Slug", fmt.Errorf("%w: about", cms.ErrSlugTaken), http.StatusConflict},
		{"Seo", cms.ErrSeoTaken, http.StatusConflict},
		{"Email", cms.ErrEmailTaken, http.StatusConflict},
		{"InUse", cms.ErrInUse, http.StatusConflict},
		{"Storage", cms.ErrStorageDisabled, http.StatusServiceUnavailable},
		{"Unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var zerr *zenrpc.Error
			require.ErrorAs(t, newError(tt.err), &zerr)
			assert.Equal(t, tt.code, zerr.Code)
		})
	}

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, newError(nil))
	})

	t.Run("InternalHidden", func(t *testing.T) {
		err := newError(errors.New("pq: password authentication failed"))
		assert.Equal(t, errInternal, err)
	})

	t.Run("PassThrough", func(t *testing.T) {
		assert.Equal(t, errForbidden, newError(errForbidden))
	})
}

func TestValidateInput(t *testing.T) {
	err := validateInput(UserInput{Email: "not-an-email", Password: "short", Role: "ROOT"})

	var zerr *zenrpc.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, http.StatusBadRequest, zerr.Code)

	assert.NoError(t, validateInput(UserInput{Email: "doc@clinic.test", Password: "longenough", Role: "EDITOR"}))
}
