package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePgError map[byte]string

func (e fakePgError) Error() string            { return e['M'] }
func (e fakePgError) Field(k byte) string      { return e[k] }
func (e fakePgError) IntegrityViolation() bool { return e['C'][:2] == "23" }

var _ pg.Error = fakePgError{}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"Unique", fakePgError{'C': "23505", 'M': "duplicate key", 'n': "pages_slug_key", 't': "pages"}, CodeUniqueViolation},
		{"ForeignKey", fakePgError{'C': "23503", 'M': "violates foreign key"}, CodeForeignKeyViolation},
		{"NotNull", fakePgError{'C': "23502", 'M': "null value", 'c': "title"}, CodeNullViolation},
		{"InvalidText", fakePgError{'C': "22P02", 'M': "invalid input value for enum"}, CodeInvalidValue},
		{"Serialization", fakePgError{'C': "40001", 'M': "could not serialize"}, CodeSerializationFailure},
		{"Wrapped", fmt.Errorf("insert: %w", fakePgError{'C': "23505", 'M': "duplicate"}), CodeUniqueViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)

			var known *KnownRequestError
			require.True(t, errors.As(err, &known))
			assert.Equal(t, tt.code, known.Code)
			assert.NotEmpty(t, known.Message)
		})
	}
}

func TestClassify_Meta(t *testing.T) {
	err := classify(fakePgError{'C': "23505", 'M': "duplicate key", 'n': "pages_slug_key", 't': "pages"})

	var known *KnownRequestError
	require.ErrorAs(t, err, &known)
	assert.Equal(t, "pages_slug_key", known.Meta["constraint"])
	assert.Equal(t, "pages", known.Meta["table"])
	assert.True(t, IsUniqueViolation(fmt.Errorf("create pages: %w", err)))
}

func TestClassify_Unknown(t *testing.T) {
	base := errors.New("connection reset")
	err := classify(base)

	var unknown *UnknownRequestError
	require.ErrorAs(t, err, &unknown)
	assert.ErrorIs(t, err, base)

	pgUnknown := classify(fakePgError{'C': "42P01", 'M': "relation does not exist"})
	assert.ErrorAs(t, pgUnknown, &unknown)
}

func TestClassify_KeepsTaxonomy(t *testing.T) {
	v := newValidationError("bad")
	assert.Same(t, v, classify(v))
	assert.Nil(t, classify(nil))

	nf := notFound("pages")
	assert.True(t, IsNotFound(fmt.Errorf("update: %w", classify(nf))))
	assert.ErrorIs(t, nf, pg.ErrNoRows)
	assert.True(t, IsValidation(fmt.Errorf("x: %w", v)))
	assert.False(t, IsForeignKeyViolation(v))
}
