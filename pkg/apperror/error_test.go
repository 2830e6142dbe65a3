package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  *AppError
		kind Kind
		code int
	}{
		{Validation("bad input"), KindValidation, http.StatusBadRequest},
		{Conflict("already there"), KindConflict, http.StatusConflict},
		{NotFound("missing"), KindNotFound, http.StatusNotFound},
		{Auth("nope"), KindAuth, http.StatusUnauthorized},
		{Upload("io failed", errors.New("disk full")), KindUpload, http.StatusBadGateway},
		{Internal(errors.New("boom")), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.code, tc.err.Code)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Upload("could not store", cause)

	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	t.Run("reads the kind through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NotFound("missing"))
		assert.Equal(t, KindNotFound, KindOf(wrapped))
		assert.True(t, IsKind(wrapped, KindNotFound))
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("anything")))
	})

	t.Run("nil is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(nil))
	})
}
