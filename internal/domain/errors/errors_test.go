package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	badReq := BadRequest("Missing required field: Country")
	assert.Equal(t, KindBadRequest, badReq.Kind)
	assert.Equal(t, http.StatusBadRequest, badReq.Status())
	assert.Equal(t, "Missing required field: Country", badReq.Error())
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	creds := InvalidCredentials()
	assert.Equal(t, http.StatusBadRequest, creds.Status())
	assert.ErrorIs(t, creds, ErrInvalidCredentials)

	notFound := NotFound("User not found")
	assert.Equal(t, http.StatusNotFound, notFound.Status())
	assert.ErrorIs(t, notFound, ErrNotFound)

	unauth := Unauthorized("Unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status())

	forbidden := Forbidden("Forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status())

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status())
	assert.Equal(t, "internal server error", internal.Error())
	assert.EqualError(t, internal.Err, "db down")

	emailErr := Internal("Email not sent", nil)
	assert.Equal(t, "Email not sent", emailErr.Error())
	assert.ErrorIs(t, emailErr, ErrInternal)
}

func TestAppError_ErrorFallbacks(t *testing.T) {
	assert.Equal(t, "boom", (&AppError{Kind: KindInternal, Err: stderrors.New("boom")}).Error())
	assert.Equal(t, string(KindNotFound), (&AppError{Kind: KindNotFound}).Error())
}

func TestKind_UnknownMapsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Kind("SOMETHING").Status())
}

func TestWrapAndKindOf(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	nf := NotFound("Transaction not found")
	assert.Same(t, nf, Wrap(nf))
	assert.Same(t, nf, Wrap(fmt.Errorf("context: %w", nf)))

	plain := stderrors.New("unexpected")
	wrapped := Wrap(plain)
	assert.Equal(t, KindInternal, wrapped.Kind)
	assert.ErrorIs(t, wrapped, plain)

	assert.Equal(t, KindNotFound, KindOf(nf))
	assert.Equal(t, KindInternal, KindOf(plain))
}
