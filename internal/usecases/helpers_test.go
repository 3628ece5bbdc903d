package usecases_test

import (
	"testing"

	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/pkg/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fastHashing(t *testing.T) {
	t.Helper()
	t.Cleanup(crypto.SetCost(bcrypt.MinCost))
}

func mustHash(t *testing.T, secret string) string {
	t.Helper()
	h, err := crypto.HashPassword(secret)
	require.NoError(t, err)
	return h
}

func requireAppError(t *testing.T, err error, kind domainerrors.Kind, message string) {
	t.Helper()
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	if message != "" {
		require.Equal(t, message, appErr.Message)
	}
}
