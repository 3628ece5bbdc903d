package crypto

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func lowCost(t *testing.T) {
	t.Helper()
	orig := hashCost
	t.Cleanup(func() { hashCost = orig })
	hashCost = bcrypt.MinCost
}

func TestHashAndCheckPassword(t *testing.T) {
	lowCost(t)

	hash, err := HashPassword("Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
	assert.False(t, CheckPassword("Password123!", ""))
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32)
}

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 4)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestGenerateOTP_Bounds(t *testing.T) {
	orig := randomInt
	t.Cleanup(func() { randomInt = orig })

	randomInt = func(io.Reader, *big.Int) (*big.Int, error) { return big.NewInt(0), nil }
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Equal(t, "1000", otp)

	randomInt = func(_ io.Reader, max *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(max, big.NewInt(1)), nil
	}
	otp, err = GenerateOTP()
	require.NoError(t, err)
	assert.Equal(t, "9999", otp)
}

func TestErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	origRandInt := randomInt
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
		randomInt = origRandInt
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err = GenerateRandomToken(16)
	assert.Error(t, err)

	randomInt = func(io.Reader, *big.Int) (*big.Int, error) {
		return nil, errors.New("rand failed")
	}
	_, err = GenerateOTP()
	assert.Error(t, err)
}
