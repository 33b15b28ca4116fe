package auth_test

import (
	"testing"

	"kanbanase/internal/auth"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	// Arrange
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	// Act
	hash, err := hasher.Hash("password123")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, hasher.Verify(hash, "password123"))
}

func TestBcryptHasher_Verify_WrongPassword(t *testing.T) {
	// Arrange
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	// Act & Assert
	assert.False(t, hasher.Verify(hash, "wrong_password"))
}

func TestBcryptHasher_Verify_NotAHash(t *testing.T) {
	// Arrange
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	// Act & Assert
	assert.False(t, hasher.Verify("plaintext", "plaintext"))
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	// Arrange: a cost outside bcrypt's range falls back to the default
	hasher := auth.NewBcryptHasher(1000)

	// Act
	hash, err := hasher.Hash("pw")

	// Assert
	assert.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
