package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"jobportal/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{ID: 1, Username: "admin@portaljob.com", Role: model.RoleAdmin}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@portaljob.com", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)

	id, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := NewJWTService(secret)

	// Well-formed and correctly signed, but already expired.
	claims := &Claims{
		Username: "admin@portaljob.com",
		Role:     model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(1, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: 2, Username: "linn@gmail.com", Role: model.RoleUser}

	token, err := NewJWTService("secret-a").GenerateToken(user)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
