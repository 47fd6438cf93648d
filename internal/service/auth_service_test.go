package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/models"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

func newAuthFixture() *AuthService {
	return NewAuthService(nil, nil, AuthConfig{
		Secret:     "test_secret",
		Expiration: time.Hour,
		Issuer:     "sigep-api",
	})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthFixture()

	resp, err := svc.Login(models.LoginRequest{Email: "maria.santos@uema.br", Password: "whatever"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "maria.santos@uema.br", resp.User.Email)
	assert.Equal(t, "Maria Santos", resp.User.Name)
	assert.Equal(t, "secretary", resp.User.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maria.santos@uema.br", claims.Subject)
	assert.Equal(t, "sigep-api", claims.Issuer)
	assert.Equal(t, "Maria Santos", claims.Name)
}

func TestLoginRequiresBothFields(t *testing.T) {
	svc := newAuthFixture()

	cases := []models.LoginRequest{
		{Email: "", Password: "x"},
		{Email: "a@b.com", Password: ""},
		{Email: "not-an-email", Password: "x"},
	}
	for _, req := range cases {
		_, err := svc.Login(req)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	issued, err := newAuthFixture().Login(models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	other := NewAuthService(nil, nil, AuthConfig{Secret: "other_secret", Expiration: time.Hour, Issuer: "sigep-api"})
	_, err = other.ValidateToken(issued.AccessToken)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := newAuthFixture().ValidateToken("not.a.token")
	require.Error(t, err)
}
