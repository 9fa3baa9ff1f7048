package jwt_test

import (
	"errors"
	"taskly/config"
	"taskly/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "taskly-test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(42, "john", "john@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.ValidateToken(token.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "john", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(42, "john", "john@example.com")
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = "different-secret"
	otherCfg.JWT.ExpireMin = 60
	other := jwt.New(otherCfg)

	_, err = other.ValidateToken(token.Token)
	assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = -1

	svc := jwt.New(cfg)

	token, err := svc.GenerateToken(42, "john", "john@example.com")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token.Token)
	assert.True(t, errors.Is(err, jwt.ErrExpiredToken))
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateToken("not-a-token")
	assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
