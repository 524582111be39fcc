package services_test

import (
	"context"
	"testing"

	"github.com/ahsan589/playspot/internal/models/mocks"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/gotrue-go/types"
)

func TestAuthenticateUser_ValidatesInput(t *testing.T) {
	repo := mocks.NewAuthRepo(t)
	svc := services.NewAuthService(repo)

	_, err := svc.AuthenticateUser(context.Background(), "not-an-email", "password123")
	assert.Error(t, err)

	_, err = svc.AuthenticateUser(context.Background(), "owner@example.com", "short")
	assert.Error(t, err)

	repo.AssertNotCalled(t, "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticateUser_Success(t *testing.T) {
	repo := mocks.NewAuthRepo(t)
	svc := services.NewAuthService(repo)

	res := &types.TokenResponse{}
	res.AccessToken = "access"
	repo.On("AuthenticateUser", mock.Anything, "owner@example.com", "password123").Return(res, nil).Once()

	got, err := svc.AuthenticateUser(context.Background(), "owner@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "access", got.AccessToken)
}

func TestRefreshToken(t *testing.T) {
	repo := mocks.NewAuthRepo(t)
	svc := services.NewAuthService(repo)

	_, err := svc.RefreshToken(context.Background(), "")
	assert.Error(t, err)

	repo.On("RefreshToken", mock.Anything, "refresh").Return(nil, assert.AnError).Once()
	_, err = svc.RefreshToken(context.Background(), "refresh")
	assert.ErrorIs(t, err, assert.AnError)
}
