package services_test

import (
	"context"
	"testing"

	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/models/mocks"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetConfirmation_ParamsWinOverGround(t *testing.T) {
	repo := mocks.NewConfirmationRepo(t)
	svc := services.NewConfirmationService(repo, nil)
	ctx := context.Background()

	repo.On("GetGround", ctx, "g1").Return(&models.Ground{ID: "g1", Name: "Arena One", Address: "Stored address", Price: 700}, nil).Once()
	repo.On("GetPayment", ctx, "p1_g1_2024-03-01_18:00-19:00").Return(&models.Payment{ID: "p1_g1_2024-03-01_18:00-19:00", Status: "paid"}, nil).Once()

	conf, err := svc.GetConfirmation(ctx, "p1", models.ConfirmationParams{
		GroundID: models.StringOrList{"g1", "g2"},
		Date:     models.StringOrList{"2024-03-01"},
		Time:     models.StringOrList{"18:00-19:00"},
		Price:    models.StringOrList{"500"},
		Address:  models.StringOrList{"12 Main Road"},
		Status:   models.StringOrList{"Confirmed"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Arena One", conf.GroundName)
	assert.Equal(t, "12 Main Road", conf.Address)
	assert.Equal(t, 500.0, conf.Price)
	assert.Equal(t, "confirmed", conf.Status)
	require.NotNil(t, conf.Payment)
	assert.Equal(t, "paid", conf.Payment.Status)
}

func TestGetConfirmation_FallsBackToGround(t *testing.T) {
	repo := mocks.NewConfirmationRepo(t)
	svc := services.NewConfirmationService(repo, nil)

	repo.On("GetGround", mock.Anything, "g1").Return(&models.Ground{ID: "g1", Name: "Arena One", Address: "Stored address", Price: 700}, nil).Once()

	conf, err := svc.GetConfirmation(context.Background(), "p1", models.ConfirmationParams{
		GroundID: models.StringOrList{"g1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Stored address", conf.Address)
	assert.Equal(t, 700.0, conf.Price)
	assert.Equal(t, "pending", conf.Status)
	assert.Nil(t, conf.Payment)
	repo.AssertNotCalled(t, "GetPayment", mock.Anything, mock.Anything)
}

func TestGetConfirmation_MissingGroundAndPayment(t *testing.T) {
	repo := mocks.NewConfirmationRepo(t)
	svc := services.NewConfirmationService(repo, nil)

	repo.On("GetGround", mock.Anything, "g9").Return(nil, models.ErrNotFound).Once()
	repo.On("GetPayment", mock.Anything, "p1_g9_2024-03-01_09:00").Return(nil, models.ErrNotFound).Once()

	conf, err := svc.GetConfirmation(context.Background(), "p1", models.ConfirmationParams{
		GroundID: models.StringOrList{"g9"},
		Date:     models.StringOrList{"2024-03-01"},
		Time:     models.StringOrList{"09:00"},
	})
	require.NoError(t, err)
	assert.Empty(t, conf.GroundName)
	assert.Nil(t, conf.Payment)
}

func TestGetConfirmation_RequiresGround(t *testing.T) {
	repo := mocks.NewConfirmationRepo(t)
	svc := services.NewConfirmationService(repo, nil)

	_, err := svc.GetConfirmation(context.Background(), "p1", models.ConfirmationParams{})
	assert.ErrorIs(t, err, services.ErrGroundRequired)
}

func TestGetConfirmation_StoreError(t *testing.T) {
	repo := mocks.NewConfirmationRepo(t)
	svc := services.NewConfirmationService(repo, nil)

	repo.On("GetGround", mock.Anything, "g1").Return(nil, assert.AnError).Once()

	_, err := svc.GetConfirmation(context.Background(), "p1", models.ConfirmationParams{GroundID: models.StringOrList{"g1"}})
	assert.ErrorIs(t, err, assert.AnError)
}
