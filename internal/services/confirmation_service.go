package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ahsan589/playspot/internal/models"
	"go.uber.org/zap"
)

var ErrGroundRequired = errors.New("ground id is required")

type ConfirmationService struct {
	repo   models.ConfirmationRepo
	logger *zap.Logger
}

func NewConfirmationService(repo models.ConfirmationRepo, logger *zap.Logger) *ConfirmationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationService{
		repo:   repo,
		logger: logger.With(zap.String("service", "confirmation")),
	}
}

// GetConfirmation assembles what the player sees after checkout. Navigation
// params win over stored ground data; a missing ground or payment only leaves
// those fields empty.
func (cs *ConfirmationService) GetConfirmation(ctx context.Context, playerId string, params models.ConfirmationParams) (*models.BookingConfirmation, error) {
	groundId := params.GroundID.First()
	if groundId == "" {
		return nil, ErrGroundRequired
	}

	conf := &models.BookingConfirmation{
		GroundID: groundId,
		Address:  params.Address.First(),
		Date:     params.Date.First(),
		Time:     params.Time.First(),
		Status:   string(models.BookingPending),
	}
	if s, err := models.ParseBookingStatus(strings.ToLower(params.Status.First())); err == nil {
		conf.Status = string(s)
	}
	price, priceErr := strconv.ParseFloat(params.Price.First(), 64)
	if priceErr == nil && price >= 0 {
		conf.Price = price
	}

	ground, err := cs.repo.GetGround(ctx, groundId)
	switch {
	case errors.Is(err, models.ErrNotFound):
		cs.logger.Warn("Ground not found for confirmation", zap.String("ground_id", groundId))
	case err != nil:
		return nil, fmt.Errorf("get ground: %w", err)
	default:
		conf.GroundName = ground.Name
		if conf.Address == "" {
			conf.Address = ground.Address
		}
		if priceErr != nil {
			conf.Price = ground.Price
		}
	}

	if playerId == "" || conf.Date == "" || conf.Time == "" {
		return conf, nil
	}
	payment, err := cs.repo.GetPayment(ctx, models.PaymentID(playerId, groundId, conf.Date, conf.Time))
	switch {
	case errors.Is(err, models.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("get payment: %w", err)
	default:
		conf.Payment = payment
	}
	return conf, nil
}
