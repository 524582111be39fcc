package container

import (
	"github.com/ahsan589/playspot/internal/config"
	"github.com/ahsan589/playspot/internal/events"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	RedisClient    *redis.Client
	Events         events.Publisher

	Store               *models.MongodbRepo
	AuthService         *services.AuthService
	Notifier            services.Notifier
	Sessions            *services.SessionRegistry
	ConfirmationService *services.ConfirmationService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *zap.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	publisher events.Publisher,
) *Container {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient)
	store := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)

	var notifier services.Notifier
	if redisClient != nil {
		notifier = services.NewRedisNotifier(redisClient, cfg.ToastTTL)
	} else {
		notifier = services.NewMemoryNotifier()
	}

	sessions := services.NewSessionRegistry(func(ownerId string) *services.BookingController {
		return services.NewBookingController(ownerId, store, notifier, publisher, logger)
	}, cfg.SessionIdleTTL)

	return &Container{
		Config:              cfg,
		Logger:              logger,
		SupabaseClient:      supabaseClient,
		MongoDBClient:       mongoDBClient,
		RedisClient:         redisClient,
		Events:              publisher,
		Store:               store,
		AuthService:         services.NewAuthService(supa),
		Notifier:            notifier,
		Sessions:            sessions,
		ConfirmationService: services.NewConfirmationService(store, logger),
	}
}
