package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahsan589/playspot/internal/config"
	"github.com/ahsan589/playspot/internal/connect"
	"github.com/ahsan589/playspot/internal/container"
	"github.com/ahsan589/playspot/internal/events"
	"github.com/ahsan589/playspot/internal/helpers"
	"github.com/ahsan589/playspot/internal/routes"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		zap.NewExample().Fatal("Failed to set up logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting PlaySpot API server", zap.String("environment", cfg.Environment))

	supaClient, err := connect.InitSupabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Supabase", zap.Error(err))
	}
	logger.Info("Connected to Supabase successfully")

	mongoClient, err := connect.MongoDBConnect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB successfully")

	redisClient, err := connect.RedisConnect(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, keeping toasts in memory", zap.Error(err))
		redisClient = nil
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rp, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitExchange)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, status events disabled", zap.Error(err))
		} else {
			publisher = rp
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	validator, err := helpers.NewJWKSValidator(ctx, cfg.SupabaseURL)
	if err != nil {
		logger.Fatal("Failed to load Supabase JWKS", zap.Error(err))
	}
	defer validator.Close()

	appContainer := container.NewContainer(cfg, logger, supaClient, mongoClient, redisClient, publisher)

	idxCtx, idxCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := appContainer.Store.EnsureIndexes(idxCtx); err != nil {
		logger.Warn("Failed to ensure indexes", zap.Error(err))
	}
	idxCancel()

	router := routes.SetupRoutes(appContainer, validator)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := publisher.Close(); err != nil {
		logger.Error("Error closing event publisher", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Error closing Redis", zap.Error(err))
		}
	}
	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", zap.Error(err))
	}

	logger.Info("Server exited")
}

// setupLogger writes to stdout and to a rotated file under cfg.LogPath.
func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0755); err != nil {
			return nil, err
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if !cfg.IsProduction() {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if !cfg.IsProduction() {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogPath + "playspot.log",
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileWriter, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)
	return zap.New(core, zap.AddCaller()), nil
}
