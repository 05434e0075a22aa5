package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hmucanze19/algafood-api/cmd"
	apphttp "github.com/hmucanze19/algafood-api/internal/adapters/in/http"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres"
)

func main() {
	configs := getConfigs()
	logger := initLogger()

	db := connectDatabase(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if _, err := apphttp.LoadOpenAPIDocument(); err != nil {
		log.Fatalf("Invalid API description: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	if err := app.SeedPaymentMethods(context.Background()); err != nil {
		log.Fatalf("Failed to seed payment methods: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort: envOr("HTTP_PORT", "8080"),

		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "algafood"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		JWTSecret: mustEnv("JWT_SECRET"),
		JWTTTL:    durationEnv("JWT_TTL", time.Hour),

		KafkaHost:             envOr("KAFKA_HOST", "localhost:9092"),
		KafkaOrderEventsTopic: envOr("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),

		RedisHost:    envOr("REDIS_HOST", "localhost:6379"),
		MenuCacheTTL: durationEnv("MENU_CACHE_TTL", 10*time.Minute),

		EmailImpl:    envOr("EMAIL_IMPL", "FAKE"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     intEnv("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    envOr("EMAIL_FROM", "noreply@algafood.example.com"),

		PhotoStorageDir: envOr("PHOTO_STORAGE_DIR", "./data/photos"),

		OrderExpirationTTL: durationEnv("ORDER_EXPIRATION_TTL", 30*time.Minute),

		TrackingBaseURL: envOr("TRACKING_BASE_URL", "http://localhost:8080"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return value
}

func initLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func connectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apphttp.NewProblemErrorHandler(logger)

	server := app.CreateServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
