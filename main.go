package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-app/inkwell-backend/api"
	"github.com/inkwell-app/inkwell-backend/auth"
	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "inkwell"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "require"),
	)

	gormLogger := logger.New(
		&zerologWriter{},
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database schema")
	}

	currentDB := database.New(db)

	verifier, err := newVerifier()
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing identity verifier")
	}

	var uploads *services.ObjectStore
	if bucket := os.Getenv("UPLOAD_BUCKET"); bucket != "" {
		uploads, err = services.NewObjectStore(context.Background(), bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("Error initializing upload storage")
		}
	} else {
		log.Warn().Msg("UPLOAD_BUCKET not set, image uploads disabled")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, verifier, uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newVerifier picks the identity verifier from AUTH_PROVIDER: "descope"
// validates hosted-provider session tokens, anything else falls back to
// the shared-secret JWT verifier for local development.
func newVerifier() (auth.Verifier, error) {
	switch getEnv("AUTH_PROVIDER", "jwt") {
	case "descope":
		return auth.NewDescopeVerifier(os.Getenv("DESCOPE_PROJECT_ID"))
	default:
		secret := os.Getenv("AUTH_JWT_SECRET")
		if secret == "" {
			return nil, fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_PROVIDER is not descope")
		}
		return auth.NewJWTVerifier([]byte(secret)), nil
	}
}

// zerologWriter adapts the GORM logger onto the process-wide zerolog sink.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
