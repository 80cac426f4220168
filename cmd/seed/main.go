// Seeds a demo user for local development.
package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/config"
	"github.com/minwoopark/board-api/database"
	"github.com/minwoopark/board-api/repository"
	"github.com/minwoopark/board-api/service"
	"github.com/minwoopark/board-api/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.DSN(), false)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	issuer, err := token.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		logrus.Fatalf("Failed to configure token issuer: %v", err)
	}

	auth := service.NewAuthService(repository.NewGormUserRepository(db), issuer)

	_, err = auth.Register(context.Background(), "demo", "demo1234", "Demo")
	switch {
	case err == nil:
		logrus.Info("Demo user seeded (username: demo, password: demo1234)")
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrNicknameTaken):
		logrus.Info("Demo user already exists, nothing to do")
	default:
		logrus.Fatalf("Failed to seed demo user: %v", err)
	}
}
