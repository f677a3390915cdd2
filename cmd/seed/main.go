package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/config"
	"github.com/oksasatya/go-ddd-signup/internal/application"
	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-signup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
	pginfra "github.com/oksasatya/go-ddd-signup/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-signup/pkg/helpers"
	"github.com/oksasatya/go-ddd-signup/pkg/mailer"
)

func main() {
	username := flag.String("username", "demouser", "username to seed")
	password := flag.String("password", "demo123", "password (4-8 characters)")
	email := flag.String("email", "demo@example.com", "email address")
	verify := flag.Bool("verify", true, "redeem the verification code right away")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	req, err := valueobject.NewUserSignupRequest(*username, *password, *email)
	if err != nil {
		log.Fatalf("invalid seed input: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	// Seeded accounts never get a real email; the link is logged instead.
	svc := application.NewService(users, mailer.NewLogSender(logger, cfg), nil, logger, nil)

	id, err := svc.Signup(ctx, req)
	switch {
	case errors.Is(err, repo.ErrUsernameAlreadyExists), errors.Is(err, repo.ErrEmailAlreadyExists):
		helpers.LogInfo(logger, "seed user already exists", logrus.Fields{"username": req.Username().String()})
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		helpers.LogInfo(logger, "seeded user", logrus.Fields{"user_id": id.String(), "username": req.Username().String()})
	}

	u, err := users.GetByUsername(ctx, req.Username())
	if err != nil {
		log.Fatalf("failed to load seeded user: %v", err)
	}
	ok, err := u.PasswordHash.Match(req.Password().Reveal())
	if err != nil {
		log.Fatalf("stored hash unreadable: %v", err)
	}
	if !ok {
		logger.Warn("existing seed user has a different password")
	}

	if *verify && !u.IsVerified && !u.VerificationCode.IsZero() {
		if _, found, err := svc.Verify(ctx, u.VerificationCode.String()); err != nil || !found {
			log.Fatalf("failed to verify seeded user: found=%v err=%v", found, err)
		}
	}
	helpers.LogInfo(logger, "seed done", seedSummary(u))
}

// seedSummary is what gets logged about the seeded account. Credentials stay out.
func seedSummary(u *entity.User) logrus.Fields {
	return logrus.Fields{
		"user_id":  u.ID.String(),
		"username": u.Username.String(),
		"email":    u.Email.String(),
		"verified": u.IsVerified,
	}
}
