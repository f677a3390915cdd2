package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-signup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-signup/pkg/metrics"
)

// SignupMailer delivers signup verification emails.
type SignupMailer interface {
	SendSignupEmail(ctx context.Context, req entity.SignupEmailRequest) error
}

type Service struct {
	Repo    repo.UserRepository
	Mailer  SignupMailer
	Redis   *redis.Client
	Logger  *logrus.Logger
	Metrics *metrics.Signup
}

func NewService(repo repo.UserRepository, mailer SignupMailer, rdb *redis.Client, logger *logrus.Logger, m *metrics.Signup) *Service {
	return &Service{
		Repo:    repo,
		Mailer:  mailer,
		Redis:   rdb,
		Logger:  logger,
		Metrics: m,
	}
}

func keyVerified(username string) string { return "user:verified:" + username }

// Signup runs the signup workflow against the configured repository and mailer.
func (s *Service) Signup(ctx context.Context, req valueobject.UserSignupRequest) (entity.UserID, error) {
	id, err := SignupUser(ctx, s.Repo.CreateUser, s.Mailer.SendSignupEmail, req)
	fields := logrus.Fields{"username": req.Username().String(), "email": req.Email().String()}

	var (
		createErr *CreateUserError
		sendErr   *SendEmailError
	)
	switch {
	case err == nil:
		s.Metrics.ObserveSignup(metrics.OutcomeSuccess)
		s.log().WithFields(fields).WithField("user_id", id.String()).Info("user signed up")
	case errors.Is(err, repo.ErrEmailAlreadyExists), errors.Is(err, repo.ErrUsernameAlreadyExists):
		s.Metrics.ObserveSignup(metrics.OutcomeConflict)
		s.log().WithFields(fields).WithError(err).Info("signup rejected")
	case errors.As(err, &createErr):
		s.Metrics.ObserveSignup(metrics.OutcomeCreateFailed)
		s.log().WithFields(fields).WithError(err).Error("create user failed")
	case errors.As(err, &sendErr):
		// The account exists but no verification email went out.
		s.Metrics.ObserveSignup(metrics.OutcomeEmailFailed)
		s.log().WithFields(fields).WithField("user_id", sendErr.UserID.String()).WithError(err).
			Error("signup email failed; account left unverified")
	default:
		s.Metrics.ObserveSignup(metrics.OutcomeError)
		s.log().WithFields(fields).WithError(err).Error("signup failed")
	}
	return id, err
}

// Verify redeems a verification code.
func (s *Service) Verify(ctx context.Context, code string) (valueobject.Username, bool, error) {
	username, found, err := VerifyUser(ctx, s.Repo.VerifyUser, code)
	switch {
	case err != nil:
		s.Metrics.ObserveVerification(metrics.OutcomeError)
		s.log().WithError(err).Error("verify user failed")
		return username, false, err
	case !found:
		s.Metrics.ObserveVerification(metrics.OutcomeNotFound)
		s.log().Debug("verification code not found")
		return username, false, nil
	}

	s.Metrics.ObserveVerification(metrics.OutcomeSuccess)
	s.log().WithField("username", username.String()).Info("user verified")
	if s.Redis != nil {
		c, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if rErr := s.Redis.Set(c, keyVerified(username.String()), "1", 0).Err(); rErr != nil {
			s.log().WithError(rErr).WithField("username", username.String()).Warn("cache verified flag failed")
		}
	}
	return username, true, nil
}

func (s *Service) log() logrus.FieldLogger {
	if s.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return s.Logger
}
