package application

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-signup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-signup/pkg/metrics"
)

type stubRepo struct {
	createID    entity.UserID
	createErr   error
	verifyName  string
	verifyFound bool
	verifyErr   error
}

func (r *stubRepo) CreateUser(context.Context, entity.CreateUserRequest) (entity.UserID, error) {
	return r.createID, r.createErr
}

func (r *stubRepo) VerifyUser(context.Context, string) (valueobject.Username, bool, error) {
	return valueobject.UsernameFromStored(r.verifyName), r.verifyFound, r.verifyErr
}

func (r *stubRepo) GetByUsername(context.Context, valueobject.Username) (*entity.User, error) {
	return nil, repo.ErrUserNotFound
}

type stubMailer struct {
	calls int
	err   error
}

func (m *stubMailer) SendSignupEmail(context.Context, entity.SignupEmailRequest) error {
	m.calls++
	return m.err
}

func newTestService(r *stubRepo, m *stubMailer, rdb *redis.Client) (*Service, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewService(r, m, rdb, logger, metrics.NewSignup("test", prometheus.NewRegistry())), hook
}

func TestService_Signup(t *testing.T) {
	tests := []struct {
		name      string
		repo      *stubRepo
		mailer    *stubMailer
		wantID    entity.UserID
		wantCalls int
		wantLevel logrus.Level
		wantIs    error
	}{
		{
			name:      "success",
			repo:      &stubRepo{createID: 9},
			mailer:    &stubMailer{},
			wantID:    9,
			wantCalls: 1,
			wantLevel: logrus.InfoLevel,
		},
		{
			name:      "email conflict logged at info",
			repo:      &stubRepo{createErr: repo.ErrEmailAlreadyExists},
			mailer:    &stubMailer{},
			wantLevel: logrus.InfoLevel,
			wantIs:    repo.ErrEmailAlreadyExists,
		},
		{
			name:      "generic create failure logged at error",
			repo:      &stubRepo{createErr: errors.New("disk full")},
			mailer:    &stubMailer{},
			wantLevel: logrus.ErrorLevel,
		},
		{
			name:      "email failure logged at error",
			repo:      &stubRepo{createID: 3},
			mailer:    &stubMailer{err: errors.New("queue closed")},
			wantCalls: 1,
			wantLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, hook := newTestService(tt.repo, tt.mailer, nil)
			id, err := svc.Signup(context.Background(), mustSignupRequest(t))

			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantCalls, tt.mailer.calls)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.wantLevel, hook.LastEntry().Level)
			assert.Equal(t, "alice", hook.LastEntry().Data["username"])
		})
	}
}

func TestService_Verify_CachesVerifiedFlag(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc, _ := newTestService(&stubRepo{verifyName: "alice", verifyFound: true}, &stubMailer{}, rdb)
	got, found, err := svc.Verify(context.Background(), "code")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", got.String())

	v, err := mr.Get("user:verified:alice")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestService_Verify_RedisDownDoesNotFail(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	svc, hook := newTestService(&stubRepo{verifyName: "alice", verifyFound: true}, &stubMailer{}, rdb)
	_, found, err := svc.Verify(context.Background(), "code")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestService_Verify_NotFoundAndError(t *testing.T) {
	svc, _ := newTestService(&stubRepo{}, &stubMailer{}, nil)
	_, found, err := svc.Verify(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	cause := errors.New("timeout")
	svc, _ = newTestService(&stubRepo{verifyErr: cause}, &stubMailer{}, nil)
	_, found, err = svc.Verify(context.Background(), "code")
	assert.ErrorIs(t, err, cause)
	assert.False(t, found)
}

func TestService_NilLoggerIsSafe(t *testing.T) {
	svc := &Service{Repo: &stubRepo{createID: 1}, Mailer: &stubMailer{}}
	id, err := svc.Signup(context.Background(), mustSignupRequest(t))
	require.NoError(t, err)
	assert.Equal(t, entity.UserID(1), id)
}
