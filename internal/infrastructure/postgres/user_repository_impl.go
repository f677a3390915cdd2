package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-signup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
)

// Unique constraints declared in db/migrations.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

// Querier is the subset of *pgxpool.Pool the repository uses.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	pool Querier
}

func NewUserRepository(pool Querier) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser inserts an unverified account holding req.VerificationCode.
func (r *UserRepository) CreateUser(ctx context.Context, req entity.CreateUserRequest) (entity.UserID, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, verification_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Username.String(), req.Email.String(), req.PasswordHash.String(), req.VerificationCode.String()).Scan(&id)
	if err != nil {
		return 0, translateCreateError(err, req.Username.String())
	}
	return entity.UserID(id), nil
}

// VerifyUser marks the account holding code as verified and clears the code
// in one statement, so a code can be redeemed at most once.
func (r *UserRepository) VerifyUser(ctx context.Context, code string) (valueobject.Username, bool, error) {
	var username string
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET is_verified = TRUE, verification_code = NULL, updated_at = now()
		WHERE verification_code = $1
		RETURNING username
	`, code).Scan(&username)
	if errors.Is(err, pgx.ErrNoRows) {
		return valueobject.Username{}, false, nil
	}
	if err != nil {
		return valueobject.Username{}, false, oops.Code("USER_VERIFY_FAILED").
			With("operation", "consume verification code").
			Wrap(err)
	}
	return valueobject.UsernameFromStored(username), true, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username valueobject.Username) (*entity.User, error) {
	var (
		id                int64
		name, email, hash string
		code              pgtype.Text
	)
	u := &entity.User{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, verification_code, is_verified, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username.String()).Scan(&id, &name, &email, &hash, &code, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, oops.Code("USER_GET_FAILED").
			With("username", username.String()).
			Wrap(err)
	}

	u.ID = entity.UserID(id)
	u.Username = valueobject.UsernameFromStored(name)
	u.Email = valueobject.EmailAddressFromStored(email)
	u.PasswordHash = valueobject.PasswordHashFromStored(hash)
	if code.Valid {
		u.VerificationCode = valueobject.VerificationCodeFromStored(code.String)
	}
	return u, nil
}

// translateCreateError maps unique violations on the email and username
// constraints to their domain errors. Everything else is wrapped as-is.
func translateCreateError(err error, username string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return repository.ErrEmailAlreadyExists
		case constraintUsersUsername:
			return repository.ErrUsernameAlreadyExists
		}
	}
	return oops.Code("USER_CREATE_FAILED").
		With("operation", "insert user").
		With("username", username).
		Wrap(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
