package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/pkg/errcodes"
)

const (
	userColumns    = `id, email, password_hash, created_at`
	profileColumns = `id, email, full_name, avatar_url, created_at, updated_at`
)

type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя вместе с профилем.
func (r *UserRepository) Create(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO users (id, email, password_hash, created_at)
			VALUES (:id, :email, :password_hash, :created_at)`

		if _, err := tx.NamedExecContext(ctx, query, userSchema(*user)); err != nil {
			if isUniqueViolation(err) {
				return domain.WrapError(err, errcodes.EmailAlreadyInUse,
					"An account with this email already exists. Try signing in instead.")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert user")
		}

		profileQuery := `
			INSERT INTO user_profiles (id, email, full_name, avatar_url, created_at, updated_at)
			VALUES (:id, :email, :full_name, :avatar_url, :created_at, :updated_at)`

		if _, err := tx.NamedExecContext(ctx, profileQuery, profileSchema(*profile)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert profile")
		}

		return nil
	})
}

// GetByEmail ищет пользователя без учёта регистра.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	var schema userSchema
	if err := r.db.GetContext(ctx, &schema, query, email); err != nil {
		if isNoRows(err) {
			return nil, domain.NewError(errcodes.UserNotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	return schema.toDomain(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var schema userSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if isNoRows(err) {
			return nil, domain.NewError(errcodes.UserNotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	return schema.toDomain(), nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`

	return execAffecting(ctx, r.db, domain.NewError(errcodes.UserNotFound, "user not found"), query, hash, id)
}

func (r *UserRepository) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`

	var schema profileSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if isNoRows(err) {
			return nil, domain.NewError(errcodes.ProfileNotFound, "Profile not found.")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get profile")
	}

	return schema.toDomain(), nil
}

// UpdateProfile меняет только переданные (не nil) поля, пустая строка
// сохраняется как NULL.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd entity.ProfileUpdate) (*entity.Profile, error) {
	query := `
		UPDATE user_profiles
		SET full_name  = CASE WHEN $1::text IS NULL THEN full_name ELSE NULLIF($1::text, '') END,
		    avatar_url = CASE WHEN $2::text IS NULL THEN avatar_url ELSE NULLIF($2::text, '') END,
		    updated_at = $3
		WHERE id = $4
		RETURNING ` + profileColumns

	var schema profileSchema
	if err := r.db.GetContext(ctx, &schema, query, upd.FullName, upd.AvatarURL, time.Now().UTC(), id); err != nil {
		if isNoRows(err) {
			return nil, domain.NewError(errcodes.ProfileNotFound, "Profile not found.")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to update profile")
	}

	return schema.toDomain(), nil
}
