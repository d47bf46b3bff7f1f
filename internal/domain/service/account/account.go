// Package account отвечает за регистрацию, вход и профиль пользователя.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"giftai/internal/domain"
	"giftai/internal/domain/entity"
	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/errcodes"
	"giftai/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	minPasswordLen = 6
	maxFullNameLen = 200
)

const (
	msgInvalidEmail     = "Please enter a valid email address."
	msgEmptyPassword    = "Please enter a valid password."
	msgShortPassword    = "Password must be at least 6 characters long."
	msgCredentials      = "Invalid email or password. Please check your credentials and try again."
	msgWrongPassword    = "Current password is incorrect."
	msgInvalidAvatarURL = "Please enter a valid avatar URL."
	msgFullNameTooLong  = "Full name must be at most 200 characters long."
)

//go:generate moq -rm -out user_repository_mock.gen.go . UserRepository
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, profile *entity.Profile) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd entity.ProfileUpdate) (*entity.Profile, error)
}

//go:generate moq -rm -out token_manager_mock.gen.go . TokenManager
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (value.AccessToken, error)
	Parse(raw string) (value.TokenClaims, error)
	Revoke(id string, expiresAt time.Time)
}

type Service struct {
	users      UserRepository
	tokens     TokenManager
	validate   *validator.Validate
	bcryptCost int
	now        func() time.Time
}

func NewService(users UserRepository, tokens TokenManager) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// WithBcryptCost задаёт стоимость хеширования паролей.
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// WithClock подменяет источник времени.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SignUp создаёт пользователя с профилем и сразу открывает сессию.
func (s *Service) SignUp(ctx context.Context, email, password string, fullName *string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	if err := checkFullName(fullName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to hash password")
	}

	now := s.now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	profile := &entity.Profile{
		ID:        user.ID,
		Email:     email,
		FullName:  trimmed(fullName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.users.Create(ctx, user, profile); err != nil {
		return nil, fmt.Errorf("users.Create: %w", err)
	}

	logger(ctx).Info("user signed up", slog.String(logx.FieldUserID, user.ID.String()))

	return s.openSession(user, profile)
}

// SignIn проверяет пароль. Неизвестный email и неверный пароль неразличимы
// для клиента.
func (s *Service) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewError(errcodes.CredentialsMismatch, msgCredentials)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.HasCode(err, errcodes.UserNotFound) {
			return nil, domain.WrapError(err, errcodes.CredentialsMismatch, msgCredentials)
		}
		return nil, fmt.Errorf("users.GetByEmail: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.WrapError(err, errcodes.CredentialsMismatch, msgCredentials)
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("users.GetProfile: %w", err)
	}

	logger(ctx).Info("user signed in", slog.String(logx.FieldUserID, user.ID.String()))

	return s.openSession(user, profile)
}

// Authenticate проверяет токен доступа.
func (s *Service) Authenticate(_ context.Context, raw string) (value.TokenClaims, error) {
	if strings.TrimSpace(raw) == "" {
		return value.TokenClaims{}, domain.NewError(errcodes.Unauthorized, "Authentication required.")
	}

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return value.TokenClaims{}, fmt.Errorf("tokens.Parse: %w", err)
	}

	return claims, nil
}

// Session возвращает пользователя и профиль текущей сессии.
func (s *Service) Session(ctx context.Context, claims value.TokenClaims) (*entity.Session, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("users.GetByID: %w", err)
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("users.GetProfile: %w", err)
	}

	return &entity.Session{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt,
		User:      *user,
		Profile:   *profile,
	}, nil
}

// SignOut отзывает токен текущей сессии.
func (s *Service) SignOut(ctx context.Context, claims value.TokenClaims) {
	s.tokens.Revoke(claims.ID, claims.ExpiresAt)

	logger(ctx).Info("user signed out", slog.String(logx.FieldUserID, claims.UserID.String()))
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("users.GetProfile: %w", err)
	}

	return profile, nil
}

// UpdateProfile меняет только переданные поля. Пустая строка очищает поле.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd entity.ProfileUpdate) (*entity.Profile, error) {
	if err := checkFullName(upd.FullName); err != nil {
		return nil, err
	}
	if upd.AvatarURL != nil {
		if err := s.validate.Var(strings.TrimSpace(*upd.AvatarURL), "omitempty,url"); err != nil {
			return nil, domain.WrapError(err, errcodes.ValidationError, msgInvalidAvatarURL)
		}
	}

	profile, err := s.users.UpdateProfile(ctx, userID, entity.ProfileUpdate{
		FullName:  trimmedKeepEmpty(upd.FullName),
		AvatarURL: trimmedKeepEmpty(upd.AvatarURL),
	})
	if err != nil {
		return nil, fmt.Errorf("users.UpdateProfile: %w", err)
	}

	return profile, nil
}

// ChangePassword требует текущий пароль.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("users.GetByID: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.WrapError(err, errcodes.CredentialsMismatch, msgWrongPassword)
		}
		return domain.WrapError(err, errcodes.InternalServerError, "failed to compare password")
	}

	if err = checkPassword(next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to hash password")
	}

	if err = s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("users.UpdatePasswordHash: %w", err)
	}

	logger(ctx).Info("password changed", slog.String(logx.FieldUserID, userID.String()))

	return nil
}

func (s *Service) openSession(user *entity.User, profile *entity.Profile) (*entity.Session, error) {
	issued, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to issue access token")
	}

	return &entity.Session{
		AccessToken: issued.Token,
		TokenID:     issued.ID,
		ExpiresAt:   issued.ExpiresAt,
		User:        *user,
		Profile:     *profile,
	}, nil
}

func (s *Service) checkEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return domain.WrapError(err, errcodes.ValidationError, msgInvalidEmail)
	}

	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return domain.NewError(errcodes.InvalidPassword, msgEmptyPassword)
	}
	if len([]rune(password)) < minPasswordLen {
		return domain.NewError(errcodes.InvalidPassword, msgShortPassword)
	}

	return nil
}

func checkFullName(fullName *string) error {
	if fullName != nil && len([]rune(strings.TrimSpace(*fullName))) > maxFullNameLen {
		return domain.NewError(errcodes.ValidationError, msgFullNameTooLong)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// trimmed возвращает nil для пустого значения.
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}

	return &t
}

func trimmedKeepEmpty(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)

	return &t
}
