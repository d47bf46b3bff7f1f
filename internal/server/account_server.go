package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"giftai/internal/domain/entity"
	"giftai/internal/domain/value"
	"giftai/pkg/contextx"
	"giftai/pkg/httpx/reply"
	"giftai/pkg/httpx/req"
	"giftai/pkg/rest"
)

//go:generate moq -rm -out account_service_mock.gen.go . accountService
type accountService interface {
	SignUp(ctx context.Context, email, password string, fullName *string) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	Session(ctx context.Context, claims value.TokenClaims) (*entity.Session, error)
	SignOut(ctx context.Context, claims value.TokenClaims)
	Profile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd entity.ProfileUpdate) (*entity.Profile, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

type AccountServer struct {
	accounts accountService
}

func NewAccountServer(accounts accountService) AccountServer {
	return AccountServer{
		accounts: accounts,
	}
}

func (s AccountServer) postV1AuthSignUp(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SignUpRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.accounts.SignUp(ctx, request.Email, request.Password, request.FullName)
	if err != nil {
		return fmt.Errorf("accounts.SignUp: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTSession(*session))

	return nil
}

func (s AccountServer) postV1AuthSignIn(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SignInRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.accounts.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return fmt.Errorf("accounts.SignIn: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(*session))

	return nil
}

func (s AccountServer) getV1AuthSession(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return fmt.Errorf("claimsFromContext: %w", err)
	}

	session, err := s.accounts.Session(ctx, claims)
	if err != nil {
		return fmt.Errorf("accounts.Session: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(*session))

	return nil
}

func (s AccountServer) postV1AuthSignOut(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return fmt.Errorf("claimsFromContext: %w", err)
	}

	s.accounts.SignOut(ctx, claims)

	reply.NoContent(w)

	return nil
}

func (s AccountServer) putV1AuthPassword(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	var request rest.ChangePasswordRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err = s.accounts.ChangePassword(ctx, userID.UUID(), request.CurrentPassword, request.NewPassword); err != nil {
		return fmt.Errorf("accounts.ChangePassword: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s AccountServer) getV1Profile(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	profile, err := s.accounts.Profile(ctx, userID.UUID())
	if err != nil {
		return fmt.Errorf("accounts.Profile: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfile(*profile))

	return nil
}

func (s AccountServer) patchV1Profile(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	var request rest.UpdateProfileRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	profile, err := s.accounts.UpdateProfile(ctx, userID.UUID(), entity.ProfileUpdate{
		FullName:  request.FullName,
		AvatarURL: request.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("accounts.UpdateProfile: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfile(*profile))

	return nil
}
