package impl

import (
	"context"
	"log/slog"
	"strings"

	"capsule/config"
	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	adminEmails map[string]struct{}
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	adminEmails := make(map[string]struct{})
	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.AdminEmails {
			adminEmails[strings.ToLower(email)] = struct{}{}
		}
	}

	return &userService{
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		adminEmails: adminEmails,
		logger:      params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the user in. Emails listed in the
// service configuration are granted the admin role on top of customer.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	roles := []entity.Role{entity.RoleCustomer}
	if _, ok := srv.adminEmails[email]; ok {
		roles = append(roles, entity.RoleAdmin)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userId", user.ID.String()))

	return srv.issueTokens(user)
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords both return ErrInvalidCredentials so the response does not leak
// which one was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return srv.issueTokens(user)
}

// GetProfile returns the outward-safe projection of the user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return usecase.NewUserProfile(user), nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokens.GenerateTokens(user.ID, user.RoleStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         usecase.NewUserProfile(user),
	}, nil
}
