package impl

import (
	"context"
	"testing"

	"capsule/config"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	mockRepo "capsule/internal/mocks/repository"
	mockSvc "capsule/internal/mocks/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, adminEmails ...string) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{BcryptCost: 12, AdminEmails: adminEmails}

	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Tokens:   tokens,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alex Chen",
		Email:    "Alex@Example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alex@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "alex@example.com" &&
				user.PasswordHash == "hashed_password" &&
				len(user.Roles) == 1 && user.Roles[0] == entity.RoleCustomer
		})).
		Return(nil)
	fx.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer"}).
		Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "alex@example.com", output.User.Email)
}

func TestUserService_Register_AdminEmailGetsAdminRole(t *testing.T) {
	fx := createTestUserService(t, "ops@example.com")

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ops",
		Email:    "ops@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ops@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return len(user.Roles) == 2 && user.Roles[1] == entity.RoleAdmin
		})).
		Return(nil)
	fx.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer", "admin"}).
		Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Contains(t, output.User.Roles, "admin")
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alex@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alex@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "Password123!",
	})

	assertAppErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		Name:         "Alex Chen",
		PasswordHash: "hashed_password",
		Roles:        []entity.Role{entity.RoleCustomer},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokens.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alex@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "wrong",
	})

	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "alex@example.com",
		Roles: []entity.Role{entity.RoleCustomer},
	}

	fx.tokens.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.Claims{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokens.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("new_access", "new_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: "refresh_token",
	})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokens.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "garbage",
	})

	assertAppErrorCode(t, err, "REFRESH_TOKEN_INVALID")
}
