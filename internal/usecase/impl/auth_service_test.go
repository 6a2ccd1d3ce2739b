package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hubmark/internal/domain/entity"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/domain/repository"
	mockRepo "hubmark/internal/mocks/repository"
	mockSvc "hubmark/internal/mocks/service"
	"hubmark/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("password123").
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "hashed-password", user.PasswordHash)
			user.ID = 42
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().
		Issue(mock.AnythingOfType("*entity.User")).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{UserName: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), output.ID)
	assert.Equal(t, "alice", output.UserName)
	require.NotNil(t, output.Token)
	assert.Equal(t, "signed-token", *output.Token)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{UserName: "alice", Password: "password123"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_ConcurrentConflictOnCreate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// The availability probe passes, but a concurrent registration wins the
	// insert race. The repository maps the unique violation to the conflict
	// error and the loser sees the same answer as an ordinary duplicate.
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("password123").
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{UserName: "alice", Password: "password123"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_RepoError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{UserName: "alice", Password: "password123"})
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hashed-password"}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("password123", "hashed-password").
		Return(true)

	fx.tokenSvc.EXPECT().
		Issue(user).
		Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{UserName: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), output.ID)
	require.NotNil(t, output.Token)
	assert.Equal(t, "signed-token", *output.Token)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	// Unknown username.
	fx1 := createTestAuthService(t)
	fx1.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, unknownErr := fx1.service.Login(ctx, &usecase.LoginInput{UserName: "ghost", Password: "password123"})
	assert.Nil(t, output)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	// Known username, wrong password.
	fx2 := createTestAuthService(t)
	fx2.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 7, Username: "alice", PasswordHash: "hashed-password"}, nil)
	fx2.hasher.EXPECT().
		Check("wrong-password", "hashed-password").
		Return(false)

	output, wrongPassErr := fx2.service.Login(ctx, &usecase.LoginInput{UserName: "alice", Password: "wrong-password"})
	assert.Nil(t, output)
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)

	// The two failures must be byte-identical so the response leaks nothing
	// about whether the username exists.
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 7, Username: "alice"}, nil)

	output, err := fx.service.CurrentUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), output.ID)
	assert.Equal(t, "alice", output.UserName)
	assert.Nil(t, output.Token)
}

func TestAuthService_CurrentUser_AccountGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// Token is still valid but the account it points at no longer exists.
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CurrentUser(ctx, "alice")
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
