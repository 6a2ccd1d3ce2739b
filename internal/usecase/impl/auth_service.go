// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "hubmark/internal/delivery/context"
	"hubmark/internal/domain/entity"
	domainerrors "hubmark/internal/domain/errors"
	"hubmark/internal/domain/repository"
	"hubmark/internal/domain/service"
	"hubmark/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a freshly hashed password and issues a
// token for it. The existence probe gives the common case a clean conflict
// answer; the database unique constraint remains the arbiter when two
// registrations for the same name race, so at most one insert wins.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.UserName))

	_, err := srv.userRepo.FindByUsername(ctx, input.UserName)
	if err == nil {
		srv.log(ctx).Warn("Register conflict: username already taken", slog.String("username", input.UserName))

		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     input.UserName,
		PasswordHash: hash,
	}

	// Create maps a unique-constraint violation to the conflict error, which
	// is exactly what the loser of a concurrent registration should observe.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{ID: user.ID, UserName: user.Username, Token: &token}, nil
}

// Login verifies the credentials and issues a fresh token. Unknown usernames
// and failed hash checks produce the same error value so the response (and
// the log line) carries no signal about which one happened.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.UserName)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed: invalid credentials")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: invalid credentials")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	}

	// Previously issued tokens stay valid until they expire on their own;
	// login neither rotates nor revokes anything.
	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{ID: user.ID, UserName: user.Username, Token: &token}, nil
}

// CurrentUser resolves a token subject back to the stored account. The
// middleware has already vouched for the token itself; all that can still go
// wrong is the account having disappeared since the token was issued.
func (srv *authService) CurrentUser(ctx context.Context, subject string) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Token subject no longer resolves to a user", slog.String("subject", subject))

		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return &usecase.AuthOutput{ID: user.ID, UserName: user.Username, Token: nil}, nil
}
