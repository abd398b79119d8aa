// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"weighter/config"
	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/domain/service"
	"weighter/internal/errors"
	"weighter/internal/usecase"
)

// authService implements the AuthUsecase interface. It orchestrates the
// password hasher, the token service and the user store; it is the only layer
// that translates their failures into caller-visible outcomes.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// Register creates a new user and issues their first token. Uniqueness is
// enforced by attempting the insert and mapping the store's unique-constraint
// violation to a conflict; there is no check-then-act window for concurrent
// registrations to slip through.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	// Key derivation is CPU-bound, keep it outside the transaction.
	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:          input.Email,
		Username:       input.Username,
		PasswordDigest: digest,
		Role:           entity.RoleUser,
		IsActive:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
		}
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("user registration failed")
		}
		srv.logger.Error("Failed to execute user registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.logger.Info("New user registered", "userID", newUser.ID, "username", newUser.Username)

	return srv.issueFor(newUser)
}

// Login authenticates by email or username. Unknown identifier, deactivated
// account and wrong password all produce the same invalid-credentials outcome
// so that error text cannot be used to enumerate accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting user login", "identifier", input.EmailOrUsername)

	var loggedInUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmailOrUsername(ctx, input.EmailOrUsername)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user for login")
		}

		if !user.IsActive {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		if !srv.hasher.Check(input.Password, user.PasswordDigest) {
			srv.logger.Warn("Failed login attempt", "username", user.Username)

			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// Only a fully verified login reaches the last-login update.
		now := time.Now()
		if err := userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
			return errors.Wrap(err, "failed to update last login")
		}
		user.LastLoginAt = &now
		loggedInUser = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User logged in", "userID", loggedInUser.ID, "username", loggedInUser.Username)

	return srv.issueFor(loggedInUser)
}

// Refresh mints a new token from an already-validated token's claims. This is
// a trust extension, not a re-authentication: by default the store is not
// consulted, so a deactivated account keeps refreshing for at most one token
// TTL past deactivation. The recheckActiveOnRefresh setting closes that
// window at the cost of a store read per refresh.
func (srv *authService) Refresh(ctx context.Context, claims *service.Claims) (*usecase.AuthOutput, error) {
	identity := claims.Identity()

	if srv.cfg.Auth != nil && srv.cfg.Auth.RecheckActiveOnRefresh {
		var active bool
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			user, err := repoFactory.UserRepo().FindByID(ctx, identity.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrTokenInvalid.WrapMessage("refresh refused")
				}

				return errors.Wrap(err, "failed to re-check user on refresh")
			}
			active = user.IsActive

			return nil
		})
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh refused for inactive account")
		}
	}

	token, expiresAt, err := srv.tokenService.Issue(identity)
	if err != nil {
		srv.logger.Error("Failed to issue refreshed token", "error", err, "userID", identity.UserID)

		return nil, errors.Wrap(err, "failed to issue refreshed token")
	}

	return &usecase.AuthOutput{
		UserID:    identity.UserID,
		Username:  identity.Username,
		Email:     identity.Email,
		Role:      identity.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentUser returns the authenticated user's profile from the store.
func (srv *authService) CurrentUser(ctx context.Context, userID int64) (*usecase.UserSummary, error) {
	var summary *usecase.UserSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("current user lookup failed")
			}

			return errors.Wrap(err, "failed to find current user")
		}
		summary = toUserSummary(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// issueFor builds the issuance response for a user. The claims are copied
// from the user at this moment; later role or active changes do not reach
// tokens already issued.
func (srv *authService) issueFor(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(service.IdentityFromUser(user))
	if err != nil {
		srv.logger.Error("Failed to issue token", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func toUserSummary(user *entity.User) *usecase.UserSummary {
	return &usecase.UserSummary{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}
