package impl

import (
	"context"
	"log/slog"

	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/errors"
	"weighter/internal/usecase"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *userAdminService) List(ctx context.Context) ([]*usecase.UserSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list users", "error", err)

		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, toUserSummary(user))
	}

	return summaries, nil
}

func (srv *userAdminService) Get(ctx context.Context, id int64) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserSummary(user), nil
}

func (srv *userAdminService) Update(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user update failed")
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	user.Role = input.Role
	user.IsActive = input.IsActive

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.logger.Error("Failed to update user", "error", err, "userID", id)

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.logger.Info("User updated by administrator", "userID", id, "role", user.Role, "isActive", user.IsActive)

	return toUserSummary(user), nil
}

func (srv *userAdminService) Delete(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user delete failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted by administrator", "userID", id)

	return nil
}
