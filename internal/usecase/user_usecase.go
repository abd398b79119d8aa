package usecase

import (
	"context"

	"weighter/internal/domain/entity"
)

// UpdateUserInput carries the administrator-settable account fields.
type UpdateUserInput struct {
	Role     entity.Role `json:"role" validate:"required"`
	IsActive bool        `json:"isActive"`
}

// UserAdminUsecase defines the administrative user management operations.
// The delivery layer restricts all of them to the "Admin" role.
type UserAdminUsecase interface {
	List(ctx context.Context) ([]*UserSummary, error)
	Get(ctx context.Context, id int64) (*UserSummary, error)
	Update(ctx context.Context, id int64, input *UpdateUserInput) (*UserSummary, error)
	Delete(ctx context.Context, id int64) error
}
