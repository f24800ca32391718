package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type UpdateTenantCommand struct {
	CondominiumID uint
	Name          *string
	Address       *string
	AdminEmail    *string
	AdminName     *string
	AdminLastName *string
	AdminPhone    *string
	Settings      *condominium.Settings
	PlanID        *uint
}

type UpdateTenantResult struct {
	Condominium *condominium.Condominium
	// Admin is set only when the command touched the admin user.
	Admin *user.User
}

// UpdateTenantUseCase edits a tenant's condominium record, optionally the
// admin's email and profile, and optionally moves the subscription to another
// plan. All writes share one transaction.
type UpdateTenantUseCase struct {
	condoRepo condominium.Repository
	userRepo  user.Repository
	subRepo   subscription.Repository
	planRepo  subscription.PlanRepository
	txManager TransactionRunner
	cache     StatusCacheInvalidator
	logger    logger.Interface
}

func NewUpdateTenantUseCase(
	condoRepo condominium.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	txManager TransactionRunner,
	cache StatusCacheInvalidator,
	logger logger.Interface,
) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{
		condoRepo: condoRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		planRepo:  planRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *UpdateTenantUseCase) Execute(ctx context.Context, cmd UpdateTenantCommand) (*UpdateTenantResult, error) {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}

	if cmd.PlanID != nil {
		plan, err := uc.planRepo.GetByID(ctx, *cmd.PlanID)
		if err != nil {
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return nil, errors.NewNotFoundError("plan not found")
		}
	}

	if cmd.AdminEmail != nil {
		taken, err := uc.userRepo.ExistsByEmailExcluding(ctx, *cmd.AdminEmail, condo.AdminID())
		if err != nil {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		if taken {
			return nil, errors.NewDuplicateEmailError()
		}
	}

	touchesAdmin := cmd.AdminEmail != nil || cmd.AdminName != nil || cmd.AdminLastName != nil || cmd.AdminPhone != nil

	var admin *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.Name != nil {
			if err := condo.Rename(*cmd.Name); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Address != nil {
			if err := condo.Relocate(*cmd.Address); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Settings != nil {
			if err := condo.UpdateSettings(*cmd.Settings); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if err := uc.condoRepo.Update(txCtx, condo); err != nil {
			return fmt.Errorf("failed to update condominium: %w", err)
		}

		if touchesAdmin {
			admin, err = uc.userRepo.GetByID(txCtx, condo.AdminID())
			if err != nil {
				return fmt.Errorf("failed to get admin user: %w", err)
			}
			if admin == nil {
				return errors.NewNotFoundError("tenant admin not found")
			}
			if cmd.AdminEmail != nil {
				if err := admin.ChangeEmail(*cmd.AdminEmail); err != nil {
					return errors.NewValidationError(err.Error())
				}
			}
			if cmd.AdminName != nil || cmd.AdminLastName != nil || cmd.AdminPhone != nil {
				profile := admin.Profile()
				if cmd.AdminName != nil {
					profile.FirstName = *cmd.AdminName
				}
				if cmd.AdminLastName != nil {
					profile.LastName = *cmd.AdminLastName
				}
				if cmd.AdminPhone != nil {
					profile.Phone = *cmd.AdminPhone
				}
				if err := admin.UpdateProfile(profile); err != nil {
					return errors.NewValidationError(err.Error())
				}
			}
			if err := uc.userRepo.Update(txCtx, admin); err != nil {
				return fmt.Errorf("failed to update admin user: %w", err)
			}
		}

		if cmd.PlanID != nil {
			sub, err := uc.subRepo.GetLatestByCondominiumID(txCtx, condo.ID())
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}
			if sub == nil {
				// A tenant without a subscription gets a fresh one on the
				// new plan rather than an error.
				sub, err = subscription.NewSubscription(condo.ID(), *cmd.PlanID, subscription.CycleMonthly)
				if err != nil {
					return fmt.Errorf("failed to build subscription: %w", err)
				}
				if err := uc.subRepo.Create(txCtx, sub); err != nil {
					return fmt.Errorf("failed to create subscription: %w", err)
				}
			} else {
				if err := sub.ChangePlan(*cmd.PlanID); err != nil {
					return errors.NewValidationError(err.Error())
				}
				if err := uc.subRepo.Update(txCtx, sub); err != nil {
					return fmt.Errorf("failed to update subscription: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("tenant update rolled back", "error", err, "condominium_id", cmd.CondominiumID)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewDuplicateEmailError()
		}
		return nil, err
	}

	if uc.cache != nil && cmd.PlanID != nil {
		if cacheErr := uc.cache.Invalidate(ctx, condo.ID()); cacheErr != nil {
			uc.logger.Warnw("failed to invalidate subscription status cache", "error", cacheErr, "condominium_id", condo.ID())
		}
	}

	uc.logger.Infow("tenant updated", "condominium_id", condo.ID())

	return &UpdateTenantResult{Condominium: condo, Admin: admin}, nil
}
