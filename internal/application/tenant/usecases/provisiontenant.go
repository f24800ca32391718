package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/constants"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/id"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ProvisionTenantCommand struct {
	AdminEmail      string
	AdminFirstName  string
	AdminLastName   string
	AdminPhone      string
	CondominiumName string
	Address         string
	PlanID          uint   // Internal plan ID (used if PlanCode is empty)
	PlanCode        string // Plan code (takes precedence over PlanID)
	ResellerID      *uint
}

type ProvisionTenantResult struct {
	User         *user.User
	Condominium  *condominium.Condominium
	Subscription *subscription.Subscription
	// TempPassword is only available at provisioning time. It is emailed to
	// the admin and never stored in plain form.
	TempPassword string
}

// ProvisionTenantUseCase creates a tenant in one shot: admin user,
// condominium, the circular admin<->condominium link, and the initial
// subscription, all inside a single transaction.
type ProvisionTenantUseCase struct {
	userRepo  user.Repository
	condoRepo condominium.Repository
	planRepo  subscription.PlanRepository
	subRepo   subscription.Repository
	txManager TransactionRunner
	hasher    PasswordHasher
	emails    WelcomeEmailSender
	logger    logger.Interface
}

func NewProvisionTenantUseCase(
	userRepo user.Repository,
	condoRepo condominium.Repository,
	planRepo subscription.PlanRepository,
	subRepo subscription.Repository,
	txManager TransactionRunner,
	hasher PasswordHasher,
	emails WelcomeEmailSender,
	logger logger.Interface,
) *ProvisionTenantUseCase {
	return &ProvisionTenantUseCase{
		userRepo:  userRepo,
		condoRepo: condoRepo,
		planRepo:  planRepo,
		subRepo:   subRepo,
		txManager: txManager,
		hasher:    hasher,
		emails:    emails,
		logger:    logger,
	}
}

func (uc *ProvisionTenantUseCase) Execute(ctx context.Context, cmd ProvisionTenantCommand) (*ProvisionTenantResult, error) {
	if cmd.AdminEmail == "" {
		return nil, errors.NewValidationError("admin email is required")
	}
	if cmd.CondominiumName == "" {
		return nil, errors.NewValidationError("condominium name is required")
	}

	taken, err := uc.userRepo.ExistsByEmail(ctx, cmd.AdminEmail)
	if err != nil {
		uc.logger.Errorw("failed to check email availability", "error", err, "email", cmd.AdminEmail)
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if taken {
		return nil, errors.NewDuplicateEmailError()
	}

	plan, err := uc.resolvePlan(ctx, cmd)
	if err != nil {
		return nil, err
	}

	firstName := cmd.AdminFirstName
	if firstName == "" {
		firstName = cmd.CondominiumName
	}
	lastName := cmd.AdminLastName
	if lastName == "" {
		lastName = "Admin"
	}
	phone := cmd.AdminPhone
	if phone == "" {
		phone = "N/A"
	}

	tempPassword := id.MustGenerate(constants.TempPasswordLength)
	passwordHash, err := uc.hasher.Hash(tempPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash temporary password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		admin *user.User
		condo *condominium.Condominium
		sub   *subscription.Subscription
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		admin, err = user.NewUser(cmd.AdminEmail, passwordHash, authorization.RoleCondoAdmin, user.Profile{
			FirstName: firstName,
			LastName:  lastName,
			Phone:     phone,
		})
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Create(txCtx, admin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		condo, err = condominium.NewCondominium(cmd.CondominiumName, cmd.Address, admin.ID(), condominium.DefaultSettings())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.ResellerID != nil {
			if err := condo.AssignReseller(*cmd.ResellerID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if err := uc.condoRepo.Create(txCtx, condo); err != nil {
			return fmt.Errorf("failed to create condominium: %w", err)
		}

		// Second write on the user closes the circular reference.
		if err := admin.AssignCondominium(condo.ID()); err != nil {
			return fmt.Errorf("failed to assign condominium to admin: %w", err)
		}
		if err := uc.userRepo.Update(txCtx, admin); err != nil {
			return fmt.Errorf("failed to link admin to condominium: %w", err)
		}

		sub, err = subscription.NewSubscription(condo.ID(), plan.ID(), subscription.CycleMonthly)
		if err != nil {
			return fmt.Errorf("failed to build subscription: %w", err)
		}
		if err := uc.subRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("tenant provisioning rolled back", "error", err, "email", cmd.AdminEmail)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewDuplicateEmailError()
		}
		return nil, err
	}

	// Email delivery is best effort: the tenant is already provisioned and
	// a delivery failure must not undo it.
	if uc.emails != nil {
		if mailErr := uc.emails.SendWelcomeEmail(ctx, admin.Email(), firstName, condo.Name(), tempPassword); mailErr != nil {
			uc.logger.Warnw("failed to send welcome email",
				"error", mailErr,
				"email", admin.Email(),
				"condominium_id", condo.ID(),
			)
		}
	}

	uc.logger.Infow("tenant provisioned",
		"condominium_id", condo.ID(),
		"admin_user_id", admin.ID(),
		"subscription_id", sub.ID(),
		"plan_id", plan.ID(),
	)

	return &ProvisionTenantResult{
		User:         admin,
		Condominium:  condo,
		Subscription: sub,
		TempPassword: tempPassword,
	}, nil
}

func (uc *ProvisionTenantUseCase) resolvePlan(ctx context.Context, cmd ProvisionTenantCommand) (*subscription.Plan, error) {
	var (
		plan *subscription.Plan
		err  error
	)
	if cmd.PlanCode != "" {
		plan, err = uc.planRepo.GetByCode(ctx, cmd.PlanCode)
	} else {
		plan, err = uc.planRepo.GetByID(ctx, cmd.PlanID)
	}
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID, "plan_code", cmd.PlanCode)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}
	return plan, nil
}
