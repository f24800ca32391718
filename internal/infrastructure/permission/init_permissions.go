package permission

import (
	"fmt"

	"github.com/edifai-io/edifai/internal/shared/logger"
)

// InitDefaultPermissions seeds the baseline role policies. Adding an existing
// policy is a no-op in casbin, so this is safe to run on every startup.
func InitDefaultPermissions(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Platform operators manage tenants and the plan catalog.
		{"super_admin", "tenant", "create"},
		{"super_admin", "tenant", "read"},
		{"super_admin", "tenant", "update"},
		{"super_admin", "tenant", "delete"},
		{"super_admin", "tenant", "toggle"},
		{"super_admin", "plan", "create"},
		{"super_admin", "plan", "read"},
		{"super_admin", "plan", "update"},
		{"super_admin", "plan", "delete"},
		{"super_admin", "billing", "calculate"},

		// Resellers provision tenants under their own account.
		{"reseller", "tenant", "create"},
		{"reseller", "tenant", "read"},
		{"reseller", "plan", "read"},

		// Condominium administrators run their own building.
		{"condo_admin", "unit", "create"},
		{"condo_admin", "unit", "read"},
		{"condo_admin", "unit", "update"},
		{"condo_admin", "expense", "create"},
		{"condo_admin", "expense", "read"},
		{"condo_admin", "expense", "void"},
		{"condo_admin", "receipt", "read"},
		{"condo_admin", "receipt", "pay"},
		{"condo_admin", "billing", "calculate"},
		{"condo_admin", "ticket", "create"},
		{"condo_admin", "ticket", "read"},
		{"condo_admin", "ticket", "update"},

		// Residents raise tickets and see their own receipts.
		{"resident", "ticket", "create"},
		{"resident", "ticket", "read"},
		{"resident", "receipt", "read"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("default permissions initialized successfully")
	return nil
}
