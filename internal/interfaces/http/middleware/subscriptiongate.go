package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/infrastructure/cache"
	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/constants"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// Denial reasons surfaced to the client when the gate blocks a request.
const (
	ReasonNoSubscription = "no_subscription"
)

// SubscriptionGate blocks mutating requests from tenants whose latest
// subscription is missing or not active. Read-only methods, platform
// operators and requests without a tenant always pass.
type SubscriptionGate struct {
	subscriptionRepo subscription.Repository
	planRepo         subscription.PlanRepository
	statusCache      cache.SubscriptionStatusCache
	logger           logger.Interface
}

func NewSubscriptionGate(
	subscriptionRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	statusCache cache.SubscriptionStatusCache,
	log logger.Interface,
) *SubscriptionGate {
	return &SubscriptionGate{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		statusCache:      statusCache,
		logger:           log,
	}
}

func (g *SubscriptionGate) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if role.IsSuperAdmin() {
			c.Next()
			return
		}

		condominiumID, exists := condominiumIDFromContext(c)
		if !exists {
			// Resellers and unaffiliated accounts carry no tenant.
			c.Next()
			return
		}

		status, reason, err := g.resolveStatus(c.Request.Context(), condominiumID)
		if err != nil {
			g.logger.Errorw("failed to resolve subscription status",
				"condominium_id", condominiumID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify subscription")
			c.Abort()
			return
		}

		if reason == ReasonNoSubscription {
			utils.ForbiddenResponse(c, "no subscription found for this condominium", ReasonNoSubscription)
			c.Abort()
			return
		}

		if status != string(subscription.StatusActive) {
			utils.ForbiddenResponse(c, "subscription is not active", status)
			c.Abort()
			return
		}

		c.Next()
	}
}

// resolveStatus answers from the cache when possible, falling back to the
// latest subscription row. Cache write failures are logged, not fatal.
func (g *SubscriptionGate) resolveStatus(ctx context.Context, condominiumID uint) (status, reason string, err error) {
	cached, err := g.statusCache.Get(ctx, condominiumID)
	if err != nil {
		g.logger.Warnw("subscription status cache read failed",
			"condominium_id", condominiumID, "error", err)
	} else if cached != nil {
		if cached.NotFound {
			return "", ReasonNoSubscription, nil
		}
		return cached.Status, "", nil
	}

	sub, err := g.subscriptionRepo.GetLatestByCondominiumID(ctx, condominiumID)
	if err != nil {
		return "", "", err
	}

	if sub == nil {
		if cacheErr := g.statusCache.Set(ctx, condominiumID, &cache.CachedStatus{NotFound: true}); cacheErr != nil {
			g.logger.Warnw("failed to cache missing subscription",
				"condominium_id", condominiumID, "error", cacheErr)
		}
		return "", ReasonNoSubscription, nil
	}

	entry := &cache.CachedStatus{Status: string(sub.Status())}
	if plan, planErr := g.planRepo.GetByID(ctx, sub.PlanID()); planErr == nil && plan != nil {
		entry.PlanCode = plan.Code()
	}
	if cacheErr := g.statusCache.Set(ctx, condominiumID, entry); cacheErr != nil {
		g.logger.Warnw("failed to cache subscription status",
			"condominium_id", condominiumID, "error", cacheErr)
	}

	return string(sub.Status()), "", nil
}

func condominiumIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyCondominiumID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
