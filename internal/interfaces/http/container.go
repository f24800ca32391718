package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/infrastructure/auth"
	"github.com/edifai-io/edifai/internal/infrastructure/cache"
	"github.com/edifai-io/edifai/internal/infrastructure/config"
	"github.com/edifai-io/edifai/internal/infrastructure/email"
	"github.com/edifai-io/edifai/internal/infrastructure/permission"
	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

// Container wires all infrastructure, repositories, use cases, handlers
// and middleware together, and owns their shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	subscriptionGate     *middleware.SubscriptionGate
	permissionMiddleware *middleware.PermissionMiddleware

	hasher       *auth.BcryptPasswordHasher
	jwtSvc       *auth.JWTService
	emailService *email.SMTPEmailService
	statusCache  *cache.RedisSubscriptionStatusCache
	enforcer     *permission.Enforcer
}

// NewContainer builds the full dependency graph. Construction fails fast
// when redis or the RBAC store is unreachable.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.repos = newRepositories(db, log)
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases held connections.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
