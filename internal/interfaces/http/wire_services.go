package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edifai-io/edifai/internal/infrastructure/auth"
	"github.com/edifai-io/edifai/internal/infrastructure/cache"
	"github.com/edifai-io/edifai/internal/infrastructure/email"
	"github.com/edifai-io/edifai/internal/infrastructure/permission"
)

// initInfrastructure wires the non-repository infrastructure: redis, the
// subscription status cache, password hashing, JWT, email and the RBAC
// enforcer.
func (c *Container) initInfrastructure() error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redis = redisClient
	c.statusCache = cache.NewRedisSubscriptionStatusCache(redisClient, c.log)

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes, c.cfg.Auth.JWT.RefreshExpDays)

	c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	})

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPermissions(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed default permissions: %w", err)
	}
	c.enforcer = enforcer

	return nil
}
