package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/auth"
	"datarequests/internal/infrastructure/cache"
	"datarequests/internal/infrastructure/config"
	"datarequests/internal/infrastructure/metrics"
	"datarequests/internal/infrastructure/permission"
	"datarequests/internal/interfaces/http/middleware"
	"datarequests/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers, and
// owns the resources that need closing on shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos    *repositories
	resolver identity.IdentityResolver
	enforcer *permission.Enforcer
	metrics  *metrics.ActionMetrics
	ucs      *allUseCases
	hdlrs    *allHandlers

	authMiddleware *middleware.AuthMiddleware
}

// NewContainer builds the object graph. The schema must already exist.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewActionMetrics(),
	}

	c.repos = newRepositories(db)
	c.resolver = c.repos.userRepo

	if cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := c.redis.Ping(ctx).Err(); err != nil {
			_ = c.redis.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		ttl := time.Duration(cfg.Redis.IdentityTTL) * time.Second
		c.resolver = cache.NewCachedResolver(c.resolver, cache.NewRedisIdentityCache(c.redis, ttl), log.Named("identity-cache"))
		log.Infow("identity cache enabled", "addr", cfg.Redis.GetAddr(), "ttl", ttl)
	}

	enforcer, err := newEnforcer(db, cfg, log)
	if err != nil {
		c.Shutdown()
		return nil, err
	}
	c.enforcer = enforcer

	authorizer := authz.NewPolicyAuthorizer(enforcer, c.resolver, log.Named("authz"))
	c.ucs = newUseCases(c.repos, db, authorizer, c.resolver, log)
	c.hdlrs = newHandlers(c.ucs, c.metrics, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, log)

	c.engine = gin.New()
	c.setupRoutes()

	return c, nil
}

func newEnforcer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*permission.Enforcer, error) {
	var (
		enforcer *permission.Enforcer
		err      error
	)
	if cfg.Authz.PersistPolicies {
		enforcer, err = permission.NewPersistentEnforcer(db, log.Named("permission"))
	} else {
		enforcer, err = permission.NewEnforcer(log.Named("permission"))
	}
	if err != nil {
		return nil, err
	}

	if err := enforcer.InitDataRequestPermissions(); err != nil {
		return nil, err
	}
	return enforcer, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases the resources the container opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
