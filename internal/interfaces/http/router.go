package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/TeodorSim/TransfIT/internal/application/auth/usecases"
	provusecases "github.com/TeodorSim/TransfIT/internal/application/provisioning/usecases"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/auth"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/config"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/crypto"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/repository"
	"github.com/TeodorSim/TransfIT/internal/interfaces/http/handlers"
	"github.com/TeodorSim/TransfIT/internal/interfaces/http/middleware"
	"github.com/TeodorSim/TransfIT/internal/interfaces/http/routes"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	authHandler   *handlers.AuthHandler
	clinicHandler *handlers.ClinicHandler
	healthHandler *handlers.HealthHandler
	rateLimiter   *middleware.RateLimiter
}

// oauthClientAdapter bridges the infrastructure OAuth client to the
// use case interfaces.
type oauthClientAdapter struct {
	client *auth.GoogleOAuthClient
}

func (a *oauthClientAdapter) GetAuthURL(state string) string {
	return a.client.GetAuthURL(state)
}

func (a *oauthClientAdapter) ExchangeCode(ctx context.Context, code string) (*authusecases.TokenSet, error) {
	token, err := a.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

func (a *oauthClientAdapter) GetUserInfo(ctx context.Context, accessToken string) (*authusecases.OAuthUserInfo, error) {
	info, err := a.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &authusecases.OAuthUserInfo{
		Email:         info.Email,
		Name:          info.Name,
		EmailVerified: info.EmailVerified,
		ProviderID:    info.ProviderID,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	cipher, err := crypto.NewTokenCipher(cfg.Security.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cipher: %w", err)
	}
	integrationRepo := repository.NewClinicIntegrationRepository(db, cipher)

	googleClient := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})
	oauthAdapter := &oauthClientAdapter{client: googleClient}

	engineClient := automation.NewClient(cfg.Automation.BaseURL, cfg.Automation.APIKey, log)
	templateLoader := automation.NewWorkflowTemplateLoader(cfg.Automation.TemplatePath, log)
	if err := templateLoader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load workflow template: %w", err)
	}

	provisionUC := provusecases.NewProvisionClinicUseCase(
		engineClient,
		templateLoader,
		integrationRepo,
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		log,
	)
	getIntegrationUC := provusecases.NewGetIntegrationUseCase(integrationRepo, log)
	deprovisionUC := provusecases.NewDeprovisionClinicUseCase(engineClient, integrationRepo, log)
	initiateOAuthUC := authusecases.NewInitiateOAuthLoginUseCase(oauthAdapter, log)
	handleCallbackUC := authusecases.NewHandleOAuthCallbackUseCase(oauthAdapter, provisionUC, log)

	authHandler := handlers.NewAuthHandler(
		initiateOAuthUC,
		handleCallbackUC,
		log,
		cfg.Cookie,
		cfg.Security.CookieSecret,
	)
	clinicHandler := handlers.NewClinicHandler(getIntegrationUC, deprovisionUC, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	r := &Router{
		engine:        engine,
		authHandler:   authHandler,
		clinicHandler: clinicHandler,
		healthHandler: healthHandler,
		rateLimiter:   rateLimiter,
	}
	r.setupRoutes()

	return r, nil
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthHandler.Check)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})
	routes.SetupClinicRoutes(r.engine, &routes.ClinicRouteConfig{
		ClinicHandler: r.clinicHandler,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
