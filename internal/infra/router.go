package infra

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/salescrm/internal/auth"
	"github.com/umalmyha/salescrm/internal/cache"
	"github.com/umalmyha/salescrm/internal/config"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/handlers"
	"github.com/umalmyha/salescrm/internal/middleware"
	"github.com/umalmyha/salescrm/internal/repository"
	"github.com/umalmyha/salescrm/internal/service"
	"github.com/umalmyha/salescrm/internal/validation"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
)

// Router wires repositories, services and handlers into echo application
func Router(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(e)

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	// Transactors
	pgTrx := transactor.NewPgxTransactor(pgPool)
	txExecutor := transactor.NewPgxWithinTransactionExecutor(pgPool)
	mongoTrx := transactor.NewMongoTransactor(mongoClient)

	// Configs
	jwtCfg := cfg.AuthCfg.JwtCfg
	rfrTokenCfg := cfg.AuthCfg.RefreshTokenCfg

	// Extra functionality
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)
	rfrTokenIssuer := auth.NewRefreshTokenIssuer(rfrTokenCfg.MaxCount, rfrTokenCfg.TimeToLive)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)
	e.Use(middleware.StoreTimeout(cfg.StoreTimeout))

	// Repositories
	userRepo := repository.NewPostgresUserRepository(txExecutor)
	rfrTokenRepo := repository.NewPostgresRefreshTokenRepository(txExecutor)
	pgCustomerRepo := repository.NewPostgresCustomerRepository(txExecutor)
	pgLeadRepo := repository.NewPostgresLeadRepository(txExecutor)
	mongoCustomerRepo := repository.NewMongoCustomerRepository(mongoClient)
	mongoLeadRepo := repository.NewMongoLeadRepository(mongoClient)

	// Caches
	customerCache := cache.NewRedisCustomerCacheRepository(redisClient)

	// Services
	authSvc := service.NewAuthService(pgTrx, jwtIssuer, rfrTokenIssuer, userRepo, rfrTokenRepo)
	customerSvcV1 := service.NewCustomerService(pgTrx, pgCustomerRepo, pgLeadRepo, customerCache)
	customerSvcV2 := service.NewCustomerService(mongoTrx, mongoCustomerRepo, mongoLeadRepo, customerCache)
	leadSvcV1 := service.NewLeadService(pgTrx, pgCustomerRepo, pgLeadRepo)
	leadSvcV2 := service.NewLeadService(mongoTrx, mongoCustomerRepo, mongoLeadRepo)
	analyticsSvcV1 := service.NewAnalyticsService(pgCustomerRepo, pgLeadRepo)
	analyticsSvcV2 := service.NewAnalyticsService(mongoCustomerRepo, mongoLeadRepo)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	customerHandlerV1 := handlers.NewCustomerHTTPHandler(customerSvcV1)
	customerHandlerV2 := handlers.NewCustomerHTTPHandler(customerSvcV2)
	leadHandlerV1 := handlers.NewLeadHTTPHandler(leadSvcV1)
	leadHandlerV2 := handlers.NewLeadHTTPHandler(leadSvcV2)
	analyticsHandlerV1 := handlers.NewAnalyticsHTTPHandler(analyticsSvcV1)
	analyticsHandlerV2 := handlers.NewAnalyticsHTTPHandler(analyticsSvcV2)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)

	// v1 - postgres
	v1 := api.Group("/v1", authorizeMw)
	mountRecordsAPI(v1, customerHandlerV1, leadHandlerV1, analyticsHandlerV1)

	// v2 - mongodb
	v2 := api.Group("/v2", authorizeMw)
	mountRecordsAPI(v2, customerHandlerV2, leadHandlerV2, analyticsHandlerV2)

	return e, nil
}

func mountRecordsAPI(g *echo.Group, customerHandler *handlers.CustomerHTTPHandler, leadHandler *handlers.LeadHTTPHandler, analyticsHandler *handlers.AnalyticsHTTPHandler) {
	customersAPI := g.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PATCH("/:id", customerHandler.Patch)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	customersAPI.POST("/:customerId/leads", leadHandler.Post)
	customersAPI.GET("/:customerId/leads", leadHandler.GetAll)

	leadsAPI := g.Group("/leads")
	leadsAPI.PATCH("/:id", leadHandler.Patch)
	leadsAPI.DELETE("/:id", leadHandler.DeleteByID)

	g.GET("/analytics/dashboard", analyticsHandler.Dashboard)
}

// HTTPErrorHandler maps application errors to http statuses - missing and
// foreign customer-level entries become 404, lead-level authorization
// failures become 401, payload violations 400, uniqueness conflicts 409
// and transient storage failures 503
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			notFoundErr    *errs.EntryNotFoundErr
			unauthorized   *errs.UnauthorizedErr
			conflictErr    *errs.ConflictErr
			unavailableErr *errs.StoreUnavailableErr
			businessErr    *errs.BusinessErr
			payloadErr     *validation.PayloadError
		)

		switch {
		case errors.As(err, &notFoundErr):
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		case errors.As(err, &unauthorized):
			err = echo.NewHTTPError(http.StatusUnauthorized, unauthorized.Error())
		case errors.As(err, &conflictErr):
			err = echo.NewHTTPError(http.StatusConflict, conflictErr)
		case errors.As(err, &payloadErr):
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		case errors.As(err, &businessErr):
			err = echo.NewHTTPError(http.StatusBadRequest, businessErr)
		case errors.As(err, &unavailableErr):
			logrus.Warnf("storage failure on %s %s - %v", c.Request().Method, c.Request().URL.Path, unavailableErr)
			err = echo.NewHTTPError(http.StatusServiceUnavailable, unavailableErr.Error())
		default:
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				logrus.Errorf("unexpected error on %s %s - %v", c.Request().Method, c.Request().URL.Path, err)
			}
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
