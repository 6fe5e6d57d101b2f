package main

import (
	"volcano-insurance-api/docs"
	"volcano-insurance-api/internal/handler"
	"volcano-insurance-api/internal/middleware"
	"volcano-insurance-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type routerDeps struct {
	quotes   handler.QuoteService
	checkout handler.CheckoutService
	users    handler.UserService
	db       handler.ReadinessChecker
	tokens   middleware.TokenVerifier
	limiter  *middleware.RateLimiter
	metrics  *observability.Metrics
}

func newLimiter(rps float64, burst int) *middleware.RateLimiter {
	if rps <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(rps, burst)
}

func newRouter(d routerDeps) *gin.Engine {
	docs.SwaggerInfo.BasePath = "/"

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(d.metrics))

	health := handler.NewHealthHandler(d.db)
	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/")
	if d.limiter != nil {
		public.Use(d.limiter.Handler())
	}
	users := handler.NewUserHandler(d.users)
	public.POST("/users", users.Register)
	public.POST("/tokens", users.Login)

	private := r.Group("/", middleware.Auth(d.tokens))
	if d.limiter != nil {
		private.Use(d.limiter.Handler())
	}
	quotes := handler.NewQuoteHandler(d.quotes)
	checkout := handler.NewCheckoutHandler(d.checkout)
	private.POST("/quotes", quotes.CreateQuote)
	private.GET("/quotes/:quote_number", quotes.GetQuote)
	private.POST("/checkout", checkout.Checkout)
	private.GET("/policies/:policy_number", checkout.GetPolicy)

	return r
}
