package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"dispatch/internal/auth"
	"dispatch/internal/handler"
	"dispatch/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler      *handler.UserHandler
	RiderHandler     *handler.RiderHandler
	OrderHandler     *handler.OrderHandler
	WarehouseHandler *handler.WarehouseHandler
	CouponHandler    *handler.CouponHandler
	TokenManager     *auth.Manager
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered. Register,
// login and /health are open; every other route requires a bearer token.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	authn := middleware.RequireAuth(deps.TokenManager)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes.
	users := router.Group("/user")
	{
		users.POST("/register", deps.UserHandler.Register)
		users.POST("/login", deps.UserHandler.Login)

		authed := users.Group("", authn)
		authed.GET("", deps.UserHandler.GetAll)
		authed.GET("/:id", deps.UserHandler.Get)
		authed.PUT("/:id", deps.UserHandler.Update)
		authed.PUT("/:id/password", deps.UserHandler.UpdatePassword)
		authed.POST("/:id/addresses", deps.UserHandler.AddAddress)
		authed.DELETE("/:id", deps.UserHandler.Delete)
	}

	// Rider routes, including dispatch.
	riders := router.Group("/rider")
	{
		riders.POST("", deps.RiderHandler.Register)
		riders.POST("/login", deps.RiderHandler.Login)

		authed := riders.Group("", authn)
		authed.GET("", deps.RiderHandler.GetAll)
		authed.GET("/:id", deps.RiderHandler.Get)
		authed.GET("/:id/orders", deps.RiderHandler.Orders)
		authed.PUT("/:id", deps.RiderHandler.Update)
		authed.PUT("/:id/status", deps.RiderHandler.UpdateStatus)
		authed.DELETE("/:id", deps.RiderHandler.Delete)
		authed.PUT("/assignOrder/:orderId", deps.RiderHandler.AssignOrder)
		authed.PUT("/:id/updateOrder/:orderId", deps.RiderHandler.UpdateOrder)
	}

	// Order routes.
	orders := router.Group("/orders", authn)
	{
		orders.POST("", deps.OrderHandler.Create)
		orders.GET("", deps.OrderHandler.GetAll)
		orders.GET("/orderByUserId/:userId", deps.OrderHandler.GetByUser)
		orders.GET("/:id", deps.OrderHandler.Get)
		orders.PUT("/:id", deps.OrderHandler.UpdateStatus)
		orders.DELETE("/:id", deps.OrderHandler.Delete)
		orders.POST("/:id/review", deps.OrderHandler.AttachReview)
	}

	// Warehouse routes.
	warehouses := router.Group("/my/warehouse", authn)
	{
		warehouses.POST("", deps.WarehouseHandler.Create)
		warehouses.GET("", deps.WarehouseHandler.GetAll)
		warehouses.GET("/:id", deps.WarehouseHandler.Get)
		warehouses.PUT("/:id", deps.WarehouseHandler.Update)
		warehouses.DELETE("/:id", deps.WarehouseHandler.Delete)
	}

	// Coupon routes.
	coupons := router.Group("/coupons", authn)
	{
		coupons.POST("", deps.CouponHandler.Create)
		coupons.GET("", deps.CouponHandler.GetAll)
		coupons.GET("/:id", deps.CouponHandler.Get)
		coupons.PUT("/:id", deps.CouponHandler.Update)
		coupons.DELETE("/:id", deps.CouponHandler.Delete)
	}

	return router
}
