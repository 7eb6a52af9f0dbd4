package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sokopay/sokotrack/internal/adapter/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/view", orderHandler.OpenView)
			orders.DELETE("/:id/view", orderHandler.CloseView)
			orders.POST("/:id/pay", orderHandler.Pay)
			orders.POST("/:id/confirmation", orderHandler.RequestConfirmation)
			orders.POST("/:id/ship", orderHandler.MarkShipped)
			orders.POST("/:id/confirm-delivery", orderHandler.ConfirmDelivery)
			orders.POST("/:id/dispute", orderHandler.RaiseDispute)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
