package main

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	// RequestID đứng đầu để Recovery và Logger đều log được request_id
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)

	api := router.Group(c.Config.App.APIPrefix)
	{
		api.GET("/healthchecker", c.PostHandler.HealthChecker)

		setupPostRoutes(api, c)
	}

	return router
}

func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	posts := api.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.POST("", c.PostHandler.CreatePost)
		posts.GET("/:id", c.PostHandler.GetPost)
		posts.PATCH("/:id", c.PostHandler.EditPost)
		posts.DELETE("/:id", c.PostHandler.DeletePost)
	}
}
