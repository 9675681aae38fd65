package handlers

import (
	"github.com/gin-gonic/gin"

	"bilhete-backend/internal/middleware"
)

// NewRouter builds the engine with middleware and the /api routes.
func NewRouter(fixtures *FixtureHandler, users *UserHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/jogos", fixtures.ListUpcoming)
		api.POST("/cadastro", users.Register)
	}

	return router
}
