package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires all API routes onto a gin engine.
func SetupRouter(handler *Handler, allowedOrigins string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if allowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", handler.Health)
		apiGroup.GET("/verdicts", handler.GetVerdicts)
		apiGroup.GET("/deals/:id", handler.GetEvaluation)
		apiGroup.GET("/deals/:id/matches", handler.GetMatches)
		apiGroup.GET("/buyers", handler.GetBuyers)
		apiGroup.POST("/deals", handler.UpsertDeals)
		apiGroup.POST("/buyers", handler.UpsertBuyers)
		apiGroup.POST("/run", handler.TriggerRun)
	}

	return router
}
