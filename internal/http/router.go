// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atlas/internal/http/handlers"
	"atlas/internal/http/middleware"
	"atlas/internal/modules/plan"
)

func NewRouter(planService *plan.Service, corsOrigin string) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
	}))

	planHandler := handlers.NewPlanHandler(planService)
	r.POST("/plan", planHandler.Create)
	r.GET("/history", planHandler.History)
	r.GET("/history/:id", planHandler.Detail)
	r.DELETE("/history/:id", planHandler.Delete)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "AI Travel Planner API"})
	})

	return r
}
