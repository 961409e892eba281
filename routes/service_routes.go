package routes

import (
	"consultorio_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupServiceRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/services", func(c *gin.Context) {
		services.CreateService(c, pool)
	})

	r.GET("/api/v1/services", func(c *gin.Context) {
		services.ListServices(c, pool)
	})

	r.PUT("/api/v1/services/:serviceId", func(c *gin.Context) {
		services.UpdateService(c, pool)
	})

	r.DELETE("/api/v1/services/:serviceId", func(c *gin.Context) {
		services.DeleteService(c, pool)
	})
}
