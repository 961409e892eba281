package routes

import (
	"consultorio_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupProfessionalRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/professionals/register", func(c *gin.Context) {
		services.RegisterProfessional(c, pool)
	})

	r.POST("/api/v1/professionals/login", func(c *gin.Context) {
		services.LoginProfessional(c, pool)
	})

	r.GET("/api/v1/professionals", func(c *gin.Context) {
		services.ListProfessionals(c, pool)
	})

	r.GET("/api/v1/professionals/:professionalId", func(c *gin.Context) {
		services.GetProfessionalById(c, pool)
	})

	r.PUT("/api/v1/professionals/:professionalId/schedule", func(c *gin.Context) {
		services.UpdateProfessionalSchedule(c, pool)
	})
}
